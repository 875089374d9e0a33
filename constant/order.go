package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCanceled  OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

const PaymentMethodStripe = "stripe"
