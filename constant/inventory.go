package constant

type AlertType string

const (
	AlertTypeLowStock   AlertType = "low_stock"
	AlertTypeOutOfStock AlertType = "out_of_stock"
	AlertTypeNoKeys     AlertType = "no_keys"
)

// DefaultLowStockThreshold applies when no threshold is configured.
const DefaultLowStockThreshold = 5
