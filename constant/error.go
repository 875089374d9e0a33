package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrInvalidOrderStatus
	ErrInvalidStatusTransition
	ErrProductInactive
	ErrKeyAlreadyUsed
	ErrDuplicateOrder
	ErrRefundAlreadyProcessed
	ErrRefundExists
	ErrPaymentGateway
	ErrInvalidSignature
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "password invalid",
	ErrForbidden:               "admin access required",
	ErrInvalidOrderStatus:      "invalid order status",
	ErrInvalidStatusTransition: "status transition not allowed",
	ErrProductInactive:         "product is not available",
	ErrKeyAlreadyUsed:          "digital key already used",
	ErrDuplicateOrder:          "order already exists for payment",
	ErrRefundAlreadyProcessed:  "refund already processed",
	ErrRefundExists:            "refund already requested for order",
	ErrPaymentGateway:          "payment gateway error",
	ErrInvalidSignature:        "invalid webhook signature",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusBadRequest,
	ErrInvalidPassword:         http.StatusBadRequest,
	ErrForbidden:               http.StatusForbidden,
	ErrInvalidOrderStatus:      http.StatusBadRequest,
	ErrInvalidStatusTransition: http.StatusConflict,
	ErrProductInactive:         http.StatusBadRequest,
	ErrKeyAlreadyUsed:          http.StatusConflict,
	ErrDuplicateOrder:          http.StatusConflict,
	ErrRefundAlreadyProcessed:  http.StatusConflict,
	ErrRefundExists:            http.StatusConflict,
	ErrPaymentGateway:          http.StatusBadGateway,
	ErrInvalidSignature:        http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrForbidden:               "0007",
	ErrInvalidOrderStatus:      "0008",
	ErrInvalidStatusTransition: "0009",
	ErrProductInactive:         "0010",
	ErrKeyAlreadyUsed:          "0011",
	ErrDuplicateOrder:          "0012",
	ErrRefundAlreadyProcessed:  "0013",
	ErrRefundExists:            "0014",
	ErrPaymentGateway:          "0015",
	ErrInvalidSignature:        "0016",
}
