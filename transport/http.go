package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	checkoutapp "github.com/muhammadheryan/digital-store/application/checkout"
	disputeapp "github.com/muhammadheryan/digital-store/application/dispute"
	fulfillmentapp "github.com/muhammadheryan/digital-store/application/fulfillment"
	inventoryapp "github.com/muhammadheryan/digital-store/application/inventory"
	keypoolapp "github.com/muhammadheryan/digital-store/application/keypool"
	orderapp "github.com/muhammadheryan/digital-store/application/order"
	productapp "github.com/muhammadheryan/digital-store/application/product"
	refundapp "github.com/muhammadheryan/digital-store/application/refund"
	ticketapp "github.com/muhammadheryan/digital-store/application/ticket"
	userapp "github.com/muhammadheryan/digital-store/application/user"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/thirdparty/payment"
	utilsContext "github.com/muhammadheryan/digital-store/utils/context"
	"github.com/muhammadheryan/digital-store/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	ProductApp     productapp.ProductApp
	KeyPoolApp     keypoolapp.KeyPoolApp
	CheckoutApp    checkoutapp.CheckoutApp
	OrderApp       orderapp.OrderApp
	RefundApp      refundapp.RefundApp
	TicketApp      ticketapp.TicketApp
	DisputeApp     disputeapp.DisputeApp
	InventoryApp   inventoryapp.InventoryApp
	FulfillmentApp fulfillmentapp.FulfillmentApp
	Gateway        payment.Gateway
	// Publisher is nil when no broker is configured.
	Publisher EventPublisher
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/webhook/payment", rh.PaymentWebhook).Methods(http.MethodPost)

	api := mux.PathPrefix("/api/v1").Subrouter()

	// auth
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)

	// catalog
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/keys", rh.AddKeys).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/keys/count", rh.CountKeys).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)

	// checkout and orders
	api.HandleFunc("/checkout/intent", rh.CreateOrderIntent).Methods(http.MethodPost)
	api.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/stats", rh.GetOrderStats).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)

	// post-sale
	api.HandleFunc("/refunds", rh.CreateRefund).Methods(http.MethodPost)
	api.HandleFunc("/refunds", rh.ListRefunds).Methods(http.MethodGet)
	api.HandleFunc("/refunds/{id}", rh.GetRefund).Methods(http.MethodGet)
	api.HandleFunc("/refunds/{id}/status", rh.UpdateRefundStatus).Methods(http.MethodPatch)
	api.HandleFunc("/tickets", rh.CreateTicket).Methods(http.MethodPost)
	api.HandleFunc("/tickets", rh.ListTickets).Methods(http.MethodGet)
	api.HandleFunc("/tickets/{id}", rh.GetTicket).Methods(http.MethodGet)
	api.HandleFunc("/tickets/{id}/status", rh.UpdateTicketStatus).Methods(http.MethodPatch)
	api.HandleFunc("/tickets/{id}/assign", rh.AssignTicket).Methods(http.MethodPatch)
	api.HandleFunc("/tickets/{id}/messages", rh.AddTicketMessage).Methods(http.MethodPost)
	api.HandleFunc("/disputes", rh.CreateDispute).Methods(http.MethodPost)
	api.HandleFunc("/disputes", rh.ListDisputes).Methods(http.MethodGet)
	api.HandleFunc("/disputes/{id}", rh.GetDispute).Methods(http.MethodGet)
	api.HandleFunc("/disputes/{id}/status", rh.UpdateDisputeStatus).Methods(http.MethodPatch)

	// inventory
	api.HandleFunc("/inventory/alerts", rh.ListInventoryAlerts).Methods(http.MethodGet)
	api.HandleFunc("/inventory/alerts/{id}/resolve", rh.ResolveInventoryAlert).Methods(http.MethodPost)
	api.HandleFunc("/inventory/check", rh.CheckInventory).Methods(http.MethodPost)

	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/inventory/check", rh.SweepInventory).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// actor returns the authenticated caller, or nil for anonymous requests.
func actor(r *http.Request) *model.Actor {
	a, _ := utilsContext.GetActor(r.Context())
	return a
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /api/v1/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /api/v1/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the session of the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
