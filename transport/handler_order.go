package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/digital-store/model"
)

// CreateOrderIntent handler
// @Summary Create checkout payment intent
// @Description Prices the cart from the catalog, adds the processing fee and opens a payment. Works for guests when an email is given.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.OrderIntentRequest true "Cart"
// @Success 200 {object} model.OrderIntentResponse
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/checkout/intent [post]
func (s *RestHandler) CreateOrderIntent(w http.ResponseWriter, r *http.Request) {
	var req model.OrderIntentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CheckoutApp.CreateOrderIntent(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List my orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderWithItems
// @Router /api/v1/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ListOrders(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order with items and keys
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderWithItems
// @Failure 404 {object} Response
// @Router /api/v1/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrderStats handler
// @Summary Order statistics of the caller
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserStats
// @Router /api/v1/orders/stats [get]
func (s *RestHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetStats(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
