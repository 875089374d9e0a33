package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/utils/errors"
)

// ListInventoryAlerts handler
// @Summary List open inventory alerts
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.InventoryAlertWithProduct
// @Router /api/v1/inventory/alerts [get]
func (s *RestHandler) ListInventoryAlerts(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.ListAlerts(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResolveInventoryAlert handler
// @Summary Resolve an inventory alert
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} Response
// @Router /api/v1/inventory/alerts/{id}/resolve [post]
func (s *RestHandler) ResolveInventoryAlert(w http.ResponseWriter, r *http.Request) {
	if err := s.InventoryApp.ResolveAlert(r.Context(), actor(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CheckInventory handler
// @Summary Run an inventory check now
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.InventoryCheckResponse
// @Router /api/v1/inventory/check [post]
func (s *RestHandler) CheckInventory(w http.ResponseWriter, r *http.Request) {
	if !actor(r).Admin() {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}
	s.SweepInventory(w, r)
}

// SweepInventory handler
// @Summary Run an inventory check (internal)
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer internal API key"
// @Success 200 {object} model.InventoryCheckResponse
// @Router /internal/v1/inventory/check [post]
func (s *RestHandler) SweepInventory(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.CheckAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
