package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/digital-store/model"
)

// ListProducts handler
// @Summary List products
// @Description Active products, optionally filtered by category or featured flag
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Category ID"
// @Param featured query bool false "Featured only"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} model.ProductListResponse
// @Router /api/v1/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ProductFilter{CategoryID: q.Get("category_id")}
	filter.Featured, _ = strconv.ParseBool(q.Get("featured"))
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductWithCategory
// @Failure 404 {object} Response
// @Router /api/v1/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 403 {object} Response
// @Router /api/v1/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.CreateProduct(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} model.Product
// @Router /api/v1/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.UpdateProduct(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Deactivate product
// @Description Products are soft deleted so past orders keep their references
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} Response
// @Router /api/v1/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.ProductApp.DeleteProduct(r.Context(), actor(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListCategories handler
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /api/v1/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CategoryRequest true "Category"
// @Success 201 {object} model.Category
// @Router /api/v1/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.CreateCategory(r.Context(), actor(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// AddKeys handler
// @Summary Upload digital keys
// @Tags Keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.AddKeysRequest true "Keys"
// @Success 201 {object} model.AddKeysResponse
// @Router /api/v1/products/{id}/keys [post]
func (s *RestHandler) AddKeys(w http.ResponseWriter, r *http.Request) {
	var req model.AddKeysRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.KeyPoolApp.AddKeys(r.Context(), actor(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// CountKeys handler
// @Summary Count available keys
// @Tags Keys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.KeyCountResponse
// @Router /api/v1/products/{id}/keys/count [get]
func (s *RestHandler) CountKeys(w http.ResponseWriter, r *http.Request) {
	res, err := s.KeyPoolApp.CountAvailable(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
