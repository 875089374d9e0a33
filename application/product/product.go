package product

import (
	"context"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	categoryRepo "github.com/muhammadheryan/digital-store/repository/category"
	"github.com/muhammadheryan/digital-store/repository/claim"
	productRepo "github.com/muhammadheryan/digital-store/repository/product"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id string) (*model.ProductWithCategory, error)
	CreateProduct(ctx context.Context, actor *model.Actor, req *model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, actor *model.Actor, id string, req *model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, actor *model.Actor, id string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, actor *model.Actor, req *model.CategoryRequest) (*model.Category, error)
}

type productAppImpl struct {
	productRepo  productRepo.ProductRepository
	categoryRepo categoryRepo.CategoryRepository
}

func NewProductApp(productRepo productRepo.ProductRepository, categoryRepo categoryRepo.CategoryRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// GetProduct returns an active product. Inactive products are hidden from the storefront.
func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.ProductWithCategory, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil || !result.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, actor *model.Actor, req *model.ProductRequest) (*model.Product, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	p := &model.Product{IsActive: true}
	applyRequest(p, req)
	if err := s.productRepo.Create(ctx, p); err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return p, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, actor *model.Actor, id string, req *model.ProductRequest) (*model.Product, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	p := existing.Product
	applyRequest(&p, req)
	if err := s.productRepo.Update(ctx, &p); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &p, nil
}

// DeleteProduct deactivates the product. Sold items and their keys keep pointing at it.
func (s *productAppImpl) DeleteProduct(ctx context.Context, actor *model.Actor, id string) error {
	if !actor.Admin() {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := s.productRepo.Deactivate(ctx, id); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Deactivate", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] error categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) CreateCategory(ctx context.Context, actor *model.Actor, req *model.CategoryRequest) (*model.Category, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	c := &model.Category{Name: req.Name, Slug: req.Slug, Description: req.Description}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		if claim.IsDuplicateKey(err) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[CreateCategory] error categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *productAppImpl) ensureCategory(ctx context.Context, id string) error {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[ensureCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func applyRequest(p *model.Product, req *model.ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.OriginalPrice = decimal.NullDecimal{}
	if req.OriginalPrice != nil {
		p.OriginalPrice = decimal.NewNullDecimal(*req.OriginalPrice)
	}
	p.CategoryID = req.CategoryID
	p.ImageURL = req.ImageURL
	p.Platform = req.Platform
	p.Stock = req.Stock
	p.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}
