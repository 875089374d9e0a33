package keypool

import (
	"context"
	"strings"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	digitalkeyrepo "github.com/muhammadheryan/digital-store/repository/digitalkey"
	productrepo "github.com/muhammadheryan/digital-store/repository/product"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

// KeyPoolApp manages the stock of license keys per product.
type KeyPoolApp interface {
	AddKeys(ctx context.Context, actor *model.Actor, productID string, req *model.AddKeysRequest) (*model.AddKeysResponse, error)
	CountAvailable(ctx context.Context, actor *model.Actor, productID string) (*model.KeyCountResponse, error)
}

type keyPoolAppImpl struct {
	keyRepo     digitalkeyrepo.DigitalKeyRepository
	productRepo productrepo.ProductRepository
}

func NewKeyPoolApp(keyRepo digitalkeyrepo.DigitalKeyRepository, productRepo productrepo.ProductRepository) KeyPoolApp {
	return &keyPoolAppImpl{keyRepo: keyRepo, productRepo: productRepo}
}

func (s *keyPoolAppImpl) AddKeys(ctx context.Context, actor *model.Actor, productID string, req *model.AddKeysRequest) (*model.AddKeysResponse, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(req.Keys))
	for _, k := range req.Keys {
		if k = strings.TrimSpace(k); k != "" {
			values = append(values, k)
		}
	}
	if len(values) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	added, err := s.keyRepo.BulkInsert(ctx, productID, values)
	if err != nil {
		logger.Error("[AddKeys] err keyRepo.BulkInsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	available, err := s.keyRepo.CountAvailable(ctx, productID)
	if err != nil {
		logger.Error("[AddKeys] err keyRepo.CountAvailable", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[AddKeys] keys added", zap.String("product_id", productID), zap.Int64("added", added), zap.String("by", actor.UserID))
	return &model.AddKeysResponse{ProductID: productID, Added: added, Available: available}, nil
}

func (s *keyPoolAppImpl) CountAvailable(ctx context.Context, actor *model.Actor, productID string) (*model.KeyCountResponse, error) {
	if !actor.Admin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	available, err := s.keyRepo.CountAvailable(ctx, productID)
	if err != nil {
		logger.Error("[CountAvailable] err keyRepo.CountAvailable", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.KeyCountResponse{ProductID: productID, Available: available}, nil
}

func (s *keyPoolAppImpl) ensureProduct(ctx context.Context, productID string) error {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[KeyPool] err productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
