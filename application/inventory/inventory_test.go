package inventory_test

import (
	"context"
	"errors"
	"testing"

	appinventory "github.com/muhammadheryan/digital-store/application/inventory"
	"github.com/muhammadheryan/digital-store/cmd/config"
	"github.com/muhammadheryan/digital-store/constant"
	inventorymocks "github.com/muhammadheryan/digital-store/mocks/repository/inventory"
	"github.com/muhammadheryan/digital-store/model"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func alertOf(alertType constant.AlertType) interface{} {
	return mock.MatchedBy(func(a *model.InventoryAlert) bool { return a.AlertType == alertType })
}

func TestInventoryApp_CheckProduct(t *testing.T) {
	type fields struct {
		config        *config.Config
		inventoryRepo *inventorymocks.InventoryRepository
	}
	cfg := &config.Config{Inventory: config.InventoryConfig{LowStockThreshold: 5}}
	tests := []struct {
		name       string
		fields     fields
		mockCall   func(f fields)
		wantRaised int
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:   "stock at threshold raises nothing",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: true, Stock: 5, AvailableKeys: 3}, nil).Once()
			},
			wantRaised: 0,
		},
		{
			name:   "stock below threshold raises low_stock with current stock",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: true, Stock: 4, AvailableKeys: 3}, nil).Once()
				f.inventoryRepo.On("InsertAlertIfAbsent", mock.Anything, mock.MatchedBy(func(a *model.InventoryAlert) bool {
					return a.AlertType == constant.AlertTypeLowStock && a.Threshold != nil && *a.Threshold == 4
				})).Return(true, nil).Once()
			},
			wantRaised: 1,
		},
		{
			name:   "open alert is not raised twice",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: true, Stock: 2, AvailableKeys: 3}, nil).Once()
				f.inventoryRepo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeLowStock)).Return(false, nil).Once()
			},
			wantRaised: 0,
		},
		{
			name:   "empty product raises out_of_stock and no_keys",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: true, Stock: 0, AvailableKeys: 0}, nil).Once()
				f.inventoryRepo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeOutOfStock)).Return(true, nil).Once()
				f.inventoryRepo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeNoKeys)).Return(true, nil).Once()
			},
			wantRaised: 2,
		},
		{
			name:   "default threshold when unset",
			fields: fields{config: &config.Config{}, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: true, Stock: 4, AvailableKeys: 1}, nil).Once()
				f.inventoryRepo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeLowStock)).Return(true, nil).Once()
			},
			wantRaised: 1,
		},
		{
			name:   "inactive product is skipped",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").
					Return(&model.StockLevel{ProductID: "p-1", IsActive: false, Stock: 0}, nil).Once()
			},
		},
		{
			name:   "error: repository failure",
			fields: fields{config: cfg, inventoryRepo: inventorymocks.NewInventoryRepository(t)},
			mockCall: func(f fields) {
				f.inventoryRepo.On("GetStockLevel", mock.Anything, "p-1").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appinventory.NewInventoryApp(tt.fields.config, tt.fields.inventoryRepo)

			got, err := app.CheckProduct(context.Background(), "p-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
				return
			}
			assert.Equal(t, tt.wantRaised, got)
		})
	}
}

func TestInventoryApp_CheckAll(t *testing.T) {
	repo := inventorymocks.NewInventoryRepository(t)
	repo.On("ListStockLevels", mock.Anything).Return([]model.StockLevel{
		{ProductID: "p-1", IsActive: true, Stock: 10, AvailableKeys: 10},
		{ProductID: "p-2", IsActive: true, Stock: 3, AvailableKeys: 3},
		{ProductID: "p-3", IsActive: true, Stock: 8, AvailableKeys: 0},
	}, nil).Once()
	repo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeLowStock)).Return(true, nil).Once()
	repo.On("InsertAlertIfAbsent", mock.Anything, alertOf(constant.AlertTypeNoKeys)).Return(false, errors.New("deadlock")).Once()

	app := appinventory.NewInventoryApp(&config.Config{}, repo)
	got, err := app.CheckAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &model.InventoryCheckResponse{Checked: 2, Raised: 1}, got)
}

func TestInventoryApp_ResolveAlert(t *testing.T) {
	admin := &model.Actor{UserID: "admin-1", IsAdmin: true}

	t.Run("customer is forbidden", func(t *testing.T) {
		repo := inventorymocks.NewInventoryRepository(t)
		app := appinventory.NewInventoryApp(&config.Config{}, repo)

		err := app.ResolveAlert(context.Background(), &model.Actor{UserID: "u-1"}, "a-1")
		assert.True(t, cerr.Is(err, constant.ErrForbidden))
	})

	t.Run("unknown alert", func(t *testing.T) {
		repo := inventorymocks.NewInventoryRepository(t)
		repo.On("GetAlert", mock.Anything, "a-1").Return(nil, nil).Once()
		app := appinventory.NewInventoryApp(&config.Config{}, repo)

		err := app.ResolveAlert(context.Background(), admin, "a-1")
		assert.True(t, cerr.Is(err, constant.ErrNotFound))
	})

	t.Run("resolving twice is not an error", func(t *testing.T) {
		repo := inventorymocks.NewInventoryRepository(t)
		repo.On("GetAlert", mock.Anything, "a-1").Return(&model.InventoryAlert{ID: "a-1", IsResolved: true}, nil).Once()
		repo.On("ResolveAlert", mock.Anything, "a-1").Return(false, nil).Once()
		app := appinventory.NewInventoryApp(&config.Config{}, repo)

		assert.NoError(t, app.ResolveAlert(context.Background(), admin, "a-1"))
	})
}

func TestInventoryApp_ListAlerts(t *testing.T) {
	repo := inventorymocks.NewInventoryRepository(t)
	repo.On("ListOpenAlerts", mock.Anything).Return([]model.InventoryAlertWithProduct{
		{InventoryAlert: model.InventoryAlert{ID: "a-1", AlertType: constant.AlertTypeNoKeys}, ProductName: "Game Key"},
	}, nil).Once()
	app := appinventory.NewInventoryApp(&config.Config{}, repo)

	got, err := app.ListAlerts(context.Background(), &model.Actor{IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, "Game Key", got[0].ProductName)

	_, err = app.ListAlerts(context.Background(), nil)
	assert.True(t, cerr.Is(err, constant.ErrForbidden))
}
