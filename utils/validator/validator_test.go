package validatorx_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/muhammadheryan/digital-store/model"
	validatorx "github.com/muhammadheryan/digital-store/utils/validator"
)

type priced struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"gt=0"`
}

func TestValidateStruct_Decimal(t *testing.T) {
	assert.NoError(t, validatorx.ValidateStruct(&priced{Name: "game", Price: decimal.RequireFromString("19.99")}))
	assert.Error(t, validatorx.ValidateStruct(&priced{Name: "game", Price: decimal.Zero}))
	assert.Error(t, validatorx.ValidateStruct(&priced{Name: "game", Price: decimal.RequireFromString("-1")}))
	assert.Error(t, validatorx.ValidateStruct(&priced{Price: decimal.RequireFromString("1")}))
}

func TestValidateStruct_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = validatorx.ValidateStruct(&priced{Name: fmt.Sprintf("game-%d", i), Price: decimal.RequireFromString("1")})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestValidateStruct_CartSize(t *testing.T) {
	cart := func(n int) *model.OrderIntentRequest {
		req := &model.OrderIntentRequest{Email: "buyer@example.com"}
		for i := 0; i < n; i++ {
			req.Items = append(req.Items, model.CartItem{ProductID: uuid.NewString(), Quantity: 1})
		}
		return req
	}

	tests := []struct {
		name    string
		items   int
		wantErr bool
	}{
		{name: "empty", items: 0, wantErr: true},
		{name: "single", items: 1},
		{name: "largest allowed", items: 100},
		{name: "too many products", items: 101, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(cart(tt.items))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
