package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/digital-store/constant"
	inventorymocks "github.com/muhammadheryan/digital-store/mocks/application/inventory"
	usermocks "github.com/muhammadheryan/digital-store/mocks/application/user"
	"github.com/muhammadheryan/digital-store/model"
	utilsContext "github.com/muhammadheryan/digital-store/utils/context"
	cerr "github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthMiddleware(t *testing.T) {
	admin := &model.Actor{UserID: "u-1", Email: "admin@example.com", IsAdmin: true}
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		mockCall   func(userApp *usermocks.UserApp)
		wantStatus int
		wantActor  *model.Actor
	}{
		{
			name:       "error: protected path without token",
			method:     http.MethodGet,
			path:       "/api/v1/orders",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "success: catalog read without token",
			method:     http.MethodGet,
			path:       "/api/v1/products/p-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "error: key count is not a catalog read",
			method:     http.MethodGet,
			path:       "/api/v1/products/p-1/keys/count",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "error: product write without token",
			method:     http.MethodPost,
			path:       "/api/v1/products",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "success: valid token attaches actor",
			method: http.MethodGet,
			path:   "/api/v1/orders",
			token:  "good",
			mockCall: func(userApp *usermocks.UserApp) {
				userApp.On("ValidateToken", mock.Anything, "good").Return(admin, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantActor:  admin,
		},
		{
			name:   "error: invalid token on a public path",
			method: http.MethodPost,
			path:   "/api/v1/checkout/intent",
			token:  "expired",
			mockCall: func(userApp *usermocks.UserApp) {
				userApp.On("ValidateToken", mock.Anything, "expired").Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "success: internal path skips session tokens",
			method:     http.MethodPost,
			path:       "/internal/v1/inventory/check",
			token:      "internal-key",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userApp := usermocks.NewUserApp(t)
			if tt.mockCall != nil {
				tt.mockCall(userApp)
			}
			var gotActor *model.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, _ = utilsContext.GetActor(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(userApp)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantActor, gotActor)
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{name: "success: matching key", apiKey: "secret", header: "Bearer secret", wantStatus: http.StatusOK},
		{name: "error: wrong key", apiKey: "secret", header: "Bearer guess", wantStatus: http.StatusForbidden},
		{name: "error: missing header", apiKey: "secret", wantStatus: http.StatusForbidden},
		{name: "error: routes closed without a key", apiKey: "", header: "Bearer ", wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
			req := httptest.NewRequest(http.MethodPost, "/internal/v1/inventory/check", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			InternalMiddleware(tt.apiKey)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewTransport_InternalSweep(t *testing.T) {
	inventoryApp := inventorymocks.NewInventoryApp(t)
	inventoryApp.On("CheckAll", mock.Anything).Return(&model.InventoryCheckResponse{Checked: 2, Raised: 1}, nil).Once()
	handler := NewTransport(&RestHandler{UserApp: usermocks.NewUserApp(t), InventoryApp: inventoryApp}, "secret")

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/inventory/check", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"checked":2`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "custom error keeps its status",
			err:        cerr.SetCustomError(constant.ErrInvalidStatusTransition),
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidStatusTransition],
		},
		{
			name:       "plain error becomes internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
