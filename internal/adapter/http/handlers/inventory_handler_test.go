package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_oficina/internal/adapter/http/handlers/mocks"
	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_CheckAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/parts/check-availability", h.CheckAvailability)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/check-availability", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/parts/check-availability", h.CheckAvailability)

		uc.EXPECT().CheckOrderAvailability(gomock.Any(), "os-1").Return(entities.PartsAvailabilityResult{}, usecase.ErrPartsGatewayNotReady)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/check-availability", bytes.NewBufferString(`{"service_order_id":"os-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success with missing parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/parts/check-availability", h.CheckAvailability)

		uc.EXPECT().CheckOrderAvailability(gomock.Any(), "os-1").Return(entities.PartsAvailabilityResult{
			AllAvailable:    false,
			HasMissingParts: true,
			Items: []entities.PartAvailability{
				{PartID: "p-1", Requested: 2, CurrentStock: 1, Available: false},
				{PartID: "p-2", Requested: 1, CurrentStock: 4, Available: true},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/parts/check-availability", bytes.NewBufferString(`{"service_order_id":"os-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["has_missing_parts"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		items, ok := body["items"].([]any)
		if !ok || len(items) != 2 {
			t.Fatalf("expected 2 items, got %s", w.Body.String())
		}
	})
}

func TestInventoryHandler_GetPartStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quantity defaults to 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/parts/:id/stock", h.GetPartStock)

		uc.EXPECT().CheckPartStock(gomock.Any(), "p-1", 1).Return(entities.PartStockCheck{
			PartStock: entities.PartStock{PartID: "p-1", CurrentStock: 3},
			Requested: 1, Sufficient: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parts/p-1/stock", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quantity from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/parts/:id/stock", h.GetPartStock)

		uc.EXPECT().CheckPartStock(gomock.Any(), "p-1", 5).Return(entities.PartStockCheck{
			PartStock: entities.PartStock{PartID: "p-1", CurrentStock: 3},
			Requested: 5, Sufficient: false,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parts/p-1/stock?quantity=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sufficient"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("non-numeric quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/parts/:id/stock", h.GetPartStock)

		req := httptest.NewRequest(http.MethodGet, "/v1/parts/p-1/stock?quantity=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid quantity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/parts/:id/stock", h.GetPartStock)

		uc.EXPECT().CheckPartStock(gomock.Any(), "p-1", -2).Return(entities.PartStockCheck{}, usecase.ErrInvalidPartQuantity)

		req := httptest.NewRequest(http.MethodGet, "/v1/parts/p-1/stock?quantity=-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapInventoryError(t *testing.T) {
	if got := mapInventoryError(usecase.ErrInvalidPartID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInventoryError(usecase.ErrServiceOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInventoryError(usecase.ErrPartsGatewayNotReady); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapInventoryError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
