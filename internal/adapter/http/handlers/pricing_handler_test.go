package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "renohub/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPricingHandler()
	r := gin.New()
	r.POST("/v1/pricing/contractor-total", h.ContractorTotal)
	r.POST("/v1/pricing/technician-payout", h.TechnicianPayout)
	r.GET("/v1/pricing/platform-fee", h.PlatformFee)
	return r
}

func TestPricingHandler_ContractorTotal(t *testing.T) {
	r := newPricingRouter()

	body := `{
		"estimate": {
			"templateId": "deck-refresh",
			"materialCost": 1150,
			"laborHours": 51.2,
			"transportation": 50,
			"disposal": 75,
			"total": 1275
		},
		"hourly_rate": 65
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/contractor-total", bytes.NewBufferString(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got response.ContractorPricingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.LaborCost != 3328 || got.PlatformFee != 399 || got.Total != 5252 {
		t.Fatalf("unexpected pricing: %+v", got)
	}
}

func TestPricingHandler_ContractorTotal_InvalidPayload(t *testing.T) {
	r := newPricingRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/contractor-total", bytes.NewBufferString(`{"hourly_rate": -1}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPricingHandler_TechnicianPayout(t *testing.T) {
	r := newPricingRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/technician-payout",
		bytes.NewBufferString(`{"project_total": 1000, "commission_rate": 25}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got response.PayoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.PlatformCommission != 250 || got.TechnicianPayout != 750 {
		t.Fatalf("unexpected payout: %+v", got)
	}
}

func TestPricingHandler_PlatformFee(t *testing.T) {
	r := newPricingRouter()

	t.Run("capped tier", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/platform-fee?subtotal=5000", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.PlatformFeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.PlatformFee != 399 {
			t.Fatalf("expected fee 399, got %v", got.PlatformFee)
		}
	})

	t.Run("missing subtotal", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/platform-fee", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative subtotal", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/platform-fee?subtotal=-5", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
