package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	response "renohub/internal/adapter/http/dto/response"
	"renohub/internal/adapter/http/handlers/mocks"
	"renohub/internal/domain/entities"
	"renohub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CalculateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIEstimateUseCase) *gin.Engine {
		h := NewEstimateHandler(uc)
		r := gin.New()
		r.POST("/v1/estimates/calculate", h.CalculateEstimate)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		uc.EXPECT().
			CalculateEstimate(gomock.Any(), "deck-refresh", gomock.Any(), "user-1").
			Return(entities.Estimate{TemplateID: "deck-refresh", Total: 1275}, nil)

		body := `{"template_id":"deck-refresh","form_data":{"deckLength":20},"user_id":"user-1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate", bytes.NewBufferString(body))
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got response.EstimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Total != 1275 {
			t.Fatalf("expected total 1275, got %v", got.Total)
		}
	})

	t.Run("missing template id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate", bytes.NewBufferString(`{"form_data":{}}`))
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown template maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		uc.EXPECT().
			CalculateEstimate(gomock.Any(), "bathroom-remodel", gomock.Any(), "").
			Return(entities.ZeroEstimate("bathroom-remodel"), usecase.ErrTemplateNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate",
			bytes.NewBufferString(`{"template_id":"bathroom-remodel"}`))
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		uc.EXPECT().
			CalculateEstimate(gomock.Any(), "deck-refresh", gomock.Any(), "").
			Return(entities.Estimate{}, errors.New("boom"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate",
			bytes.NewBufferString(`{"template_id":"deck-refresh"}`))
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
