package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"renohub/internal/adapter/http/handlers/mocks"
	"renohub/internal/domain/entities"
	"renohub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(uc *mocks.MockIQuoteUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.POST("/v1/projects/:id/quotes", h.RequestQuotes)
	r.GET("/v1/projects/:id/quotes", h.GetSession)
	r.POST("/v1/projects/:id/quotes/:contractor_id/finalize", h.FinalizeContractor)
	return r
}

func TestQuoteHandler_RequestQuotes(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().RequestQuotes(gomock.Any(), "p-1", []string{"contractor-1"}, "user-1").
			Return(usecase.QuoteSession{
				ProjectID: "p-1",
				Requested: true,
				Quotes:    []entities.Quote{{ContractorID: "contractor-1", Status: entities.QuoteStatusPending}},
			}, nil)

		body := `{"contractor_ids":["contractor-1"],"user_id":"user-1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes", bytes.NewBufferString(body))
		newQuoteRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		var got usecase.QuoteSession
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !got.Requested || len(got.Quotes) != 1 {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("empty selection maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().RequestQuotes(gomock.Any(), "p-1", gomock.Any(), "").
			Return(usecase.QuoteSession{}, usecase.ErrNoContractorsSelected)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes",
			bytes.NewBufferString(`{"contractor_ids":[]}`))
		newQuoteRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate request maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().RequestQuotes(gomock.Any(), "p-1", gomock.Any(), "").
			Return(usecase.QuoteSession{}, usecase.ErrQuotesAlreadyRequested)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes",
			bytes.NewBufferString(`{"contractor_ids":["contractor-1"]}`))
		newQuoteRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)

	uc.EXPECT().GetSession("p-1").Return(usecase.QuoteSession{}, usecase.ErrQuotesNotRequested)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/quotes", nil)
	newQuoteRouter(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestQuoteHandler_FinalizeContractor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().FinalizeContractor(gomock.Any(), "p-1", "contractor-1", "user-1").
			Return(entities.ProjectRecord{ID: "p-1", Status: entities.ProjectStatusContractorSelected}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes/contractor-1/finalize",
			bytes.NewBufferString(`{"user_id":"user-1"}`))
		newQuoteRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quote not received maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().FinalizeContractor(gomock.Any(), "p-1", "contractor-1", "").
			Return(entities.ProjectRecord{}, usecase.ErrQuoteNotReceived)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/quotes/contractor-1/finalize",
			bytes.NewBufferString(`{}`))
		newQuoteRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/v1/templates", h.ListTemplates)
	r.GET("/v1/templates/:id", h.GetTemplate)
	r.GET("/v1/contractors", h.ListContractors)

	t.Run("list templates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("expected 5 templates, got %d", len(got))
		}
		// Pricing tables never leave the server.
		if _, leaked := got[0]["pricing"]; leaked {
			t.Fatal("template response must not expose pricing data")
		}
	})

	t.Run("get template", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/firepit", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/templates/bathroom-remodel", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list contractors", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/contractors", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 contractors, got %d", len(got))
		}
	})
}
