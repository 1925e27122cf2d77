package handlers

import (
	"errors"
	"net/http"

	request "renohub/internal/adapter/http/dto/request"
	response "renohub/internal/adapter/http/dto/response"
	"renohub/internal/usecase"
	"renohub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the simulated quote flow.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// RequestQuotes starts a quote session for the selected contractors.
func (h *QuoteHandler) RequestQuotes(c *gin.Context) {
	var payload request.RequestQuotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	session, err := h.usecase.RequestQuotes(c.Request.Context(), c.Param("id"), payload.ContractorIDs, payload.UserID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, session)
}

// GetSession returns the current quote-session snapshot for a project.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, session)
}

// FinalizeContractor commits the user to one contractor's received quote.
func (h *QuoteHandler) FinalizeContractor(c *gin.Context) {
	var payload request.FinalizeContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	project, err := h.usecase.FinalizeContractor(c.Request.Context(), c.Param("id"), c.Param("contractor_id"), payload.UserID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoContractorsSelected):
		return pkg.NewDomainErrorSimple("NO_CONTRACTORS_SELECTED", "At least one contractor must be selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownContractor):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotesAlreadyRequested):
		return pkg.NewDomainErrorSimple("QUOTES_ALREADY_REQUESTED", "Quotes already requested for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotesNotRequested):
		return pkg.NewDomainErrorSimple("QUOTES_NOT_REQUESTED", "Quotes were not requested for this project", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotReceived):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_RECEIVED", "Contractor quote has not been received yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractorFinalized):
		return pkg.NewDomainErrorSimple("CONTRACTOR_ALREADY_FINALIZED", "A contractor is already finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
