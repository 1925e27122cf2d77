package handlers

import (
	"net/http"
	"strconv"

	request "renohub/internal/adapter/http/dto/request"
	response "renohub/internal/adapter/http/dto/response"
	"renohub/internal/pricing"
	"renohub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler exposes the pure fee arithmetic. These endpoints are
// stateless; the same inputs always produce the same numbers.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// ContractorTotal resolves an estimate against one contractor's hourly rate.
func (h *PricingHandler) ContractorTotal(c *gin.Context) {
	var payload request.ContractorTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	p := pricing.ContractorTotal(payload.Estimate, payload.HourlyRate)
	c.JSON(http.StatusOK, response.FromContractorPricing(p))
}

// TechnicianPayout splits a project total by a commission percentage.
func (h *PricingHandler) TechnicianPayout(c *gin.Context) {
	var payload request.TechnicianPayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	p := pricing.TechnicianPayout(payload.ProjectTotal, payload.CommissionRate)
	c.JSON(http.StatusOK, response.FromPayout(p))
}

// PlatformFee answers GET /v1/pricing/platform-fee?subtotal=N.
func (h *PricingHandler) PlatformFee(c *gin.Context) {
	subtotal, err := strconv.ParseFloat(c.Query("subtotal"), 64)
	if err != nil || subtotal < 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_SUBTOTAL", "subtotal must be a non-negative number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PlatformFeeResponse{
		Subtotal:    subtotal,
		PlatformFee: pricing.PlatformFee(subtotal),
	})
}
