package routes

import (
	"renohub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTemplates   = "/templates"
	PathContractors = "/contractors"
	PathEstimates   = "/estimates"
	PathPricing     = "/pricing"
	PathProjects    = "/projects"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	estimateHandler *handlers.EstimateHandler,
	pricingHandler *handlers.PricingHandler,
	projectHandler *handlers.ProjectHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", catalogHandler.ListTemplates)
		templates.GET("/:id", catalogHandler.GetTemplate)
	}

	rg.GET(PathContractors, catalogHandler.ListContractors)

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", estimateHandler.CalculateEstimate)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/contractor-total", pricingHandler.ContractorTotal)
		pricing.POST("/technician-payout", pricingHandler.TechnicianPayout)
		pricing.GET("/platform-fee", pricingHandler.PlatformFee)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.POST("/:id/confirm", projectHandler.ConfirmSchedule)

		projects.POST("/:id/quotes", quoteHandler.RequestQuotes)
		projects.GET("/:id/quotes", quoteHandler.GetSession)
		projects.POST("/:id/quotes/:contractor_id/finalize", quoteHandler.FinalizeContractor)
	}
}
