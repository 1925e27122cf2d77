package handlers

import (
	"net/http"

	response "renohub/internal/adapter/http/dto/response"
	"renohub/internal/domain/catalog"
	"renohub/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the template and contractor catalogs. Both are
// compiled in, so there is no use case layer behind this handler.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTemplates(catalog.All()))
}

func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	tpl, ok := catalog.Get(id)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *CatalogHandler) ListContractors(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Contractors())
}
