package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/catalog"
)

// CatalogHandlers serves the read-only catalog snapshot.
type CatalogHandlers struct {
	catalog *catalog.Catalog
}

func NewCatalogHandlers(cat *catalog.Catalog) *CatalogHandlers {
	return &CatalogHandlers{catalog: cat}
}

// GetCatalog handles GET /api/v1/catalog
func (h *CatalogHandlers) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
