package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/wizard"
)

// QuoteHandlers recomputes the derived state for a wizard selection: the
// filtered option sets, the itemized price, and whether the primary action is
// currently permitted. The endpoint is pure; it never persists anything.
type QuoteHandlers struct {
	catalog *catalog.Catalog
}

func NewQuoteHandlers(cat *catalog.Catalog) *QuoteHandlers {
	return &QuoteHandlers{catalog: cat}
}

// QuoteResponse is the full derived state for one selection.
type QuoteResponse struct {
	Options   wizard.Options   `json:"options"`
	Breakdown wizard.Breakdown `json:"breakdown"`
	Monthly   float64          `json:"monthly"`
	Hourly    float64          `json:"hourly"`
	Ready     bool             `json:"ready"`
}

// CreateQuote handles POST /api/v1/quotes
func (h *QuoteHandlers) CreateQuote(c *gin.Context) {
	var sel wizard.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid selection format",
		))
		return
	}
	if !sel.Kind.Valid() {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Unknown wizard kind",
		))
		return
	}

	breakdown := wizard.ComputeBreakdown(&sel, h.catalog)
	c.JSON(http.StatusOK, QuoteResponse{
		Options:   wizard.Resolve(&sel, h.catalog),
		Breakdown: breakdown,
		Monthly:   breakdown.Monthly,
		Hourly:    wizard.HourlyRate(breakdown.Monthly),
		Ready:     wizard.IsReady(&sel, h.catalog),
	})
}
