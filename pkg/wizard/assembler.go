package wizard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/database/models"
)

// UnknownLabel substitutes for any selection reference that no longer
// resolves against the catalog. The assembler is tolerant of stale ids; the
// readiness gate is the enforcement point that keeps them out of submissions.
const UnknownLabel = "Unknown"

// Assemble projects a selection into a finished resource descriptor: resolved
// human-readable labels, a fresh id, the pricing total snapshotted as the
// recorded cost, and an initial Provisioning status. It has no side effects;
// the caller persists the record and discards the selection. Callers must
// check IsReady first.
func Assemble(sel *Selection, cat *catalog.Catalog) *models.Resource {
	res := &models.Resource{
		ID:          uuid.New(),
		Name:        sel.Name,
		Kind:        string(sel.Kind),
		Quantity:    sel.Quantity,
		SizeGB:      sel.SizeGB,
		CostMonthly: ComputeTotal(sel, cat),
		Status:      models.StatusProvisioning,
	}
	if res.Quantity < 1 {
		res.Quantity = 1
	}

	res.PlanLabel = UnknownLabel
	if plan, ok := cat.FindPlan(sel.PlanID); ok {
		res.PlanLabel = plan.ID
	}

	res.ImageLabel = UnknownLabel
	if img, ok := cat.FindImageInPartition(sel.ImageID, sel.ImageTab); ok {
		res.ImageLabel = img.Name
	}

	res.LocationLabel, res.Region = resolveLocations(sel, cat)

	return res
}

// resolveLocations joins the chosen locations into a display label and picks
// the region of the first resolvable one. Unresolved ids render as Unknown
// but never fail the assembly.
func resolveLocations(sel *Selection, cat *catalog.Catalog) (label, region string) {
	if len(sel.LocationIDs) == 0 {
		return UnknownLabel, ""
	}
	cities := make([]string, 0, len(sel.LocationIDs))
	for _, id := range sel.LocationIDs {
		loc, ok := cat.FindLocation(id)
		if !ok {
			cities = append(cities, UnknownLabel)
			continue
		}
		cities = append(cities, loc.City)
		if region == "" {
			region = string(loc.Region)
		}
	}
	return strings.Join(cities, ", "), region
}
