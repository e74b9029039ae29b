package wizard

import (
	"strings"

	"github.com/skystack/console/pkg/catalog"
)

// Options holds the currently valid option sets for a selection's pickers.
// Every slice is a subset of the catalog; an empty slice is a valid result
// that the caller renders as an explicit empty state.
type Options struct {
	Plans     []catalog.Plan     `json:"plans"`
	Images    []catalog.Image    `json:"images"`
	Locations []catalog.Location `json:"locations"`
}

// Resolve computes the option sets a selection may currently pick from.
//
// Plans are filtered by the active category ("all" passes everything) and a
// case-insensitive substring match of the search text against the plan id.
// Images are partitioned by the active image tab. Locations are partitioned by
// the active region tab and filtered by a case-insensitive city search.
func Resolve(sel *Selection, cat *catalog.Catalog) Options {
	var opts Options

	planSearch := strings.ToLower(sel.PlanSearch)
	for _, plan := range cat.Plans {
		if sel.Category != catalog.CategoryAll && plan.Category != sel.Category {
			continue
		}
		if planSearch != "" && !strings.Contains(strings.ToLower(plan.ID), planSearch) {
			continue
		}
		opts.Plans = append(opts.Plans, plan)
	}

	for _, img := range cat.Images {
		if img.Type == sel.ImageTab {
			opts.Images = append(opts.Images, img)
		}
	}

	locSearch := strings.ToLower(sel.LocationSearch)
	for _, loc := range cat.Locations {
		if sel.Region != "" && loc.Region != sel.Region {
			continue
		}
		if locSearch != "" && !strings.Contains(strings.ToLower(loc.City), locSearch) {
			continue
		}
		opts.Locations = append(opts.Locations, loc)
	}

	return opts
}

// PlanResolved reports whether the selection's plan id survives the active
// category and search filters. A plan that exists in the catalog but is hidden
// by the current filter counts as unresolved; the gate refuses submission
// until the user picks a visible plan.
func PlanResolved(sel *Selection, cat *catalog.Catalog) bool {
	for _, plan := range Resolve(sel, cat).Plans {
		if plan.ID == sel.PlanID {
			return true
		}
	}
	return false
}
