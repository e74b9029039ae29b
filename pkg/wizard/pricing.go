package wizard

import (
	"fmt"

	"github.com/skystack/console/pkg/catalog"
)

const (
	// HoursPerMonth is the divisor for converting monthly prices to hourly
	// display rates.
	HoursPerMonth = 730

	// VolumeRatePerGB is the monthly price per gigabyte of block or file
	// storage.
	VolumeRatePerGB = 0.10
)

// LineItem is one contribution to the monthly total, for display breakdowns.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown is the itemized result of the pricing pipeline. Items sum to
// Monthly; item order follows pipeline order and only affects display.
type Breakdown struct {
	Items   []LineItem `json:"items"`
	Monthly float64    `json:"monthly"`
}

// ComputeTotal runs the pricing pipeline and returns the monthly total. It is
// pure: identical selections yield identical totals, and every contribution is
// non-negative.
func ComputeTotal(sel *Selection, cat *catalog.Catalog) float64 {
	return ComputeBreakdown(sel, cat).Monthly
}

// HourlyRate converts a monthly price to its hourly display rate. No rounding
// happens here; callers round at display time only.
func HourlyRate(monthly float64) float64 {
	return monthly / HoursPerMonth
}

// ComputeBreakdown evaluates the pricing terms for the selection's wizard
// kind. Unresolved references contribute zero rather than failing: a missing
// plan prices at 0 and an image id outside the active tab partition adds no
// surcharge.
func ComputeBreakdown(sel *Selection, cat *catalog.Catalog) Breakdown {
	var b Breakdown

	quantity := sel.Quantity
	if quantity < 1 {
		quantity = 1
	}

	switch sel.Kind {
	case KindInstance, KindKubernetes:
		base := basePlanPrice(sel, cat)
		noun := "Plan"
		if sel.Kind == KindKubernetes {
			noun = "Node pool"
		}
		b.add(fmt.Sprintf("%s × %d", noun, quantity), base*float64(quantity))
		if sel.Kind == KindInstance {
			if img, ok := cat.FindImageInPartition(sel.ImageID, sel.ImageTab); ok && img.ExtraCost > 0 {
				b.add(img.Name, img.ExtraCost*float64(quantity))
			}
		}
		b.addAddons(sel, cat, base)

	case KindLoadBalancer:
		base := basePlanPrice(sel, cat)
		b.add(fmt.Sprintf("Nodes × %d", quantity), base*float64(quantity))
		b.addAddons(sel, cat, base)
		locations := len(sel.LocationIDs)
		if locations > 1 {
			b.scale(float64(locations))
		}

	case KindVolume, KindFileSystem:
		size := sel.SizeGB
		if size < 0 {
			size = 0
		}
		b.add(fmt.Sprintf("Storage %d GB", size), float64(size)*VolumeRatePerGB)

	case KindBucket:
		b.add("Object storage plan", basePlanPrice(sel, cat))
		b.addAddons(sel, cat, basePlanPrice(sel, cat))

	case KindVPC:
		// VPC networks carry no charge.
	}

	return b
}

// basePlanPrice looks up the selected plan's monthly price, or 0 when the
// reference does not resolve.
func basePlanPrice(sel *Selection, cat *catalog.Catalog) float64 {
	if plan, ok := cat.FindPlan(sel.PlanID); ok {
		return plan.MonthlyPrice
	}
	return 0
}

func (b *Breakdown) add(label string, amount float64) {
	if amount < 0 {
		amount = 0
	}
	b.Items = append(b.Items, LineItem{Label: label, Amount: amount})
	b.Monthly += amount
}

// addAddons appends one term per enabled feature flag. Percent addons charge a
// fraction of the base plan price; flat addons charge a fixed amount. Flags
// naming no catalog addon contribute nothing.
func (b *Breakdown) addAddons(sel *Selection, cat *catalog.Catalog, base float64) {
	for _, addon := range cat.Addons {
		if !sel.Features[addon.ID] {
			continue
		}
		switch addon.Mode {
		case catalog.AddonPercent:
			b.add(addon.Label, base*addon.Rate)
		case catalog.AddonFlat:
			b.add(addon.Label, addon.Flat)
		}
	}
}

// scale multiplies every term by the given factor, used for multi-location
// deployments. Items are scaled individually so they still sum to Monthly.
func (b *Breakdown) scale(factor float64) {
	for i := range b.Items {
		b.Items[i].Amount *= factor
	}
	b.Monthly *= factor
}
