package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/console/pkg/catalog"
)

func TestComputeBreakdownInstanceWithBackups(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "web-1",
		Category: catalog.CategoryAll,
		PlanID:   "voc-c-1c-2gb-50s",
		ImageTab: catalog.ImageOS,
		ImageID:  "ubuntu-24-04",
		Quantity: 1,
		Features: map[string]bool{"backups": true},
	}

	b := ComputeBreakdown(sel, cat)
	assert.Equal(t, 12.0, b.Monthly)
	assert.InDelta(t, 12.0/730.0, HourlyRate(b.Monthly), 1e-9)
}

func TestComputeBreakdownLoadBalancerMultiLocation(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:        KindLoadBalancer,
		Name:        "lb-prod",
		Category:    catalog.CategoryAll,
		PlanID:      "vc2-1c-2gb",
		Quantity:    2,
		LocationIDs: []string{"ewr", "ams"},
	}

	b := ComputeBreakdown(sel, cat)
	assert.Equal(t, 40.0, b.Monthly)

	// Items are scaled individually so they still sum to the total.
	var sum float64
	for _, item := range b.Items {
		sum += item.Amount
	}
	assert.InDelta(t, b.Monthly, sum, 1e-9)
}

func TestComputeBreakdownVolumeSized(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindVolume,
		Name:     "data",
		Quantity: 1,
		SizeGB:   250,
	}

	assert.Equal(t, 25.0, ComputeTotal(sel, cat))
}

func TestComputeBreakdownWindowsSurcharge(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "win",
		Category: catalog.CategoryAll,
		PlanID:   "vc2-1c-2gb",
		ImageTab: catalog.ImageOS,
		ImageID:  "windows-2022",
		Quantity: 3,
	}

	// 3 × ($10 plan + $16 license)
	assert.Equal(t, 78.0, ComputeTotal(sel, cat))
}

func TestComputeBreakdownImageOutsideTabAddsNothing(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "win",
		Category: catalog.CategoryAll,
		PlanID:   "vc2-1c-2gb",
		ImageTab: catalog.ImageApp,
		ImageID:  "windows-2022",
		Quantity: 1,
	}

	// windows-2022 lives in the OS partition; under the App tab it does not
	// resolve and the surcharge must not apply.
	assert.Equal(t, 10.0, ComputeTotal(sel, cat))
}

func TestComputeBreakdownUnresolvedPlanPricesZero(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "x",
		PlanID:   "no-such-plan",
		Quantity: 1,
	}

	assert.Equal(t, 0.0, ComputeTotal(sel, cat))
}

func TestComputeBreakdownVPCIsFree(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:        KindVPC,
		Name:        "net",
		Quantity:    1,
		LocationIDs: []string{"ewr"},
	}

	b := ComputeBreakdown(sel, cat)
	assert.Equal(t, 0.0, b.Monthly)
	assert.Empty(t, b.Items)
}

func TestComputeBreakdownDeterministic(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "web",
		Category: catalog.CategoryAll,
		PlanID:   "voc-c-1c-2gb-50s",
		ImageTab: catalog.ImageOS,
		ImageID:  "ubuntu-24-04",
		Quantity: 2,
		Features: map[string]bool{"backups": true, "ddos": true},
	}

	first := ComputeBreakdown(sel, cat)
	second := ComputeBreakdown(sel, cat)
	require.Equal(t, first, second)
}

func TestComputeBreakdownAddonNeverDecreasesTotal(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "web",
		Category: catalog.CategoryAll,
		PlanID:   "vc2-2c-4gb",
		ImageTab: catalog.ImageOS,
		ImageID:  "debian-12",
		Quantity: 1,
		Features: map[string]bool{},
	}

	total := ComputeTotal(sel, cat)
	for _, addon := range cat.Addons {
		sel.Features[addon.ID] = true
		next := ComputeTotal(sel, cat)
		assert.GreaterOrEqual(t, next, total, "enabling %s must not lower the total", addon.ID)
		total = next
	}
}

func TestComputeBreakdownItemsSumToMonthly(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:     KindInstance,
		Name:     "web",
		Category: catalog.CategoryAll,
		PlanID:   "vc2-4c-8gb",
		ImageTab: catalog.ImageApp,
		ImageID:  "cpanel",
		Quantity: 2,
		Features: map[string]bool{"backups": true, "ssl": true},
	}

	b := ComputeBreakdown(sel, cat)
	var sum float64
	for _, item := range b.Items {
		require.GreaterOrEqual(t, item.Amount, 0.0)
		sum += item.Amount
	}
	assert.InDelta(t, b.Monthly, sum, 1e-9)
}
