package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookups(t *testing.T) {
	cat := Default()

	loc, ok := cat.FindLocation("ewr")
	require.True(t, ok)
	assert.Equal(t, "New Jersey", loc.City)

	_, ok = cat.FindLocation("atlantis")
	assert.False(t, ok)

	plan, ok := cat.FindPlan("voc-c-1c-2gb-50s")
	require.True(t, ok)
	assert.Equal(t, 10.0, plan.MonthlyPrice)
	assert.Equal(t, CategoryOptimizedCloud, plan.Category)

	addon, ok := cat.FindAddon("backups")
	require.True(t, ok)
	assert.Equal(t, AddonPercent, addon.Mode)
	assert.Equal(t, 0.20, addon.Rate)
}

func TestFindImageInPartition(t *testing.T) {
	cat := Default()

	img, ok := cat.FindImageInPartition("windows-2022", ImageOS)
	require.True(t, ok)
	assert.Equal(t, 16.0, img.ExtraCost)

	// The id exists, but only in the OS partition.
	_, ok = cat.FindImageInPartition("windows-2022", ImageApp)
	assert.False(t, ok)

	_, ok = cat.FindImage("windows-2022")
	assert.True(t, ok)
}

func TestCatalogIDsUnique(t *testing.T) {
	cat := Default()

	seen := make(map[string]bool)
	for _, loc := range cat.Locations {
		assert.False(t, seen[loc.ID], "duplicate location id %s", loc.ID)
		seen[loc.ID] = true
	}
	seen = make(map[string]bool)
	for _, plan := range cat.Plans {
		assert.False(t, seen[plan.ID], "duplicate plan id %s", plan.ID)
		seen[plan.ID] = true
	}
	seen = make(map[string]bool)
	for _, img := range cat.Images {
		assert.False(t, seen[img.ID], "duplicate image id %s", img.ID)
		seen[img.ID] = true
	}
}
