package wizard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/database/models"
)

func TestAssembleInstance(t *testing.T) {
	cat := catalog.Default()
	sel := readyInstance(cat)
	sel.Features = map[string]bool{"backups": true}

	res := Assemble(sel, cat)
	require.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "web-1", res.Name)
	assert.Equal(t, "instance", res.Kind)
	assert.Equal(t, "voc-c-1c-2gb-50s", res.PlanLabel)
	assert.Equal(t, "Ubuntu", res.ImageLabel)
	assert.Equal(t, "New Jersey", res.LocationLabel)
	assert.Equal(t, "north-america", res.Region)
	assert.Equal(t, models.StatusProvisioning, res.Status)
	assert.Equal(t, 12.0, res.CostMonthly)
}

func TestAssembleSnapshotsCost(t *testing.T) {
	cat := catalog.Default()
	sel := readyInstance(cat)

	res := Assemble(sel, cat)
	assert.Equal(t, ComputeTotal(sel, cat), res.CostMonthly)

	// Later selection edits must not affect the assembled record.
	sel.Features = map[string]bool{"ddos": true}
	assert.NotEqual(t, ComputeTotal(sel, cat), res.CostMonthly)
}

func TestAssembleUnknownReferences(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:        KindInstance,
		Name:        "ghost",
		PlanID:      "gone-plan",
		ImageID:     "gone-image",
		Quantity:    1,
		LocationIDs: []string{"gone-loc"},
	}

	res := Assemble(sel, cat)
	assert.Equal(t, UnknownLabel, res.PlanLabel)
	assert.Equal(t, UnknownLabel, res.ImageLabel)
	assert.Equal(t, UnknownLabel, res.LocationLabel)
	assert.Empty(t, res.Region)
}

func TestAssembleJoinsLocations(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{
		Kind:        KindLoadBalancer,
		Name:        "lb",
		Category:    catalog.CategoryAll,
		PlanID:      "vc2-1c-2gb",
		Quantity:    2,
		LocationIDs: []string{"ewr", "ams"},
	}

	res := Assemble(sel, cat)
	assert.Equal(t, "New Jersey, Amsterdam", res.LocationLabel)
	assert.Equal(t, "north-america", res.Region)
}

func TestAssembleClampsQuantity(t *testing.T) {
	cat := catalog.Default()
	sel := &Selection{Kind: KindVolume, Name: "v", SizeGB: 10}

	res := Assemble(sel, cat)
	assert.Equal(t, 1, res.Quantity)
}

func TestAssembleFreshIDs(t *testing.T) {
	cat := catalog.Default()
	sel := readyInstance(cat)

	first := Assemble(sel, cat)
	second := Assemble(sel, cat)
	assert.NotEqual(t, first.ID, second.ID)
}
