package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
)

func newTestResource(name, kind string, status models.ResourceStatus) *models.Resource {
	return &models.Resource{
		Name:        name,
		Kind:        kind,
		PlanLabel:   "vc2-1c-2gb",
		Quantity:    1,
		CostMonthly: 10,
		Status:      status,
	}
}

func TestResourceLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	res := newTestResource("web-1", "instance", models.StatusProvisioning)
	require.NoError(t, repo.Create(ctx, res))

	require.NoError(t, repo.TransitionStatus(ctx, res.ID, models.StatusRunning))
	require.NoError(t, repo.TransitionStatus(ctx, res.ID, models.StatusUpgrading))
	require.NoError(t, repo.TransitionStatus(ctx, res.ID, models.StatusRunning))

	loaded, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, loaded.Status)
}

func TestTransitionStatusRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	res := newTestResource("web-1", "instance", models.StatusProvisioning)
	require.NoError(t, repo.Create(ctx, res))

	err := repo.TransitionStatus(ctx, res.ID, models.StatusUpgrading)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The failed transition must not have changed anything.
	loaded, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProvisioning, loaded.Status)
}

func TestDeleteOnlyFromRunning(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	res := newTestResource("web-1", "instance", models.StatusProvisioning)
	require.NoError(t, repo.Create(ctx, res))

	err := repo.Delete(ctx, res.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, repo.TransitionStatus(ctx, res.ID, models.StatusRunning))
	require.NoError(t, repo.Delete(ctx, res.ID))

	_, err = repo.GetByID(ctx, res.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletedResourceLeavesList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	keep := newTestResource("keep", "instance", models.StatusRunning)
	drop := newTestResource("drop", "instance", models.StatusRunning)
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	resources, err := repo.List(ctx, "", 25, 0, "", "")
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "keep", resources[0].Name)
}

func TestListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestResource("web-1", "instance", models.StatusRunning)))
	require.NoError(t, repo.Create(ctx, newTestResource("web-2", "instance", models.StatusRunning)))
	require.NoError(t, repo.Create(ctx, newTestResource("data", "volume", models.StatusRunning)))

	byKind, err := repo.List(ctx, "volume", 25, 0, "", "")
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, "data", byKind[0].Name)

	byName, err := repo.List(ctx, "", 25, 0, "web", "")
	require.NoError(t, err)
	assert.Len(t, byName, 2)
}

func TestResize(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)
	ctx := context.Background()

	res := newTestResource("data", "volume", models.StatusRunning)
	res.SizeGB = 100
	res.CostMonthly = 10
	require.NoError(t, repo.Create(ctx, res))

	require.NoError(t, repo.Resize(ctx, res.ID, 250, 25))

	loaded, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, loaded.SizeGB)
	assert.Equal(t, 25.0, loaded.CostMonthly)
}

func TestResizeNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceRepository(db)

	err := repo.Resize(context.Background(), uuid.New(), 100, 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
