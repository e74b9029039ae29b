package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/pagination"
)

// ErrInvalidTransition is returned when a status change is not permitted by
// the resource lifecycle state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// List retrieves resources with pagination, optional kind and name filters,
// and a whitelisted sort order.
func (r *ResourceRepository) List(ctx context.Context, kind string, limit, offset int, filter, sortOrder string) ([]models.Resource, error) {
	query := r.db.WithContext(ctx).Model(&models.Resource{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if filter != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter))
	}

	limit, offset = pagination.ClampPaginationParams(limit, offset)
	sortOrder = pagination.SanitizeSortOrder(sortOrder, pagination.ResourceSortColumns, "created_at DESC, id DESC")

	var resources []models.Resource
	err := query.Limit(limit).Offset(offset).Order(sortOrder).Find(&resources).Error
	return resources, err
}

// TransitionStatus moves a resource through its lifecycle state machine. The
// read and the update share one transaction so a concurrent transition cannot
// slip between them. A transition the machine does not allow returns
// ErrInvalidTransition.
func (r *ResourceRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to models.ResourceStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		if err := tx.Where("id = ?", id).First(&resource).Error; err != nil {
			return err
		}
		if !models.ValidTransition(resource.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, resource.Status, to)
		}
		return tx.Model(&resource).Update("status", to).Error
	})
}

// Resize updates a sized resource's capacity and its recomputed monthly cost.
func (r *ResourceRepository) Resize(ctx context.Context, id uuid.UUID, sizeGB int, costMonthly float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"size_gb": sizeGB, "cost_monthly": costMonthly})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete marks the resource Deleted and removes it from the list. Only
// Running resources may be deleted; the terminal state is enforced by the
// transition check.
func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		if err := tx.Where("id = ?", id).First(&resource).Error; err != nil {
			return err
		}
		if !models.ValidTransition(resource.Status, models.StatusDeleted) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, resource.Status, models.StatusDeleted)
		}
		if err := tx.Model(&resource).Update("status", models.StatusDeleted).Error; err != nil {
			return err
		}
		return tx.Delete(&resource).Error
	})
}
