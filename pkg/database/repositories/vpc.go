package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
)

type VPCRepository struct {
	db *gorm.DB
}

func NewVPCRepository(db *gorm.DB) *VPCRepository {
	return &VPCRepository{db: db}
}

func (r *VPCRepository) Create(ctx context.Context, network *models.VPCNetwork) error {
	return r.db.WithContext(ctx).Create(network).Error
}

func (r *VPCRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.VPCNetwork, error) {
	var network models.VPCNetwork
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&network).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

func (r *VPCRepository) List(ctx context.Context) ([]models.VPCNetwork, error) {
	var networks []models.VPCNetwork
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&networks).Error
	return networks, err
}

// GetWithRoutes loads a network together with its routes in insertion order.
func (r *VPCRepository) GetWithRoutes(ctx context.Context, id uuid.UUID) (*models.VPCNetwork, error) {
	var network models.VPCNetwork
	err := r.db.WithContext(ctx).
		Preload("Routes", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&network).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// DeleteCascade removes the network and all of its routes atomically.
func (r *VPCRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return deleteWithChildren[models.VPCNetwork, models.VPCRoute](ctx, r.db, id, "network_id")
}

// AddRoute appends a route to a network. The parent must exist at insert time.
func (r *VPCRepository) AddRoute(ctx context.Context, networkID uuid.UUID, route *models.VPCRoute) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := parentExists[models.VPCNetwork](tx, networkID); err != nil {
			return err
		}
		pos, err := nextPosition[models.VPCRoute](tx, "network_id", networkID)
		if err != nil {
			return err
		}
		route.NetworkID = networkID
		route.Position = pos
		return tx.Create(route).Error
	})
}

// VPCRoutePatch holds the fields a route update may change. ID, NetworkID and
// Position are not patchable.
type VPCRoutePatch struct {
	Destination *string `json:"destination"`
	NextHop     *string `json:"next_hop"`
}

// UpdateRoute applies a patch to a route by id.
func (r *VPCRepository) UpdateRoute(ctx context.Context, routeID uuid.UUID, patch VPCRoutePatch) (*models.VPCRoute, error) {
	updates := make(map[string]interface{})
	if patch.Destination != nil {
		updates["destination"] = *patch.Destination
	}
	if patch.NextHop != nil {
		updates["next_hop"] = *patch.NextHop
	}

	var route models.VPCRoute
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", routeID).First(&route).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&route).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", routeID).First(&route).Error
	})
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *VPCRepository) DeleteRoute(ctx context.Context, routeID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", routeID).Delete(&models.VPCRoute{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRoutes returns a network's routes in insertion order.
func (r *VPCRepository) ListRoutes(ctx context.Context, networkID uuid.UUID) ([]models.VPCRoute, error) {
	var routes []models.VPCRoute
	err := r.db.WithContext(ctx).
		Where("network_id = ?", networkID).
		Order("position").
		Find(&routes).Error
	return routes, err
}
