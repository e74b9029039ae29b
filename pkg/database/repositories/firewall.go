package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
)

type FirewallRepository struct {
	db *gorm.DB
}

func NewFirewallRepository(db *gorm.DB) *FirewallRepository {
	return &FirewallRepository{db: db}
}

func (r *FirewallRepository) Create(ctx context.Context, group *models.FirewallGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *FirewallRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FirewallGroup, error) {
	var group models.FirewallGroup
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *FirewallRepository) List(ctx context.Context) ([]models.FirewallGroup, error) {
	var groups []models.FirewallGroup
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&groups).Error
	return groups, err
}

// GetWithRules loads a group together with its rules in insertion order.
func (r *FirewallRepository) GetWithRules(ctx context.Context, id uuid.UUID) (*models.FirewallGroup, error) {
	var group models.FirewallGroup
	err := r.db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteCascade removes the group and all of its rules atomically.
func (r *FirewallRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return deleteWithChildren[models.FirewallGroup, models.FirewallRule](ctx, r.db, id, "group_id")
}

// AddRule appends a rule to a group. The parent must exist at insert time.
func (r *FirewallRepository) AddRule(ctx context.Context, groupID uuid.UUID, rule *models.FirewallRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := parentExists[models.FirewallGroup](tx, groupID); err != nil {
			return err
		}
		pos, err := nextPosition[models.FirewallRule](tx, "group_id", groupID)
		if err != nil {
			return err
		}
		rule.GroupID = groupID
		rule.Position = pos
		return tx.Create(rule).Error
	})
}

// FirewallRulePatch holds the fields a rule update may change. ID, GroupID,
// Position and Direction are not patchable.
type FirewallRulePatch struct {
	Protocol  *string `json:"protocol"`
	PortRange *string `json:"port_range"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
}

// UpdateRule applies a patch to a rule by id.
func (r *FirewallRepository) UpdateRule(ctx context.Context, ruleID uuid.UUID, patch FirewallRulePatch) (*models.FirewallRule, error) {
	updates := make(map[string]interface{})
	if patch.Protocol != nil {
		updates["protocol"] = *patch.Protocol
	}
	if patch.PortRange != nil {
		updates["port_range"] = *patch.PortRange
	}
	if patch.Source != nil {
		updates["source"] = *patch.Source
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	var rule models.FirewallRule
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", ruleID).First(&rule).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&rule).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", ruleID).First(&rule).Error
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *FirewallRepository) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", ruleID).Delete(&models.FirewallRule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRules returns a group's rules in insertion order.
func (r *FirewallRepository) ListRules(ctx context.Context, groupID uuid.UUID) ([]models.FirewallRule, error) {
	var rules []models.FirewallRule
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("position").
		Find(&rules).Error
	return rules, err
}
