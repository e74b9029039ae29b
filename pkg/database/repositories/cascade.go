package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrParentNotFound is returned when adding a child to a parent that does not
// exist. Rejecting the insert up front keeps orphaned children unreachable.
var ErrParentNotFound = errors.New("parent record not found")

// deleteWithChildren removes a parent row and every child referencing it in a
// single transaction, so no intermediate state with orphaned children is
// observable. parent must already be scoped to the row by the caller-supplied
// id; fkColumn names the child table's parent-reference column.
func deleteWithChildren[P any, C any](ctx context.Context, db *gorm.DB, parentID uuid.UUID, fkColumn string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent P
		if err := tx.Where("id = ?", parentID).First(&parent).Error; err != nil {
			return err
		}
		var child C
		if err := tx.Where(fkColumn+" = ?", parentID).Delete(&child).Error; err != nil {
			return fmt.Errorf("failed to delete child records: %w", err)
		}
		return tx.Where("id = ?", parentID).Delete(&parent).Error
	})
}

// nextPosition returns the insert position for a new child: one past the
// highest position ever used under the parent. Positions are never reused
// after deletions, so ordering by position is insertion order.
func nextPosition[C any](tx *gorm.DB, fkColumn string, parentID uuid.UUID) (int, error) {
	var child C
	var maxPos int
	// Unscoped so soft-deleted rows still reserve their positions; a new child
	// always lands after everything that ever existed.
	err := tx.Unscoped().Model(&child).
		Where(fkColumn+" = ?", parentID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, err
	}
	return maxPos + 1, nil
}

// parentExists verifies a parent row is present inside the transaction that
// will insert its child.
func parentExists[P any](tx *gorm.DB, parentID uuid.UUID) error {
	var count int64
	var parent P
	if err := tx.Model(&parent).Where("id = ?", parentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrParentNotFound
	}
	return nil
}
