package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceStatus is the provisioning lifecycle state of a deployed resource.
type ResourceStatus string

const (
	StatusProvisioning ResourceStatus = "Provisioning"
	StatusRunning      ResourceStatus = "Running"
	StatusUpgrading    ResourceStatus = "Upgrading"
	StatusDeleted      ResourceStatus = "Deleted"
)

// Valid checks if the status is a known lifecycle state.
func (s ResourceStatus) Valid() bool {
	switch s {
	case StatusProvisioning, StatusRunning, StatusUpgrading, StatusDeleted:
		return true
	default:
		return false
	}
}

// ValidTransition reports whether the status machine permits moving from one
// state to another. Allowed: Provisioning→Running, Running→Upgrading,
// Upgrading→Running, Running→Deleted. Everything else is rejected.
func ValidTransition(from, to ResourceStatus) bool {
	switch from {
	case StatusProvisioning:
		return to == StatusRunning
	case StatusRunning:
		return to == StatusUpgrading || to == StatusDeleted
	case StatusUpgrading:
		return to == StatusRunning
	default:
		return false
	}
}

// Resource is a finished resource descriptor: the backend-shaped record built
// from a submitted wizard selection. Labels are resolved human-readable
// strings snapshotted at creation time, as is the monthly cost.
type Resource struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Kind          string         `gorm:"not null;index" json:"kind"`
	PlanLabel     string         `json:"plan_label"`
	ImageLabel    string         `json:"image_label"`
	LocationLabel string         `json:"location_label"`
	Region        string         `json:"region"`
	Quantity      int            `gorm:"default:1" json:"quantity"`
	SizeGB        int            `json:"size_gb"`
	CostMonthly   float64        `gorm:"check:cost_monthly >= 0" json:"cost_monthly"`
	Status        ResourceStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
