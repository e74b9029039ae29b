package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VPCNetwork is a private network scoped to one location, owning an ordered
// list of routes. Deleting a network deletes its routes in the same
// transaction.
type VPCNetwork struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	LocationID string         `gorm:"not null;index" json:"location_id"`
	Subnet     string         `gorm:"not null" json:"subnet"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Routes []VPCRoute `gorm:"foreignKey:NetworkID;references:ID" json:"routes,omitempty"`
}

func (n *VPCNetwork) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// VPCRoute is one route inside a network. ID and NetworkID are immutable
// after creation; Destination and NextHop are the patchable fields.
type VPCRoute struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	NetworkID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"network_id"`
	Position    int            `gorm:"not null" json:"position"`
	Destination string         `gorm:"not null" json:"destination"`
	NextHop     string         `gorm:"not null" json:"next_hop"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Network *VPCNetwork `gorm:"foreignKey:NetworkID" json:"network,omitempty"`
}

func (r *VPCRoute) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
