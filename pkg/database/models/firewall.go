package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleDirection distinguishes inbound from outbound firewall rules.
type RuleDirection string

const (
	RuleInbound  RuleDirection = "inbound"
	RuleOutbound RuleDirection = "outbound"
)

// Valid checks if the direction is known.
func (d RuleDirection) Valid() bool {
	return d == RuleInbound || d == RuleOutbound
}

// FirewallGroup is a named set of rules applied to instances. Deleting a
// group deletes its rules in the same transaction.
type FirewallGroup struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Description string         `gorm:"not null" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Rules []FirewallRule `gorm:"foreignKey:GroupID;references:ID" json:"rules,omitempty"`
}

func (g *FirewallGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// FirewallRule is one rule inside a group. ID, GroupID and Direction are
// immutable after creation; Protocol, PortRange, Source and Notes are the
// patchable fields.
type FirewallRule struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"group_id"`
	Position  int            `gorm:"not null" json:"position"`
	Direction RuleDirection  `gorm:"type:varchar(10);not null" json:"direction"`
	Protocol  string         `gorm:"not null" json:"protocol"`
	PortRange string         `json:"port_range"`
	Source    string         `json:"source"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Group *FirewallGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

func (r *FirewallRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
