package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Domain is a DNS zone owning an ordered list of records. Deleting a domain
// deletes its records in the same transaction.
type Domain struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Records []DNSRecord `gorm:"foreignKey:DomainID;references:ID" json:"records,omitempty"`
}

func (d *Domain) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DNSRecord is a single record inside a domain. Position is assigned on
// insert and only ever grows, so listing by position yields insertion order.
// ID and DomainID are immutable after creation; Type, Hostname, Value and TTL
// are the patchable fields.
type DNSRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DomainID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"domain_id"`
	Position  int            `gorm:"not null" json:"position"`
	Type      string         `gorm:"not null" json:"type"`
	Hostname  string         `gorm:"not null" json:"hostname"`
	Value     string         `gorm:"not null" json:"value"`
	TTL       int            `gorm:"default:3600" json:"ttl"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Domain *Domain `gorm:"foreignKey:DomainID" json:"domain,omitempty"`
}

func (r *DNSRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
