package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
)

type DomainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

func (r *DomainRepository) Create(ctx context.Context, domain *models.Domain) error {
	return r.db.WithContext(ctx).Create(domain).Error
}

func (r *DomainRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Domain, error) {
	var domain models.Domain
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&domain).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

func (r *DomainRepository) GetByName(ctx context.Context, name string) (*models.Domain, error) {
	var domain models.Domain
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&domain).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

func (r *DomainRepository) List(ctx context.Context) ([]models.Domain, error) {
	var domains []models.Domain
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&domains).Error
	return domains, err
}

// GetWithRecords loads a domain together with its records in insertion order.
func (r *DomainRepository) GetWithRecords(ctx context.Context, id uuid.UUID) (*models.Domain, error) {
	var domain models.Domain
	err := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&domain).Error
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

// DeleteCascade removes the domain and all of its records atomically.
func (r *DomainRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return deleteWithChildren[models.Domain, models.DNSRecord](ctx, r.db, id, "domain_id")
}

// AddRecord appends a record to a domain. The parent must exist at insert
// time; the position is assigned inside the same transaction.
func (r *DomainRepository) AddRecord(ctx context.Context, domainID uuid.UUID, record *models.DNSRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := parentExists[models.Domain](tx, domainID); err != nil {
			return err
		}
		pos, err := nextPosition[models.DNSRecord](tx, "domain_id", domainID)
		if err != nil {
			return err
		}
		record.DomainID = domainID
		record.Position = pos
		return tx.Create(record).Error
	})
}

// DNSRecordPatch holds the fields a record update may change. ID, DomainID
// and Position are not patchable.
type DNSRecordPatch struct {
	Type     *string `json:"type"`
	Hostname *string `json:"hostname"`
	Value    *string `json:"value"`
	TTL      *int    `json:"ttl"`
}

// UpdateRecord applies a patch to a record by id.
func (r *DomainRepository) UpdateRecord(ctx context.Context, recordID uuid.UUID, patch DNSRecordPatch) (*models.DNSRecord, error) {
	updates := make(map[string]interface{})
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Hostname != nil {
		updates["hostname"] = *patch.Hostname
	}
	if patch.Value != nil {
		updates["value"] = *patch.Value
	}
	if patch.TTL != nil {
		updates["ttl"] = *patch.TTL
	}

	var record models.DNSRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", recordID).First(&record).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recordID).First(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *DomainRepository) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", recordID).Delete(&models.DNSRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRecords returns a domain's records in insertion order.
func (r *DomainRepository) ListRecords(ctx context.Context, domainID uuid.UUID) ([]models.DNSRecord, error) {
	var records []models.DNSRecord
	err := r.db.WithContext(ctx).
		Where("domain_id = ?", domainID).
		Order("position").
		Find(&records).Error
	return records, err
}
