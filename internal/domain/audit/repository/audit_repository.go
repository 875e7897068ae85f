package repository

import (
	"stars_admin/internal/domain/audit/model"

	"gorm.io/gorm"
)

// AuditRepository persists and queries the moderation audit trail.
type AuditRepository interface {
	Create(record *model.ActionRecord) error
	List(offset, limit int) ([]model.ActionRecord, int64, error)
	ListByEntity(entity, entityID string, offset, limit int) ([]model.ActionRecord, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates the gorm-backed repository.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(record *model.ActionRecord) error {
	return r.db.Create(record).Error
}

func (r *auditRepository) List(offset, limit int) ([]model.ActionRecord, int64, error) {
	var records []model.ActionRecord
	var total int64

	query := r.db.Model(&model.ActionRecord{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *auditRepository) ListByEntity(entity, entityID string, offset, limit int) ([]model.ActionRecord, int64, error) {
	var records []model.ActionRecord
	var total int64

	query := r.db.Model(&model.ActionRecord{}).
		Where("entity = ? AND entity_id = ?", entity, entityID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
