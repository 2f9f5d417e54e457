// internal/repository/admin_action_log.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verifield/credplane/internal/model"
)

// AdminActionLogRepositoryIface is insert-and-read only. The audit trail is
// append-only; no update or delete exists on purpose.
type AdminActionLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AdminActionLog) error
	FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*model.AdminActionLog, int64, error)
}

type AdminActionLogRepository struct {
	db *gorm.DB
}

func NewAdminActionLogRepository(db *gorm.DB) *AdminActionLogRepository {
	return &AdminActionLogRepository{db: db}
}

func (r *AdminActionLogRepository) Create(ctx context.Context, entry *model.AdminActionLog) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return storageErr("creating admin action log", result.Error)
	}
	return nil
}

func (r *AdminActionLogRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*model.AdminActionLog, int64, error) {
	var entries []*model.AdminActionLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AdminActionLog{}).Where("company_id = ?", companyID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, storageErr("counting admin action logs", err)
	}

	result := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries)
	if result.Error != nil {
		return nil, 0, storageErr("finding admin action logs", result.Error)
	}
	return entries, count, nil
}
