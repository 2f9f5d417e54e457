// internal/repository/document.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/model"
)

type DocumentRepositoryIface interface {
	Create(ctx context.Context, document *model.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.Document, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Document, error)
	Review(ctx context.Context, id uuid.UUID, to model.DocumentStatus, reviewerID uuid.UUID, at time.Time, notes string, entry *model.AdminActionLog) error
	Revert(ctx context.Context, id uuid.UUID, entry *model.AdminActionLog) error
}

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, document *model.Document) error {
	result := r.db.WithContext(ctx).Create(document)
	if result.Error != nil {
		return storageErr("creating document", result.Error)
	}
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var document model.Document
	result := r.db.WithContext(ctx).First(&document, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, storageErr("finding document", result.Error)
	}
	return &document, nil
}

func (r *DocumentRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.Document, error) {
	var documents []*model.Document
	result := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("uploaded_at DESC").
		Find(&documents)
	if result.Error != nil {
		return nil, storageErr("finding documents by provider", result.Error)
	}
	return documents, nil
}

func (r *DocumentRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Document, error) {
	var documents []*model.Document
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("uploaded_at DESC").
		Find(&documents)
	if result.Error != nil {
		return nil, storageErr("finding documents by company", result.Error)
	}
	return documents, nil
}

// Review moves a pending document to approved or rejected and records the
// reviewer, together with the audit entry. Only pending documents match the
// update, so a second concurrent review fails with ErrConflict.
func (r *DocumentRepository) Review(ctx context.Context, id uuid.UUID, to model.DocumentStatus, reviewerID uuid.UUID, at time.Time, notes string, entry *model.AdminActionLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Document{}).
			Where("id = ? AND status = ?", id, model.DocumentPending).
			Updates(map[string]interface{}{
				"status":      to,
				"reviewed_at": at,
				"reviewed_by": reviewerID,
				"notes":       notes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConflict
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return storageErr("reviewing document", err)
	}
	return nil
}

// Revert resets a reviewed document to pending, clearing the reviewer stamps
// and the review notes. Notes are cleared deliberately: a stale rejection
// note on a document back under review would mislead the next reviewer.
func (r *DocumentRepository) Revert(ctx context.Context, id uuid.UUID, entry *model.AdminActionLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Document{}).
			Where("id = ? AND status IN ?", id, []model.DocumentStatus{model.DocumentApproved, model.DocumentRejected}).
			Updates(map[string]interface{}{
				"status":      model.DocumentPending,
				"reviewed_at": nil,
				"reviewed_by": nil,
				"notes":       "",
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDocumentNotReviewed
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotReviewed) {
			return err
		}
		return storageErr("reverting document", err)
	}
	return nil
}
