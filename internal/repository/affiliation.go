// internal/repository/affiliation.go
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

type AffiliationRepositoryIface interface {
	Create(ctx context.Context, link *model.AffiliationLink) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AffiliationLink, error)
	FindByProviderAndCompany(ctx context.Context, providerID, companyID uuid.UUID) (*model.AffiliationLink, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.AffiliationLink, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID, status model.LinkStatus) ([]*model.AffiliationLink, error)
	Approve(ctx context.Context, linkID, providerID, adminID uuid.UUID, at time.Time, entry *model.AdminActionLog) error
	Reject(ctx context.Context, linkID, adminID uuid.UUID, at time.Time, entry *model.AdminActionLog) error
	RevertApproval(ctx context.Context, linkID uuid.UUID, entry *model.AdminActionLog) error
	Remove(ctx context.Context, linkID uuid.UUID, entry *model.AdminActionLog) error
}

type AffiliationRepository struct {
	db *gorm.DB
}

func NewAffiliationRepository(db *gorm.DB) *AffiliationRepository {
	return &AffiliationRepository{db: db}
}

func (r *AffiliationRepository) Create(ctx context.Context, link *model.AffiliationLink) error {
	result := r.db.WithContext(ctx).Create(link)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDuplicateLink
		}
		return storageErr("creating affiliation link", result.Error)
	}
	return nil
}

func (r *AffiliationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AffiliationLink, error) {
	var link model.AffiliationLink
	result := r.db.WithContext(ctx).First(&link, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, storageErr("finding affiliation link", result.Error)
	}
	return &link, nil
}

func (r *AffiliationRepository) FindByProviderAndCompany(ctx context.Context, providerID, companyID uuid.UUID) (*model.AffiliationLink, error) {
	var link model.AffiliationLink
	result := r.db.WithContext(ctx).
		Where("provider_id = ? AND company_id = ?", providerID, companyID).
		First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, storageErr("finding affiliation link by pair", result.Error)
	}
	return &link, nil
}

func (r *AffiliationRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.AffiliationLink, error) {
	var links []*model.AffiliationLink
	result := r.db.WithContext(ctx).Where("provider_id = ?", providerID).Find(&links)
	if result.Error != nil {
		return nil, storageErr("finding affiliation links by provider", result.Error)
	}
	return links, nil
}

func (r *AffiliationRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, status model.LinkStatus) ([]*model.AffiliationLink, error) {
	var links []*model.AffiliationLink
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	result := query.Order("requested_at DESC").Find(&links)
	if result.Error != nil {
		return nil, storageErr("finding affiliation links by company", result.Error)
	}
	return links, nil
}

// Approve moves the link from pending to approved, promotes the provider to
// active, and writes the audit entry, all in one transaction. The status
// predicate on the update makes concurrent approvals lose cleanly: the second
// one matches zero rows and gets ErrConflict, with nothing applied.
func (r *AffiliationRepository) Approve(ctx context.Context, linkID, providerID, adminID uuid.UUID, at time.Time, entry *model.AdminActionLog) error {
	return r.inTx(ctx, "approving affiliation link", func(tx *gorm.DB) error {
		result := tx.Model(&model.AffiliationLink{}).
			Where("id = ? AND status = ?", linkID, model.LinkPending).
			Updates(map[string]interface{}{
				"status":      model.LinkApproved,
				"approved_at": at,
				"approved_by": adminID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConflict
		}

		// Suspended providers stay suspended; approval only lifts the
		// pending/inactive states.
		if err := tx.Model(&model.Provider{}).
			Where("id = ? AND status IN ?", providerID, []model.ProviderStatus{model.ProviderPending, model.ProviderInactive}).
			Update("status", model.ProviderActive).Error; err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
}

func (r *AffiliationRepository) Reject(ctx context.Context, linkID, adminID uuid.UUID, at time.Time, entry *model.AdminActionLog) error {
	return r.inTx(ctx, "rejecting affiliation link", func(tx *gorm.DB) error {
		result := tx.Model(&model.AffiliationLink{}).
			Where("id = ? AND status = ?", linkID, model.LinkPending).
			Updates(map[string]interface{}{
				"status":      model.LinkRejected,
				"rejected_at": at,
				"rejected_by": adminID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConflict
		}
		return tx.Create(entry).Error
	})
}

// RevertApproval resets an approved link back to pending and clears the
// approval stamps. The provider's status is left alone; reverting access is
// not the same as deactivating the provider everywhere.
func (r *AffiliationRepository) RevertApproval(ctx context.Context, linkID uuid.UUID, entry *model.AdminActionLog) error {
	return r.inTx(ctx, "reverting affiliation approval", func(tx *gorm.DB) error {
		result := tx.Model(&model.AffiliationLink{}).
			Where("id = ? AND status = ?", linkID, model.LinkApproved).
			Updates(map[string]interface{}{
				"status":      model.LinkPending,
				"approved_at": nil,
				"approved_by": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrLinkNotApproved
		}
		return tx.Create(entry).Error
	})
}

// Remove deletes an approved link outright. The provider has to submit a
// fresh join request to regain access.
func (r *AffiliationRepository) Remove(ctx context.Context, linkID uuid.UUID, entry *model.AdminActionLog) error {
	return r.inTx(ctx, "removing affiliation link", func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND status = ?", linkID, model.LinkApproved).
			Delete(&model.AffiliationLink{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrLinkNotApproved
		}
		return tx.Create(entry).Error
	})
}

func (r *AffiliationRepository) inTx(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(fn)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrLinkNotApproved) {
			return err
		}
		return storageErr(op, err)
	}
	return nil
}
