// internal/repository/provider.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/model"
)

type ProviderRepositoryIface interface {
	Create(ctx context.Context, provider *model.Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Provider, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from []model.ProviderStatus, to model.ProviderStatus) (bool, error)
}

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, provider *model.Provider) error {
	result := r.db.WithContext(ctx).Create(provider)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrProviderExists
		}
		return storageErr("creating provider", result.Error)
	}
	return nil
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	result := r.db.WithContext(ctx).First(&provider, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, storageErr("finding provider", result.Error)
	}
	return &provider, nil
}

func (r *ProviderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&provider)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, storageErr("finding provider by user", result.Error)
	}
	return &provider, nil
}

// FindByCompany returns providers linked to the company through an approved
// affiliation. Approved membership is the only path by which a company sees a
// provider at all.
func (r *ProviderRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Provider, error) {
	var providers []*model.Provider
	result := r.db.WithContext(ctx).
		Joins("JOIN provider_company_links ON providers.id = provider_company_links.provider_id").
		Where("provider_company_links.company_id = ? AND provider_company_links.status = ?", companyID, model.LinkApproved).
		Find(&providers)
	if result.Error != nil {
		return nil, storageErr("finding providers by company", result.Error)
	}
	return providers, nil
}

// UpdateStatusIf transitions the provider's status only when the current
// status is one of from. Returns false when the row was in some other state,
// so concurrent transitions surface instead of overwriting each other.
func (r *ProviderRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from []model.ProviderStatus, to model.ProviderStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Provider{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, storageErr("updating provider status", result.Error)
	}
	return result.RowsAffected > 0, nil
}
