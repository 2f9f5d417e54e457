// internal/repository/license.go
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

type LicenseRepositoryIface interface {
	Create(ctx context.Context, license *model.License) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.License, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.License, error)
	FindAll(ctx context.Context) ([]*model.License, error)
	SetVerification(ctx context.Context, id uuid.UUID, to model.VerificationStatus, verifierID uuid.UUID, at time.Time, entry *model.AdminActionLog) error
	RevertVerification(ctx context.Context, id uuid.UUID, entry *model.AdminActionLog) error
	MarkExpired(ctx context.Context, id uuid.UUID) (bool, error)
}

type LicenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) Create(ctx context.Context, license *model.License) error {
	result := r.db.WithContext(ctx).Create(license)
	if result.Error != nil {
		return storageErr("creating license", result.Error)
	}
	return nil
}

func (r *LicenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.License, error) {
	var license model.License
	result := r.db.WithContext(ctx).First(&license, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLicenseNotFound
		}
		return nil, storageErr("finding license", result.Error)
	}
	return &license, nil
}

func (r *LicenseRepository) FindByProvider(ctx context.Context, providerID uuid.UUID) ([]*model.License, error) {
	var licenses []*model.License
	result := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("expiration_date ASC").
		Find(&licenses)
	if result.Error != nil {
		return nil, storageErr("finding licenses by provider", result.Error)
	}
	return licenses, nil
}

// FindAll loads every license with its provider and account, for the
// alerting engine and the sweep. The provider's email and name ride along in
// the notification payload.
func (r *LicenseRepository) FindAll(ctx context.Context) ([]*model.License, error) {
	var licenses []*model.License
	result := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Provider.User").
		Find(&licenses)
	if result.Error != nil {
		return nil, storageErr("finding all licenses", result.Error)
	}
	return licenses, nil
}

// SetVerification records a board-check outcome on a pending license.
// last_verified_at is stamped whether the check verified or failed; the
// verified_at/verified_by pair is set only on a verified outcome.
func (r *LicenseRepository) SetVerification(ctx context.Context, id uuid.UUID, to model.VerificationStatus, verifierID uuid.UUID, at time.Time, entry *model.AdminActionLog) error {
	updates := map[string]interface{}{
		"verification_status": to,
		"last_verified_at":    at,
	}
	if to == model.VerificationVerified {
		updates["verified_at"] = at
		updates["verified_by"] = verifierID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.License{}).
			Where("id = ? AND verification_status = ?", id, model.VerificationPending).
			Updates(updates)
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
		return storageErr("recording license verification", err)
	}
	return nil
}

// RevertVerification resets a verified or failed license back to pending and
// clears the verification stamps.
func (r *LicenseRepository) RevertVerification(ctx context.Context, id uuid.UUID, entry *model.AdminActionLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.License{}).
			Where("id = ? AND verification_status IN ?", id, []model.VerificationStatus{model.VerificationVerified, model.VerificationFailed}).
			Updates(map[string]interface{}{
				"verification_status": model.VerificationPending,
				"verified_at":         nil,
				"verified_by":         nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrLicenseNotReverted
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrLicenseNotReverted) {
			return err
		}
		return storageErr("reverting license verification", err)
	}
	return nil
}

// MarkExpired flips an active license to expired. The predicate keeps the
// sweep idempotent: a license already expired, suspended, or revoked matches
// nothing and the call reports false.
func (r *LicenseRepository) MarkExpired(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.License{}).
		Where("id = ? AND status = ?", id, model.LicenseActive).
		Update("status", model.LicenseExpired)
	if result.Error != nil {
		return false, storageErr("expiring license", result.Error)
	}
	return result.RowsAffected > 0, nil
}
