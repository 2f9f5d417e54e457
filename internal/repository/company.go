// internal/repository/company.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/model"
)

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByEnrollmentCode(ctx context.Context, code string) (*model.Company, error)
	FindByAdmin(ctx context.Context, adminID uuid.UUID) ([]*model.Company, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			// Lost the enrollment-code race; the caller regenerates and retries.
			return domain.ErrConflict
		}
		return storageErr("creating company", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, storageErr("finding company", result.Error)
	}
	return &company, nil
}

// FindByEnrollmentCode looks a company up by its normalized code. The code is
// the caller's only authorization token for this lookup, so the query is not
// scoped to the requesting actor.
func (r *CompanyRepository) FindByEnrollmentCode(ctx context.Context, code string) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).Where("enrollment_code = ?", code).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, storageErr("finding company by code", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByAdmin(ctx context.Context, adminID uuid.UUID) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&companies)
	if result.Error != nil {
		return nil, storageErr("finding companies by admin", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Company{}).Where("enrollment_code = ?", code).Count(&count)
	if result.Error != nil {
		return false, storageErr("checking enrollment code", result.Error)
	}
	return count > 0, nil
}
