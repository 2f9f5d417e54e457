// internal/service/company.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/repository"
)

// codeAlphabet leaves out 0/O and 1/I so a code read over the phone survives
// the trip.
const (
	codeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeMaxAttempts = 10
)

type CompanyService struct {
	companyRepo repository.CompanyRepositoryIface
	userRepo    repository.UserRepositoryIface
	auditRepo   repository.AdminActionLogRepositoryIface
	validate    *validator.Validate
}

func NewCompanyService(companyRepo repository.CompanyRepositoryIface, userRepo repository.UserRepositoryIface, auditRepo repository.AdminActionLogRepositoryIface) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		validate:    validator.New(),
	}
}

type CreateCompanyInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateCompany creates a company owned by the acting admin, with a freshly
// generated enrollment code. Codes are generated once and never reused; a
// collision with an existing company regenerates and retries.
func (s *CompanyService) CreateCompany(ctx context.Context, actor model.Actor, input CreateCompanyInput) (*model.Company, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingFields, "company name is required")
	}

	for attempt := 0; attempt < codeMaxAttempts; attempt++ {
		code, err := generateEnrollmentCode()
		if err != nil {
			return nil, fmt.Errorf("generating enrollment code: %w", err)
		}

		exists, err := s.companyRepo.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		company := &model.Company{
			Name:           input.Name,
			EnrollmentCode: code,
			AdminID:        actor.UserID,
		}
		err = s.companyRepo.Create(ctx, company)
		if errors.Is(err, domain.ErrConflict) {
			// Another creation grabbed the same code between the check and
			// the insert. Regenerate.
			continue
		}
		if err != nil {
			return nil, err
		}
		return company, nil
	}

	return nil, domain.ErrCodeExhausted
}

// GetCompany returns a company by id, restricted to its owning admin.
func (s *CompanyService) GetCompany(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() || company.AdminID != actor.UserID {
		return nil, domain.ErrNotCompanyAdmin
	}
	return company, nil
}

const (
	defaultActionPageSize = 50
	maxActionPageSize     = 200
)

// ListActions returns a page of the company's admin action trail, newest
// first, restricted to its owning admin. The trail is append-only; this is
// the only read path.
func (s *CompanyService) ListActions(ctx context.Context, actor model.Actor, companyID uuid.UUID, limit, offset int) ([]*model.AdminActionLog, int64, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsAdmin() || company.AdminID != actor.UserID {
		return nil, 0, domain.ErrNotCompanyAdmin
	}

	if limit <= 0 || limit > maxActionPageSize {
		limit = defaultActionPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.auditRepo.FindByCompany(ctx, companyID, limit, offset)
}

// ListOwnCompanies returns the companies the acting admin owns.
func (s *CompanyService) ListOwnCompanies(ctx context.Context, actor model.Actor) ([]*model.Company, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.companyRepo.FindByAdmin(ctx, actor.UserID)
}

func generateEnrollmentCode() (string, error) {
	code := make([]byte, model.EnrollmentCodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
