// internal/service/provider.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/repository"
)

type ProviderService struct {
	providerRepo repository.ProviderRepositoryIface
	auditRepo    repository.AdminActionLogRepositoryIface
	validate     *validator.Validate
}

func NewProviderService(providerRepo repository.ProviderRepositoryIface, auditRepo repository.AdminActionLogRepositoryIface) *ProviderService {
	return &ProviderService{
		providerRepo: providerRepo,
		auditRepo:    auditRepo,
		validate:     validator.New(),
	}
}

type OnboardInput struct {
	NPI       string `json:"npi" validate:"required,len=10,numeric"`
	Specialty string `json:"specialty" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=500"`
}

// Onboard creates the acting user's provider profile in pending status.
// One profile per account; a second onboarding attempt fails.
func (s *ProviderService) Onboard(ctx context.Context, actor model.Actor, input OnboardInput) (*model.Provider, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, "npi and specialty are required")
	}

	provider := &model.Provider{
		UserID:    actor.UserID,
		NPI:       input.NPI,
		Specialty: input.Specialty,
		Phone:     input.Phone,
		Address:   input.Address,
		Status:    model.ProviderPending,
	}
	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// GetOwnProfile returns the acting user's provider profile.
func (s *ProviderService) GetOwnProfile(ctx context.Context, actor model.Actor) (*model.Provider, error) {
	return s.providerRepo.FindByUserID(ctx, actor.UserID)
}

// Approve promotes a pending or inactive provider to active.
func (s *ProviderService) Approve(ctx context.Context, actor model.Actor, providerID, companyID uuid.UUID) error {
	return s.review(ctx, actor, providerID, companyID, model.ProviderActive, model.ActionApproveProvider, "Approved provider profile",
		[]model.ProviderStatus{model.ProviderPending, model.ProviderInactive})
}

// Reject moves a pending provider to inactive.
func (s *ProviderService) Reject(ctx context.Context, actor model.Actor, providerID, companyID uuid.UUID) error {
	return s.review(ctx, actor, providerID, companyID, model.ProviderInactive, model.ActionRejectProvider, "Rejected provider profile",
		[]model.ProviderStatus{model.ProviderPending})
}

func (s *ProviderService) review(ctx context.Context, actor model.Actor, providerID, companyID uuid.UUID, to model.ProviderStatus, action, notes string, from []model.ProviderStatus) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.providerRepo.FindByID(ctx, providerID); err != nil {
		return err
	}

	changed, err := s.providerRepo.UpdateStatusIf(ctx, providerID, from, to)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrConflict
	}

	return s.auditRepo.Create(ctx, &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: action,
		TargetID:   providerID,
		CompanyID:  companyID,
		Notes:      notes,
	})
}
