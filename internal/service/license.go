// internal/service/license.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/repository"
)

// LicenseService owns the license verification state machine:
// pending -> verified | failed via a board check, with an admin-only revert
// back to pending. The expiry of the license itself is the alerting sweep's
// business, not this service's.
type LicenseService struct {
	licenseRepo  repository.LicenseRepositoryIface
	providerRepo repository.ProviderRepositoryIface
	linkRepo     repository.AffiliationRepositoryIface
	verifier     BoardVerifier
	emitter      event.Emitter
	validate     *validator.Validate
}

func NewLicenseService(
	licenseRepo repository.LicenseRepositoryIface,
	providerRepo repository.ProviderRepositoryIface,
	linkRepo repository.AffiliationRepositoryIface,
	verifier BoardVerifier,
	emitter event.Emitter,
) *LicenseService {
	return &LicenseService{
		licenseRepo:  licenseRepo,
		providerRepo: providerRepo,
		linkRepo:     linkRepo,
		verifier:     verifier,
		emitter:      emitter,
		validate:     validator.New(),
	}
}

type AddLicenseInput struct {
	LicenseNumber  string    `json:"license_number" validate:"required"`
	LicenseType    string    `json:"license_type" validate:"required"`
	IssuingState   string    `json:"issuing_state" validate:"required,len=2,alpha"`
	IssueDate      time.Time `json:"issue_date" validate:"required"`
	ExpirationDate time.Time `json:"expiration_date" validate:"required,gtfield=IssueDate"`
	CompanyID      uuid.UUID `json:"company_id"`
}

// AddLicense records a license for the acting provider, active and awaiting
// verification.
func (s *LicenseService) AddLicense(ctx context.Context, actor model.Actor, input AddLicenseInput) (*model.License, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: license details are incomplete", domain.ErrMissingFields)
	}

	provider, err := s.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	companyID, err := resolveCompanyScope(ctx, s.linkRepo, provider.ID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	license := &model.License{
		ProviderID:         provider.ID,
		CompanyID:          companyID,
		LicenseNumber:      input.LicenseNumber,
		LicenseType:        input.LicenseType,
		IssuingState:       input.IssuingState,
		IssueDate:          input.IssueDate,
		ExpirationDate:     input.ExpirationDate,
		Status:             model.LicenseActive,
		VerificationStatus: model.VerificationPending,
	}
	if err := s.licenseRepo.Create(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

// Verify runs the board check on a pending license and records the outcome.
// A clean check stamps last_verified_at whether it verified or failed. A
// verifier failure records nothing; the license stays pending rather than
// being silently marked failed.
func (s *LicenseService) Verify(ctx context.Context, actor model.Actor, licenseID uuid.UUID) (VerificationResult, error) {
	if !actor.IsAdmin() {
		return VerificationResult{}, domain.ErrForbidden
	}

	license, err := s.licenseRepo.FindByID(ctx, licenseID)
	if err != nil {
		return VerificationResult{}, err
	}

	result, err := s.verifier.Verify(ctx, license)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("%w: %s", domain.ErrVerifierUnavailable, "board check did not complete")
	}

	to := model.VerificationFailed
	if result.Verified {
		to = model.VerificationVerified
	}

	now := time.Now().UTC()
	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionVerifyLicense,
		TargetID:   license.ID,
		CompanyID:  license.CompanyID,
		Notes:      result.Message,
	}
	if err := s.licenseRepo.SetVerification(ctx, license.ID, to, actor.UserID, now, entry); err != nil {
		return VerificationResult{}, err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.LicenseVerified, EntityID: license.ID, At: now})
	return result, nil
}

// Revert resets a verified or failed license back to pending verification.
func (s *LicenseService) Revert(ctx context.Context, actor model.Actor, licenseID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	license, err := s.licenseRepo.FindByID(ctx, licenseID)
	if err != nil {
		return err
	}

	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionRevertLicense,
		TargetID:   license.ID,
		CompanyID:  license.CompanyID,
		Notes:      "Reverted license verification",
	}
	if err := s.licenseRepo.RevertVerification(ctx, license.ID, entry); err != nil {
		return err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.LicenseReverted, EntityID: license.ID, At: time.Now().UTC()})
	return nil
}

// ListOwn returns the acting provider's licenses, soonest expiration first.
func (s *LicenseService) ListOwn(ctx context.Context, actor model.Actor) ([]*model.License, error) {
	provider, err := s.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.licenseRepo.FindByProvider(ctx, provider.ID)
}
