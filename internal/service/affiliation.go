// internal/service/affiliation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/repository"
)

// AffiliationService owns the provider-company affiliation workflow: join
// requests keyed by enrollment code and the admin approval lifecycle.
type AffiliationService struct {
	linkRepo     repository.AffiliationRepositoryIface
	companyRepo  repository.CompanyRepositoryIface
	providerRepo repository.ProviderRepositoryIface
	emitter      event.Emitter
}

func NewAffiliationService(
	linkRepo repository.AffiliationRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	providerRepo repository.ProviderRepositoryIface,
	emitter event.Emitter,
) *AffiliationService {
	return &AffiliationService{
		linkRepo:     linkRepo,
		companyRepo:  companyRepo,
		providerRepo: providerRepo,
		emitter:      emitter,
	}
}

type JoinRequestInput struct {
	EnrollmentCode string `json:"enrollment_code"`
	RequestNote    string `json:"request_note"`
}

// RequestJoin creates a pending affiliation link between the acting
// provider and the company identified by the enrollment code. The code is
// the sole authorization token for the company lookup, so that lookup is
// unscoped; everything else is checked against the actor.
//
// Any existing link for the pair, including a rejected one, blocks a new
// request. A provider rejected by a company gets back in only after the
// admin removes the old link.
func (s *AffiliationService) RequestJoin(ctx context.Context, actor model.Actor, input JoinRequestInput) (*model.AffiliationLink, error) {
	code := strings.ToUpper(strings.TrimSpace(input.EnrollmentCode))
	if code == "" || actor.UserID == uuid.Nil {
		return nil, domain.ErrMissingFields
	}
	if len(code) != model.EnrollmentCodeLength {
		return nil, domain.ErrCodeFormat
	}

	provider, err := s.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByEnrollmentCode(ctx, code)
	if err != nil {
		return nil, err
	}

	existing, err := s.linkRepo.FindByProviderAndCompany(ctx, provider.ID, company.ID)
	if err != nil && !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateLink, duplicateLinkMessage(existing.Status))
	}

	link := &model.AffiliationLink{
		ProviderID:  provider.ID,
		CompanyID:   company.ID,
		Status:      model.LinkPending,
		RequestNote: input.RequestNote,
		RequestedAt: time.Now().UTC(),
	}

	// The duplicate check above is a fast path; the unique constraint on
	// (provider_id, company_id) decides concurrent requests.
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.AffiliationRequested, EntityID: link.ID, At: link.RequestedAt})
	return link, nil
}

func duplicateLinkMessage(status model.LinkStatus) string {
	switch status {
	case model.LinkPending:
		return "you have already requested access to this company"
	case model.LinkApproved:
		return "you are already linked to this company"
	default:
		return "your previous request was rejected; contact the company admin"
	}
}

// ApproveRequest approves a pending join request. The link transition, the
// provider's promotion to active, and the audit entry land in one
// transaction; concurrent readers never see one without the others.
func (s *AffiliationService) ApproveRequest(ctx context.Context, actor model.Actor, linkID uuid.UUID) (*model.AffiliationLink, error) {
	link, company, err := s.authorizeLinkAction(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	provider, err := s.providerRepo.FindByID(ctx, link.ProviderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionApproveRequest,
		TargetID:   provider.ID,
		CompanyID:  company.ID,
		Notes:      "Approved provider access request",
	}
	if err := s.linkRepo.Approve(ctx, link.ID, provider.ID, actor.UserID, now, entry); err != nil {
		return nil, err
	}

	link.Status = model.LinkApproved
	link.ApprovedAt = &now
	link.ApprovedBy = &actor.UserID

	s.emitter.Emit(ctx, event.Event{Type: event.AffiliationApproved, EntityID: link.ID, At: now})
	return link, nil
}

// RejectRequest rejects a pending join request. The provider's status is
// untouched.
func (s *AffiliationService) RejectRequest(ctx context.Context, actor model.Actor, linkID uuid.UUID) (*model.AffiliationLink, error) {
	link, company, err := s.authorizeLinkAction(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionRejectRequest,
		TargetID:   link.ProviderID,
		CompanyID:  company.ID,
		Notes:      "Rejected provider access request",
	}
	if err := s.linkRepo.Reject(ctx, link.ID, actor.UserID, now, entry); err != nil {
		return nil, err
	}

	link.Status = model.LinkRejected
	link.RejectedAt = &now
	link.RejectedBy = &actor.UserID

	s.emitter.Emit(ctx, event.Event{Type: event.AffiliationRejected, EntityID: link.ID, At: now})
	return link, nil
}

// RevertApproval moves an approved link back to pending and clears the
// approval stamps.
func (s *AffiliationService) RevertApproval(ctx context.Context, actor model.Actor, linkID uuid.UUID) (*model.AffiliationLink, error) {
	link, company, err := s.authorizeLinkAction(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionRevertApproval,
		TargetID:   link.ProviderID,
		CompanyID:  company.ID,
		Notes:      "Reverted provider approval",
	}
	if err := s.linkRepo.RevertApproval(ctx, link.ID, entry); err != nil {
		return nil, err
	}

	link.Status = model.LinkPending
	link.ApprovedAt = nil
	link.ApprovedBy = nil

	s.emitter.Emit(ctx, event.Event{Type: event.AffiliationReverted, EntityID: link.ID, At: time.Now().UTC()})
	return link, nil
}

// RemoveProvider deletes an approved link. The provider must submit a fresh
// join request to regain access.
func (s *AffiliationService) RemoveProvider(ctx context.Context, actor model.Actor, linkID uuid.UUID) error {
	link, company, err := s.authorizeLinkAction(ctx, actor, linkID)
	if err != nil {
		return err
	}

	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionRemoveProvider,
		TargetID:   link.ProviderID,
		CompanyID:  company.ID,
		Notes:      "Removed provider from company",
	}
	if err := s.linkRepo.Remove(ctx, link.ID, entry); err != nil {
		return err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.ProviderRemoved, EntityID: link.ID, At: time.Now().UTC()})
	return nil
}

// ListRequests returns a company's affiliation links in the given status,
// for the owning admin only.
func (s *AffiliationService) ListRequests(ctx context.Context, actor model.Actor, companyID uuid.UUID, status model.LinkStatus) ([]*model.AffiliationLink, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.AdminID != actor.UserID {
		return nil, domain.ErrNotCompanyAdmin
	}
	return s.linkRepo.FindByCompany(ctx, companyID, status)
}

// authorizeLinkAction loads the link and re-verifies that the actor is the
// admin of the company the link points at. The company is always loaded from
// the link; a client-supplied company id is never trusted for authorization.
func (s *AffiliationService) authorizeLinkAction(ctx context.Context, actor model.Actor, linkID uuid.UUID) (*model.AffiliationLink, *model.Company, error) {
	if !actor.IsAdmin() {
		return nil, nil, domain.ErrForbidden
	}

	link, err := s.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		return nil, nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, link.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company.AdminID != actor.UserID {
		return nil, nil, domain.ErrNotCompanyAdmin
	}

	return link, company, nil
}
