// internal/service/document.go
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

// DocumentService owns the document review state machine:
// pending -> approved | rejected, with an admin-only revert back to pending.
// Documents never expire on their own.
type DocumentService struct {
	documentRepo repository.DocumentRepositoryIface
	providerRepo repository.ProviderRepositoryIface
	linkRepo     repository.AffiliationRepositoryIface
	emitter      event.Emitter
	validate     *validator.Validate
}

func NewDocumentService(
	documentRepo repository.DocumentRepositoryIface,
	providerRepo repository.ProviderRepositoryIface,
	linkRepo repository.AffiliationRepositoryIface,
	emitter event.Emitter,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		providerRepo: providerRepo,
		linkRepo:     linkRepo,
		emitter:      emitter,
		validate:     validator.New(),
	}
}

type UploadDocumentInput struct {
	DocumentType string    `json:"document_type" validate:"required"`
	FileName     string    `json:"file_name" validate:"required"`
	FilePath     string    `json:"file_path" validate:"required"`
	FileSize     int64     `json:"file_size" validate:"required,gt=0"`
	MimeType     string    `json:"mime_type" validate:"required"`
	CompanyID    uuid.UUID `json:"company_id"`
}

// Upload registers an already-stored file as a pending document for the
// acting provider. The content itself lives in the blob store; only the path
// is recorded here. Company scoping comes from the provider's approved
// affiliations: with exactly one, it is auto-selected, otherwise the caller
// must name one.
func (s *DocumentService) Upload(ctx context.Context, actor model.Actor, input UploadDocumentInput) (*model.Document, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: document metadata is incomplete", domain.ErrMissingFields)
	}

	provider, err := s.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	companyID, err := s.resolveCompany(ctx, provider.ID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	document := &model.Document{
		ProviderID:   provider.ID,
		CompanyID:    companyID,
		DocumentType: input.DocumentType,
		FileName:     input.FileName,
		FilePath:     input.FilePath,
		FileSize:     input.FileSize,
		MimeType:     input.MimeType,
		Status:       model.DocumentPending,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// Approve marks a pending document approved and stamps the reviewer.
func (s *DocumentService) Approve(ctx context.Context, actor model.Actor, documentID uuid.UUID) error {
	return s.reviewDocument(ctx, actor, documentID, model.DocumentApproved, "")
}

// Reject marks a pending document rejected, storing the reviewer's notes.
func (s *DocumentService) Reject(ctx context.Context, actor model.Actor, documentID uuid.UUID, notes string) error {
	return s.reviewDocument(ctx, actor, documentID, model.DocumentRejected, notes)
}

func (s *DocumentService) reviewDocument(ctx context.Context, actor model.Actor, documentID uuid.UUID, to model.DocumentStatus, notes string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	document, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}

	action := model.ActionApproveDocument
	logNote := "Approved document"
	if to == model.DocumentRejected {
		action = model.ActionRejectDocument
		logNote = "Rejected document"
		if notes != "" {
			logNote = fmt.Sprintf("Rejected document: %s", notes)
		}
	}

	now := time.Now().UTC()
	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: action,
		TargetID:   document.ID,
		CompanyID:  document.CompanyID,
		Notes:      logNote,
	}
	if err := s.documentRepo.Review(ctx, document.ID, to, actor.UserID, now, notes, entry); err != nil {
		return err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.DocumentReviewed, EntityID: document.ID, At: now})
	return nil
}

// Revert resets an approved or rejected document back to pending, clearing
// the reviewer stamps and notes.
func (s *DocumentService) Revert(ctx context.Context, actor model.Actor, documentID uuid.UUID) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	document, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}

	entry := &model.AdminActionLog{
		AdminID:    actor.UserID,
		ActionType: model.ActionRevertDocument,
		TargetID:   document.ID,
		CompanyID:  document.CompanyID,
		Notes:      "Reverted document review",
	}
	if err := s.documentRepo.Revert(ctx, document.ID, entry); err != nil {
		return err
	}

	s.emitter.Emit(ctx, event.Event{Type: event.DocumentReverted, EntityID: document.ID, At: time.Now().UTC()})
	return nil
}

// ListOwn returns the acting provider's documents.
func (s *DocumentService) ListOwn(ctx context.Context, actor model.Actor) ([]*model.Document, error) {
	provider, err := s.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.FindByProvider(ctx, provider.ID)
}

// resolveCompany picks the company a new credential is scoped to, from the
// provider's approved affiliations.
func (s *DocumentService) resolveCompany(ctx context.Context, providerID, chosen uuid.UUID) (uuid.UUID, error) {
	return resolveCompanyScope(ctx, s.linkRepo, providerID, chosen)
}

// resolveCompanyScope is shared between document upload and license
// creation. Exactly one approved affiliation auto-selects; several require
// an explicit choice; none is an error.
func resolveCompanyScope(ctx context.Context, linkRepo repository.AffiliationRepositoryIface, providerID, chosen uuid.UUID) (uuid.UUID, error) {
	links, err := linkRepo.FindByProvider(ctx, providerID)
	if err != nil {
		return uuid.Nil, err
	}

	var approved []uuid.UUID
	for _, link := range links {
		if link.Status == model.LinkApproved {
			approved = append(approved, link.CompanyID)
		}
	}

	if chosen != uuid.Nil {
		for _, companyID := range approved {
			if companyID == chosen {
				return chosen, nil
			}
		}
		return uuid.Nil, domain.ErrNoApprovedCompany
	}

	switch len(approved) {
	case 0:
		return uuid.Nil, domain.ErrNoApprovedCompany
	case 1:
		return approved[0], nil
	default:
		return uuid.Nil, domain.ErrAmbiguousCompany
	}
}
