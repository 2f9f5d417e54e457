package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/event"
	"github.com/verifield/credplane/internal/mocks"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

func TestRequestJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerUser := model.Actor{UserID: uuid.New(), Role: model.RoleProvider}
	provider := &model.Provider{ID: uuid.New(), UserID: providerUser.UserID, Status: model.ProviderPending}
	company := &model.Company{ID: uuid.New(), Name: "Lakeside Clinic", EnrollmentCode: "ABCD2345", AdminID: uuid.New()}

	t.Run("creates a pending link and normalizes the code", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		providerRepo.EXPECT().FindByUserID(gomock.Any(), providerUser.UserID).Return(provider, nil)
		companyRepo.EXPECT().FindByEnrollmentCode(gomock.Any(), "ABCD2345").Return(company, nil)
		linkRepo.EXPECT().FindByProviderAndCompany(gomock.Any(), provider.ID, company.ID).Return(nil, domain.ErrLinkNotFound)
		linkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, link *model.AffiliationLink) error {
				assert.Equal(t, provider.ID, link.ProviderID)
				assert.Equal(t, company.ID, link.CompanyID)
				assert.Equal(t, model.LinkPending, link.Status)
				assert.Equal(t, "Looking forward to joining", link.RequestNote)
				assert.False(t, link.RequestedAt.IsZero())
				return nil
			})

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		link, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{
			EnrollmentCode: "  abcd2345 ",
			RequestNote:    "Looking forward to joining",
		})

		assert.NoError(t, err)
		assert.NotNil(t, link)
		assert.Equal(t, model.LinkPending, link.Status)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		svc := service.NewAffiliationService(nil, nil, nil, event.NoOpEmitter{})
		_, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{EnrollmentCode: "   "})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("rejects a malformed code without touching storage", func(t *testing.T) {
		svc := service.NewAffiliationService(nil, nil, nil, event.NoOpEmitter{})
		_, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{EnrollmentCode: "SHORT"})
		assert.ErrorIs(t, err, domain.ErrCodeFormat)
	})

	t.Run("unknown code surfaces company not found", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		providerRepo.EXPECT().FindByUserID(gomock.Any(), providerUser.UserID).Return(provider, nil)
		companyRepo.EXPECT().FindByEnrollmentCode(gomock.Any(), "ZZZZ9999").Return(nil, domain.ErrCompanyNotFound)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{EnrollmentCode: "ZZZZ9999"})
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})

	t.Run("pending link blocks a second request", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		existing := &model.AffiliationLink{ID: uuid.New(), ProviderID: provider.ID, CompanyID: company.ID, Status: model.LinkPending}
		providerRepo.EXPECT().FindByUserID(gomock.Any(), providerUser.UserID).Return(provider, nil)
		companyRepo.EXPECT().FindByEnrollmentCode(gomock.Any(), "ABCD2345").Return(company, nil)
		linkRepo.EXPECT().FindByProviderAndCompany(gomock.Any(), provider.ID, company.ID).Return(existing, nil)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{EnrollmentCode: "ABCD2345"})
		assert.ErrorIs(t, err, domain.ErrDuplicateLink)
		assert.Contains(t, err.Error(), "already requested")
	})

	t.Run("rejected link still blocks re-joining", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		existing := &model.AffiliationLink{ID: uuid.New(), ProviderID: provider.ID, CompanyID: company.ID, Status: model.LinkRejected}
		providerRepo.EXPECT().FindByUserID(gomock.Any(), providerUser.UserID).Return(provider, nil)
		companyRepo.EXPECT().FindByEnrollmentCode(gomock.Any(), "ABCD2345").Return(company, nil)
		linkRepo.EXPECT().FindByProviderAndCompany(gomock.Any(), provider.ID, company.ID).Return(existing, nil)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.RequestJoin(context.Background(), providerUser, service.JoinRequestInput{EnrollmentCode: "ABCD2345"})
		assert.ErrorIs(t, err, domain.ErrDuplicateLink)
		assert.Contains(t, err.Error(), "rejected")
	})
}

func TestApproveRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), Name: "Lakeside Clinic", AdminID: admin.UserID}
	provider := &model.Provider{ID: uuid.New(), UserID: uuid.New(), Status: model.ProviderPending}
	link := &model.AffiliationLink{ID: uuid.New(), ProviderID: provider.ID, CompanyID: company.ID, Status: model.LinkPending}

	t.Run("approves and writes the audit entry", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		pending := *link
		linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(&pending, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		providerRepo.EXPECT().FindByID(gomock.Any(), provider.ID).Return(provider, nil)
		linkRepo.EXPECT().Approve(gomock.Any(), link.ID, provider.ID, admin.UserID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, _ uuid.UUID, _ any, entry *model.AdminActionLog) error {
				assert.Equal(t, model.ActionApproveRequest, entry.ActionType)
				assert.Equal(t, admin.UserID, entry.AdminID)
				assert.Equal(t, provider.ID, entry.TargetID)
				assert.Equal(t, company.ID, entry.CompanyID)
				return nil
			})

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		approved, err := svc.ApproveRequest(context.Background(), admin, link.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.LinkApproved, approved.Status)
		assert.NotNil(t, approved.ApprovedAt)
		assert.Equal(t, admin.UserID, *approved.ApprovedBy)
	})

	t.Run("forbids providers", func(t *testing.T) {
		svc := service.NewAffiliationService(nil, nil, nil, event.NoOpEmitter{})
		_, err := svc.ApproveRequest(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleProvider}, link.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("forbids an admin of a different company", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		other := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
		pending := *link
		linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(&pending, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.ApproveRequest(context.Background(), other, link.ID)
		assert.ErrorIs(t, err, domain.ErrNotCompanyAdmin)
	})

	t.Run("surfaces a lost race as conflict", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		pending := *link
		linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(&pending, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		providerRepo.EXPECT().FindByID(gomock.Any(), provider.ID).Return(provider, nil)
		linkRepo.EXPECT().Approve(gomock.Any(), link.ID, provider.ID, admin.UserID, gomock.Any(), gomock.Any()).
			Return(domain.ErrConflict)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.ApproveRequest(context.Background(), admin, link.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRejectRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), AdminID: admin.UserID}
	link := &model.AffiliationLink{ID: uuid.New(), ProviderID: uuid.New(), CompanyID: company.ID, Status: model.LinkPending}

	linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
	providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

	pending := *link
	linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(&pending, nil)
	companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
	linkRepo.EXPECT().Reject(gomock.Any(), link.ID, admin.UserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID, _ any, entry *model.AdminActionLog) error {
			assert.Equal(t, model.ActionRejectRequest, entry.ActionType)
			return nil
		})

	svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
	rejected, err := svc.RejectRequest(context.Background(), admin, link.ID)

	assert.NoError(t, err)
	assert.Equal(t, model.LinkRejected, rejected.Status)
	assert.NotNil(t, rejected.RejectedAt)
	assert.Equal(t, admin.UserID, *rejected.RejectedBy)
}

func TestRevertApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), AdminID: admin.UserID}

	t.Run("moves an approved link back to pending", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		approvedBy := admin.UserID
		link := &model.AffiliationLink{ID: uuid.New(), ProviderID: uuid.New(), CompanyID: company.ID, Status: model.LinkApproved, ApprovedBy: &approvedBy}
		linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(link, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		linkRepo.EXPECT().RevertApproval(gomock.Any(), link.ID, gomock.Any()).Return(nil)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		reverted, err := svc.RevertApproval(context.Background(), admin, link.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.LinkPending, reverted.Status)
		assert.Nil(t, reverted.ApprovedAt)
		assert.Nil(t, reverted.ApprovedBy)
	})

	t.Run("reverting a pending link fails", func(t *testing.T) {
		linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

		link := &model.AffiliationLink{ID: uuid.New(), ProviderID: uuid.New(), CompanyID: company.ID, Status: model.LinkPending}
		linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(link, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		linkRepo.EXPECT().RevertApproval(gomock.Any(), link.ID, gomock.Any()).Return(domain.ErrLinkNotApproved)

		svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
		_, err := svc.RevertApproval(context.Background(), admin, link.ID)
		assert.ErrorIs(t, err, domain.ErrLinkNotApproved)
	})
}

func TestRemoveProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), AdminID: admin.UserID}
	link := &model.AffiliationLink{ID: uuid.New(), ProviderID: uuid.New(), CompanyID: company.ID, Status: model.LinkApproved}

	linkRepo := mocks.NewMockAffiliationRepositoryIface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
	providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)

	linkRepo.EXPECT().FindByID(gomock.Any(), link.ID).Return(link, nil)
	companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
	linkRepo.EXPECT().Remove(gomock.Any(), link.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, entry *model.AdminActionLog) error {
			assert.Equal(t, model.ActionRemoveProvider, entry.ActionType)
			assert.Equal(t, link.ProviderID, entry.TargetID)
			return nil
		})

	svc := service.NewAffiliationService(linkRepo, companyRepo, providerRepo, event.NoOpEmitter{})
	err := svc.RemoveProvider(context.Background(), admin, link.ID)
	assert.NoError(t, err)
}
