package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/mocks"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

func TestOnboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := model.Actor{UserID: uuid.New(), Role: model.RoleProvider}

	t.Run("creates a pending profile", func(t *testing.T) {
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)
		providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, provider *model.Provider) error {
				assert.Equal(t, actor.UserID, provider.UserID)
				assert.Equal(t, model.ProviderPending, provider.Status)
				return nil
			})

		svc := service.NewProviderService(providerRepo, nil)
		provider, err := svc.Onboard(context.Background(), actor, service.OnboardInput{
			NPI:       "1234567890",
			Specialty: "Cardiology",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ProviderPending, provider.Status)
	})

	t.Run("npi must be ten digits", func(t *testing.T) {
		svc := service.NewProviderService(nil, nil)
		_, err := svc.Onboard(context.Background(), actor, service.OnboardInput{
			NPI:       "12345",
			Specialty: "Cardiology",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("a second profile for the same user is refused", func(t *testing.T) {
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)
		providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrProviderExists)

		svc := service.NewProviderService(providerRepo, nil)
		_, err := svc.Onboard(context.Background(), actor, service.OnboardInput{
			NPI:       "1234567890",
			Specialty: "Cardiology",
		})
		assert.ErrorIs(t, err, domain.ErrProviderExists)
	})
}

func TestProviderReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	companyID := uuid.New()
	provider := &model.Provider{ID: uuid.New(), UserID: uuid.New(), Status: model.ProviderPending}

	t.Run("approve promotes and audits", func(t *testing.T) {
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)
		auditRepo := mocks.NewMockAdminActionLogRepositoryIface(ctrl)

		providerRepo.EXPECT().FindByID(gomock.Any(), provider.ID).Return(provider, nil)
		providerRepo.EXPECT().UpdateStatusIf(gomock.Any(), provider.ID,
			[]model.ProviderStatus{model.ProviderPending, model.ProviderInactive}, model.ProviderActive).Return(true, nil)
		auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *model.AdminActionLog) error {
				assert.Equal(t, model.ActionApproveProvider, entry.ActionType)
				assert.Equal(t, provider.ID, entry.TargetID)
				assert.Equal(t, companyID, entry.CompanyID)
				return nil
			})

		svc := service.NewProviderService(providerRepo, auditRepo)
		assert.NoError(t, svc.Approve(context.Background(), admin, provider.ID, companyID))
	})

	t.Run("approving a suspended provider is a conflict", func(t *testing.T) {
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)
		auditRepo := mocks.NewMockAdminActionLogRepositoryIface(ctrl)

		providerRepo.EXPECT().FindByID(gomock.Any(), provider.ID).Return(provider, nil)
		providerRepo.EXPECT().UpdateStatusIf(gomock.Any(), provider.ID, gomock.Any(), model.ProviderActive).Return(false, nil)

		svc := service.NewProviderService(providerRepo, auditRepo)
		assert.ErrorIs(t, svc.Approve(context.Background(), admin, provider.ID, companyID), domain.ErrConflict)
	})

	t.Run("reject moves pending to inactive", func(t *testing.T) {
		providerRepo := mocks.NewMockProviderRepositoryIface(ctrl)
		auditRepo := mocks.NewMockAdminActionLogRepositoryIface(ctrl)

		providerRepo.EXPECT().FindByID(gomock.Any(), provider.ID).Return(provider, nil)
		providerRepo.EXPECT().UpdateStatusIf(gomock.Any(), provider.ID,
			[]model.ProviderStatus{model.ProviderPending}, model.ProviderInactive).Return(true, nil)
		auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewProviderService(providerRepo, auditRepo)
		assert.NoError(t, svc.Reject(context.Background(), admin, provider.ID, companyID))
	})

	t.Run("only admins review profiles", func(t *testing.T) {
		svc := service.NewProviderService(nil, nil)
		err := svc.Approve(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleProvider}, provider.ID, companyID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
