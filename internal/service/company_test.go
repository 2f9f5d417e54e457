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

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}

	t.Run("generates a well-formed enrollment code", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		companyRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, company *model.Company) error {
				assert.Len(t, company.EnrollmentCode, model.EnrollmentCodeLength)
				assert.NotContains(t, company.EnrollmentCode, "0")
				assert.NotContains(t, company.EnrollmentCode, "O")
				assert.NotContains(t, company.EnrollmentCode, "1")
				assert.NotContains(t, company.EnrollmentCode, "I")
				assert.Equal(t, admin.UserID, company.AdminID)
				return nil
			})

		svc := service.NewCompanyService(companyRepo, nil, nil)
		company, err := svc.CreateCompany(context.Background(), admin, service.CreateCompanyInput{Name: "Lakeside Clinic"})

		assert.NoError(t, err)
		assert.Equal(t, "Lakeside Clinic", company.Name)
	})

	t.Run("regenerates on a taken code", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		gomock.InOrder(
			companyRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
			companyRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
			companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewCompanyService(companyRepo, nil, nil)
		_, err := svc.CreateCompany(context.Background(), admin, service.CreateCompanyInput{Name: "Lakeside Clinic"})
		assert.NoError(t, err)
	})

	t.Run("retries when the insert loses a code race", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		gomock.InOrder(
			companyRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
			companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrConflict),
			companyRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
			companyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		svc := service.NewCompanyService(companyRepo, nil, nil)
		_, err := svc.CreateCompany(context.Background(), admin, service.CreateCompanyInput{Name: "Lakeside Clinic"})
		assert.NoError(t, err)
	})

	t.Run("providers cannot create companies", func(t *testing.T) {
		svc := service.NewCompanyService(nil, nil, nil)
		_, err := svc.CreateCompany(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleProvider}, service.CreateCompanyInput{Name: "Lakeside Clinic"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("name is required", func(t *testing.T) {
		svc := service.NewCompanyService(nil, nil, nil)
		_, err := svc.CreateCompany(context.Background(), admin, service.CreateCompanyInput{})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})
}

func TestGetCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), Name: "Lakeside Clinic", AdminID: admin.UserID}

	t.Run("owning admin can read", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		svc := service.NewCompanyService(companyRepo, nil, nil)
		got, err := svc.GetCompany(context.Background(), admin, company.ID)

		assert.NoError(t, err)
		assert.Equal(t, company.ID, got.ID)
	})

	t.Run("another admin is refused", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		svc := service.NewCompanyService(companyRepo, nil, nil)
		_, err := svc.GetCompany(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, company.ID)
		assert.ErrorIs(t, err, domain.ErrNotCompanyAdmin)
	})
}

func TestListActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	company := &model.Company{ID: uuid.New(), Name: "Lakeside Clinic", AdminID: admin.UserID}

	t.Run("pages the owning admin's trail", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		auditRepo := mocks.NewMockAdminActionLogRepositoryIface(ctrl)

		entries := []*model.AdminActionLog{
			{ID: uuid.New(), AdminID: admin.UserID, ActionType: model.ActionApproveRequest, CompanyID: company.ID},
		}
		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		auditRepo.EXPECT().FindByCompany(gomock.Any(), company.ID, 25, 0).Return(entries, int64(1), nil)

		svc := service.NewCompanyService(companyRepo, nil, auditRepo)
		actions, total, err := svc.ListActions(context.Background(), admin, company.ID, 25, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, actions, 1)
	})

	t.Run("clamps an unbounded page size", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		auditRepo := mocks.NewMockAdminActionLogRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)
		auditRepo.EXPECT().FindByCompany(gomock.Any(), company.ID, 50, 0).Return(nil, int64(0), nil)

		svc := service.NewCompanyService(companyRepo, nil, auditRepo)
		_, _, err := svc.ListActions(context.Background(), admin, company.ID, 100000, -3)
		assert.NoError(t, err)
	})

	t.Run("another admin is refused", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		svc := service.NewCompanyService(companyRepo, nil, nil)
		_, _, err := svc.ListActions(context.Background(), model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, company.ID, 10, 0)
		assert.ErrorIs(t, err, domain.ErrNotCompanyAdmin)
	})
}
