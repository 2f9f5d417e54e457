package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/verifield/credplane/internal/auth"
	"github.com/verifield/credplane/internal/domain"
	"github.com/verifield/credplane/internal/mocks"
	"github.com/verifield/credplane/internal/model"
	"github.com/verifield/credplane/internal/service"
)

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	input := service.SignupInput{
		Email:    "dana@example.com",
		FullName: "Dana Reyes",
		Password: "correct horse battery",
		Role:     model.RoleProvider,
	}

	t.Run("creates the account and issues a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *model.User) error {
				assert.Equal(t, input.Email, user.Email)
				assert.Equal(t, model.RoleProvider, user.Role)
				assert.NotEqual(t, input.Password, user.PasswordHash)
				user.ID = uuid.New()
				return nil
			})

		svc := service.NewAccountService(userRepo, hasher, tokens)
		out, err := svc.Signup(context.Background(), input)

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		claims, err := tokens.Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, string(model.RoleProvider), claims.Role)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(&model.User{ID: uuid.New(), Email: input.Email}, nil)

		svc := service.NewAccountService(userRepo, hasher, tokens)
		_, err := svc.Signup(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short passwords are refused", func(t *testing.T) {
		svc := service.NewAccountService(nil, hasher, tokens)
		weak := input
		weak.Password = "short"
		_, err := svc.Signup(context.Background(), weak)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("role must be admin or provider", func(t *testing.T) {
		svc := service.NewAccountService(nil, hasher, tokens)
		bad := input
		bad.Role = model.Role("superuser")
		_, err := svc.Signup(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	hashed, err := hasher.Hash("correct horse battery")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "dana@example.com",
		FullName:     "Dana Reyes",
		Role:         model.RoleAdmin,
		PasswordHash: hashed,
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewAccountService(userRepo, hasher, tokens)
		out, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "correct horse battery"})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		claims, err := tokens.Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewAccountService(userRepo, hasher, tokens)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "wrong password"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to a wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		svc := service.NewAccountService(userRepo, hasher, tokens)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
