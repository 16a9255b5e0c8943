package user_test

import (
	"context"
	"errors"
	"testing"

	"go-outtime/internal/auth"
	"go-outtime/internal/domain"
	"go-outtime/internal/user"
	usererrors "go-outtime/internal/user/errors"
	userMock "go-outtime/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (user.Service, *userMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	return user.NewService(repo), repo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("admin account", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, "ops@acme.io", u.Email)
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			return nil
		})

		resp, err := svc.Create(ctx, companyID, user.CreateUserRequest{
			Email: " Ops@Acme.io ", Name: "Ops", Password: "secret1", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("owner role is not assignable", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Create(ctx, companyID, user.CreateUserRequest{
			Email: "a@b.io", Name: "Ann", Password: "secret1", Role: domain.RoleOwner,
		})
		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: auth.EmailConstraint})

		_, err := svc.Create(ctx, companyID, user.CreateUserRequest{
			Email: "a@b.io", Name: "Ann", Password: "secret1", Role: domain.RoleViewer,
		})
		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}

func TestService_UpdateRole(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	targetID := uuid.NewString()

	tests := []struct {
		name    string
		id      string
		role    string
		setup   func(repo *userMock.MockRepository)
		wantErr error
	}{
		{
			name: "viewer promoted",
			id:   targetID,
			role: domain.RoleAdmin,
			setup: func(repo *userMock.MockRepository) {
				repo.EXPECT().FindByID(ctx, companyID, targetID).Return(&auth.User{Role: domain.RoleViewer}, nil)
				repo.EXPECT().UpdateRole(ctx, companyID, targetID, domain.RoleAdmin).Return(nil)
			},
		},
		{
			name:    "self",
			id:      actorID,
			role:    domain.RoleViewer,
			wantErr: usererrors.ErrSelfModification,
		},
		{
			name: "owner",
			id:   targetID,
			role: domain.RoleViewer,
			setup: func(repo *userMock.MockRepository) {
				repo.EXPECT().FindByID(ctx, companyID, targetID).Return(&auth.User{Role: domain.RoleOwner}, nil)
			},
			wantErr: usererrors.ErrOwnerImmutable,
		},
		{
			name: "missing",
			id:   targetID,
			role: domain.RoleViewer,
			setup: func(repo *userMock.MockRepository) {
				repo.EXPECT().FindByID(ctx, companyID, targetID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: usererrors.ErrUserNotFound,
		},
		{
			name:    "unknown role",
			id:      targetID,
			role:    "SUPERUSER",
			wantErr: usererrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}
			resp, err := svc.UpdateRole(ctx, companyID, actorID, tt.id, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, resp.Role)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	targetID := uuid.NewString()

	t.Run("viewer removed", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByID(ctx, companyID, targetID).Return(&auth.User{Role: domain.RoleViewer}, nil)
		repo.EXPECT().Delete(ctx, companyID, targetID).Return(nil)
		assert.NoError(t, svc.Delete(ctx, companyID, actorID, targetID))
	})

	t.Run("cannot remove self", func(t *testing.T) {
		svc, _ := setupService(t)
		assert.ErrorIs(t, svc.Delete(ctx, companyID, actorID, actorID), usererrors.ErrSelfModification)
	})

	t.Run("repository failure passes through", func(t *testing.T) {
		svc, repo := setupService(t)
		boom := errors.New("connection reset")
		repo.EXPECT().FindByID(ctx, companyID, targetID).Return(&auth.User{Role: domain.RoleAdmin}, nil)
		repo.EXPECT().Delete(ctx, companyID, targetID).Return(boom)
		assert.ErrorIs(t, svc.Delete(ctx, companyID, actorID, targetID), boom)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	targetID := uuid.NewString()

	svc, repo := setupService(t)
	repo.EXPECT().FindByID(ctx, companyID, targetID).Return(&auth.User{Role: domain.RoleAdmin}, nil)
	repo.EXPECT().UpdatePassword(ctx, companyID, targetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, hash string) error {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1"))
		})

	assert.NoError(t, svc.ResetPassword(ctx, companyID, targetID, "newpass1"))
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	svc, repo := setupService(t)
	repo.EXPECT().FindAllByCompany(ctx, companyID).Return([]auth.User{
		{ID: uuid.New(), Email: "owner@acme.io", Role: domain.RoleOwner},
		{ID: uuid.New(), Email: "view@acme.io", Role: domain.RoleViewer},
	}, nil)

	got, err := svc.List(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "view@acme.io", got[1].Email)
	assert.Empty(t, got[0].LastLogin)
}
