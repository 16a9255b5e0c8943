package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-outtime/internal/auth"
	"go-outtime/internal/domain"
	"go-outtime/internal/shared/connection"
	"go-outtime/internal/shared/contextutil"
	usererrors "go-outtime/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service manages the dashboard accounts of a company. Only ADMIN and VIEWER
// accounts are created here; the OWNER comes from registration.
//
//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, companyID string) ([]UserResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, companyID, actorID, id, role string) (UserResponse, error)
	ResetPassword(ctx context.Context, companyID, id, newPassword string) error
	Delete(ctx context.Context, companyID, actorID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = mapToResponse(u)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	u, err := s.find(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	role, ok := assignableRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &auth.User{
		ID:           uuid.New(),
		CompanyID:    cid,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("user created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.String("user_id", u.ID.String()),
		zap.String("role", role),
	)
	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, companyID, actorID, id, role string) (UserResponse, error) {
	newRole, ok := assignableRole(role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if id == actorID {
		return UserResponse{}, usererrors.ErrSelfModification
	}

	u, err := s.find(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, err
	}
	if u.Role == domain.RoleOwner {
		return UserResponse{}, usererrors.ErrOwnerImmutable
	}

	if err := s.repo.UpdateRole(ctx, companyID, id, newRole); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	u.Role = newRole

	s.logger.Info("user role changed", zap.String("user_id", id), zap.String("role", newRole))
	return mapToResponse(*u), nil
}

func (s *service) ResetPassword(ctx context.Context, companyID, id, newPassword string) error {
	u, err := s.find(ctx, companyID, id)
	if err != nil {
		return err
	}
	if u.Role == domain.RoleOwner {
		return usererrors.ErrOwnerImmutable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, companyID, id, string(hash)); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("user password reset", zap.String("user_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, companyID, actorID, id string) error {
	if id == actorID {
		return usererrors.ErrSelfModification
	}
	u, err := s.find(ctx, companyID, id)
	if err != nil {
		return err
	}
	if u.Role == domain.RoleOwner {
		return usererrors.ErrOwnerImmutable
	}
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("user deleted", zap.String("company_id", companyID), zap.String("user_id", id))
	return nil
}

func (s *service) find(ctx context.Context, companyID, id string) (*auth.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}

func assignableRole(role string) (string, bool) {
	switch r := strings.ToUpper(strings.TrimSpace(role)); r {
	case domain.RoleAdmin, domain.RoleViewer:
		return r, true
	}
	return "", false
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if connection.IsUniqueViolation(err, auth.EmailConstraint) {
		return usererrors.ErrUserAlreadyExists
	}
	return err
}

func mapToResponse(u auth.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.Format(time.RFC3339)
	}
	return resp
}
