package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	autherrors "go-outtime/internal/auth/errors"
	"go-outtime/internal/auth/token"
	"go-outtime/internal/company"
	companyerrors "go-outtime/internal/company/errors"
	"go-outtime/internal/domain"
	"go-outtime/internal/shared/clock"
	"go-outtime/internal/shared/connection"
	"go-outtime/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (Session, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	companyRepo company.Repository
	tokens      *token.Issuer
	clock       clock.Clock
	bcryptCost  int
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	companyRepo company.Repository,
	tokens *token.Issuer,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{
		db:          db,
		repo:        repo,
		companyRepo: companyRepo,
		tokens:      tokens,
		clock:       clk,
		bcryptCost:  bcrypt.DefaultCost,
		logger:      l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	rid := contextutil.GetRequestID(ctx)

	companyName := strings.TrimSpace(req.CompanyName)
	if n := utf8.RuneCountInString(companyName); n < 2 || n > 100 {
		return Session{}, companyerrors.ErrInvalidName
	}
	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = company.DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return Session{}, companyerrors.ErrInvalidTimezone
	}
	if len(req.Password) < minPasswordLength {
		return Session{}, autherrors.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return Session{}, err
	}

	now := s.clock.Now()
	c := &company.Company{
		ID:                      uuid.New(),
		Name:                    companyName,
		MorningNotificationTime: company.DefaultMorningTime,
		EveningNotificationTime: company.DefaultEveningTime,
		Timezone:                tz,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	user := &User{
		ID:           uuid.New(),
		CompanyID:    c.ID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hashed),
		Role:         domain.RoleOwner,
		LastLogin:    &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Session{}, err
	}
	defer tx.Rollback()

	if err := s.companyRepo.WithTx(tx).Create(ctx, c); err != nil {
		s.logger.Error("create company failed", zap.String("request_id", rid), zap.Error(err))
		return Session{}, err
	}
	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		if connection.IsUniqueViolation(err, EmailConstraint) {
			return Session{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("create user failed", zap.String("request_id", rid), zap.Error(err))
		return Session{}, err
	}
	if err := tx.Commit(); err != nil {
		return Session{}, err
	}

	s.logger.Info("company registered",
		zap.String("request_id", rid),
		zap.String("company_id", c.ID.String()),
		zap.String("user_id", user.ID.String()),
	)

	resp := mapToResponse(user)
	resp.CompanyName = c.Name
	return s.session(user, resp)
}

func (s *service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, autherrors.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, autherrors.ErrInvalidCredentials
	}

	now := s.clock.Now()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		// login still succeeds; the timestamp is informational
		s.logger.Warn("update last_login failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	return s.session(user, mapToResponse(user))
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return Session{}, autherrors.ErrInvalidRefreshToken
	}
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		if errors.Is(err, autherrors.ErrTokenExpired) {
			return Session{}, err
		}
		return Session{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.findUser(ctx, claims.UserID)
	if err != nil {
		return Session{}, err
	}
	return s.session(user, mapToResponse(user))
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return AuthResponse{}, err
	}
	resp := mapToResponse(user)
	if c, err := s.companyRepo.GetByID(ctx, user.CompanyID); err == nil {
		resp.CompanyName = c.Name
	}
	return resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}
	if len(req.NewPassword) < minPasswordLength {
		return autherrors.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	s.logger.Info("password changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", user.ID.String()),
	)
	return nil
}

func (s *service) findUser(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) session(user *User, resp AuthResponse) (Session, error) {
	access, refresh, err := s.tokens.Pair(token.Subject{
		UserID:    user.ID.String(),
		CompanyID: user.CompanyID.String(),
		Role:      user.Role,
	})
	if err != nil {
		return Session{}, err
	}
	return Session{User: resp, AccessToken: access, RefreshToken: refresh}, nil
}

func mapToResponse(u *User) AuthResponse {
	resp := AuthResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.UTC().Format(time.RFC3339)
	}
	return resp
}
