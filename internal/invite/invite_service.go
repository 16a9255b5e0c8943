package invite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-outtime/internal/employee"
	"go-outtime/internal/events"
	inviteerrors "go-outtime/internal/invite/errors"
	"go-outtime/internal/messaging/kafka"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/clock"
	"go-outtime/internal/shared/connection"
	"go-outtime/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultTTL         = 7 * 24 * time.Hour
	DefaultBotUsername = "outtime_bot"
)

// Link builds the deep link that opens the bot with the invite token.
func Link(botUsername, token string) string {
	if botUsername == "" {
		botUsername = DefaultBotUsername
	}
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, token)
}

type Options struct {
	TTL         time.Duration
	BotUsername string
}

//go:generate mockgen -source=invite_service.go -destination=mock/invite_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateInviteRequest) (InviteResponse, error)
	Validate(ctx context.Context, token string) (InviteResponse, error)
	Redeem(ctx context.Context, req RedeemInviteRequest) (RedeemInviteResponse, error)
	ListActive(ctx context.Context, companyID string) ([]InviteResponse, error)
	Revoke(ctx context.Context, companyID, token string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outboxRepo   kafka.OutboxRepository
	options      *employee.OptionsCache
	clock        clock.Clock
	opts         Options
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	options *employee.OptionsCache,
	clk clock.Clock,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invite.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invite.service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.BotUsername == "" {
		opts.BotUsername = DefaultBotUsername
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outboxRepo:   outboxRepo,
		options:      options,
		clock:        clk,
		opts:         opts,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateInviteRequest) (InviteResponse, error) {
	name := strings.TrimSpace(req.Name)
	if n := len([]rune(name)); n < 2 || n > 255 {
		return InviteResponse{}, inviteerrors.ErrInvalidName
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return InviteResponse{}, apperror.ErrInvalidInput
	}

	now := s.clock.Now()
	inv := &Invite{
		ID:           uuid.New(),
		Token:        uuid.NewString(),
		CompanyID:    cid,
		EmployeeName: name,
		ExpiresAt:    now.Add(s.opts.TTL),
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error("create invite failed", zap.String("company_id", companyID), zap.Error(err))
		return InviteResponse{}, err
	}

	s.logger.Info("invite created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.String("invite_id", inv.ID.String()),
	)
	return s.toResponse(*inv), nil
}

func (s *service) Validate(ctx context.Context, token string) (InviteResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return InviteResponse{}, inviteerrors.ErrInvalidOrExpiredInvite
	}
	inv, err := s.repo.FindRedeemable(ctx, token, s.clock.Now())
	if err != nil {
		return InviteResponse{}, mapLookupError(err)
	}
	return s.toResponse(*inv), nil
}

func (s *service) Redeem(ctx context.Context, req RedeemInviteRequest) (RedeemInviteResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	token := strings.TrimSpace(req.InviteToken)
	if token == "" {
		return RedeemInviteResponse{}, inviteerrors.ErrInvalidOrExpiredInvite
	}
	if req.TelegramID == 0 {
		return RedeemInviteResponse{}, inviteerrors.ErrInvalidTelegramID
	}

	now := s.clock.Now()

	// the locked read inside the transaction is authoritative
	inv, err := s.repo.FindRedeemable(ctx, token, now)
	if err != nil {
		return RedeemInviteResponse{}, mapLookupError(err)
	}
	if _, err := s.employeeRepo.FindActiveByTelegramID(ctx, req.TelegramID); err == nil {
		return RedeemInviteResponse{}, inviteerrors.ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RedeemInviteResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RedeemInviteResponse{}, err
	}
	defer tx.Rollback()

	qInvite := s.repo.WithTx(tx)
	qEmployee := s.employeeRepo.WithTx(tx)
	qOutbox := s.outboxRepo.WithTx(tx)

	locked, err := qInvite.LockRedeemable(ctx, token, now)
	if err != nil {
		return RedeemInviteResponse{}, mapLookupError(err)
	}
	if !locked.Redeemable(now) {
		return RedeemInviteResponse{}, inviteerrors.ErrInvalidOrExpiredInvite
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = locked.EmployeeName
	}

	emp := &employee.Employee{
		ID:         uuid.New(),
		CompanyID:  locked.CompanyID,
		TelegramID: req.TelegramID,
		Name:       name,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := qEmployee.Create(ctx, emp); err != nil {
		if connection.IsUniqueViolation(err, employee.ActiveTelegramConstraint) {
			return RedeemInviteResponse{}, inviteerrors.ErrAlreadyRegistered
		}
		s.logger.Error("create employee from invite failed", zap.String("request_id", rid), zap.Error(err))
		return RedeemInviteResponse{}, err
	}

	if err := qInvite.MarkUsed(ctx, locked.ID.String(), now); err != nil {
		return RedeemInviteResponse{}, mapLookupError(err)
	}

	event, err := kafka.NewEvent(rid, "employee", emp.ID.String(),
		events.EmployeeRegisteredEvent, events.EmployeeLifecycleTopic,
		events.EmployeeRegistered{
			EventType:   events.EmployeeRegisteredEvent,
			EmployeeID:  emp.ID.String(),
			CompanyID:   emp.CompanyID.String(),
			TelegramID:  emp.TelegramID,
			Name:        emp.Name,
			InviteToken: token,
			OccurredAt:  now.UTC(),
		})
	if err != nil {
		return RedeemInviteResponse{}, err
	}
	if err := qOutbox.Create(ctx, event); err != nil {
		s.logger.Error("enqueue employee registered event failed", zap.String("request_id", rid), zap.Error(err))
		return RedeemInviteResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RedeemInviteResponse{}, err
	}
	s.options.Invalidate(ctx, emp.CompanyID.String())

	s.logger.Info("invite redeemed",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("company_id", emp.CompanyID.String()),
	)

	companyName := inv.CompanyName()
	return RedeemInviteResponse{
		Message: fmt.Sprintf("Welcome to %s!", companyName),
		Employee: RegisteredEmployee{
			ID:          emp.ID.String(),
			Name:        emp.Name,
			CompanyID:   emp.CompanyID.String(),
			CompanyName: companyName,
		},
	}, nil
}

func (s *service) ListActive(ctx context.Context, companyID string) ([]InviteResponse, error) {
	rows, err := s.repo.ListActiveByCompany(ctx, companyID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	out := make([]InviteResponse, len(rows))
	for i, inv := range rows {
		out[i] = s.toResponse(inv)
	}
	return out, nil
}

func (s *service) Revoke(ctx context.Context, companyID, token string) error {
	if err := s.repo.DeleteUnused(ctx, companyID, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inviteerrors.ErrInviteNotFound
		}
		return err
	}
	s.logger.Info("invite revoked", zap.String("company_id", companyID))
	return nil
}

func (s *service) toResponse(inv Invite) InviteResponse {
	return InviteResponse{
		ID:           inv.ID.String(),
		Token:        inv.Token,
		EmployeeName: inv.EmployeeName,
		CompanyName:  inv.CompanyName(),
		InviteLink:   Link(s.opts.BotUsername, inv.Token),
		ExpiresAt:    inv.ExpiresAt.Format(time.RFC3339),
		CreatedAt:    inv.CreatedAt.Format(time.RFC3339),
	}
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inviteerrors.ErrInvalidOrExpiredInvite
	}
	return err
}
