package notification

import (
	"context"
	"errors"
	"time"

	"go-outtime/internal/attendance"
	"go-outtime/internal/employee"
	"go-outtime/internal/invite"
	"go-outtime/internal/shared/clock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultSendDelay = 100 * time.Millisecond

type PassResult struct {
	Kind      Kind   `json:"kind"`
	CompanyID string `json:"company_id,omitempty"`
	Sent      int    `json:"sent"`
	Errors    int    `json:"errors"`
	Skipped   int    `json:"skipped"`
	Deleted   int64  `json:"deleted,omitempty"`
}

// Notifier runs trigger passes. An empty companyID covers every company.
//
//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Notifier interface {
	RunMorningPass(ctx context.Context, companyID string) (PassResult, error)
	RunEveningPass(ctx context.Context, companyID string) (PassResult, error)
	RunLateReminderPass(ctx context.Context, companyID string) (PassResult, error)
	RunCleanupPass(ctx context.Context) (PassResult, error)
}

type Options struct {
	SendDelay time.Duration
}

type notifier struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	inviteRepo     invite.Repository
	messenger      Messenger
	clock          clock.Clock
	sendDelay      time.Duration
	logger         *zap.Logger
}

func NewNotifier(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	inviteRepo invite.Repository,
	messenger Messenger,
	clk clock.Clock,
	opts Options,
	logger ...*zap.Logger,
) Notifier {
	l := zap.L().Named("notification.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.notifier")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if opts.SendDelay < 0 {
		opts.SendDelay = 0
	}
	return &notifier{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		inviteRepo:     inviteRepo,
		messenger:      messenger,
		clock:          clk,
		sendDelay:      opts.SendDelay,
		logger:         l,
	}
}

type sendFunc func(ctx context.Context, telegramID int64, name string) error

func (n *notifier) RunMorningPass(ctx context.Context, companyID string) (PassResult, error) {
	return n.fanOut(ctx, KindMorning, companyID, NeedsStartPrompt, n.messenger.SendMorningPrompt)
}

func (n *notifier) RunEveningPass(ctx context.Context, companyID string) (PassResult, error) {
	return n.fanOut(ctx, KindEvening, companyID, NeedsEndPrompt, n.messenger.SendEveningPrompt)
}

func (n *notifier) RunLateReminderPass(ctx context.Context, companyID string) (PassResult, error) {
	return n.fanOut(ctx, KindLate, companyID, NeedsStartPrompt, n.messenger.SendLateReminder)
}

func (n *notifier) RunCleanupPass(ctx context.Context) (PassResult, error) {
	deleted, err := n.inviteRepo.DeleteExpiredUnused(ctx, n.clock.Now())
	if err != nil {
		n.logger.Error("invite cleanup failed", zap.Error(err))
		return PassResult{Kind: KindCleanup}, err
	}
	n.logger.Info("pass finished", zap.String("pass", string(KindCleanup)), zap.Int64("deleted", deleted))
	return PassResult{Kind: KindCleanup, Deleted: deleted}, nil
}

func (n *notifier) employees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if companyID == "" {
		return n.employeeRepo.FindAllActive(ctx)
	}
	return n.employeeRepo.FindActiveByCompany(ctx, companyID)
}

// fanOut walks employees one at a time. A failure for one employee is counted
// and the pass moves on; only loading the roster or a cancelled ctx stops it.
func (n *notifier) fanOut(
	ctx context.Context,
	kind Kind,
	companyID string,
	eligible func(*attendance.TimeRecord) bool,
	send sendFunc,
) (PassResult, error) {
	res := PassResult{Kind: kind, CompanyID: companyID}

	staff, err := n.employees(ctx, companyID)
	if err != nil {
		n.logger.Error("load employees for pass failed",
			zap.String("pass", string(kind)),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return res, err
	}

	sentBefore := false
	for _, e := range staff {
		if err := ctx.Err(); err != nil {
			n.logSummary(res)
			return res, err
		}

		today := clock.DateIn(n.clock.Now(), e.Location())
		rec, err := n.attendanceRepo.FindByEmployeeAndDate(ctx, e.ID.String(), today)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			res.Errors++
			n.logger.Warn("attendance lookup failed",
				zap.String("pass", string(kind)),
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if !eligible(rec) {
			res.Skipped++
			continue
		}

		if sentBefore {
			if err := n.pause(ctx); err != nil {
				n.logSummary(res)
				return res, err
			}
		}
		sentBefore = true

		if err := send(ctx, e.TelegramID, e.Name); err != nil {
			res.Errors++
			n.logger.Warn("send notification failed",
				zap.String("pass", string(kind)),
				zap.String("employee_id", e.ID.String()),
				zap.Error(err),
			)
			continue
		}
		res.Sent++
	}

	n.logSummary(res)
	return res, nil
}

func (n *notifier) pause(ctx context.Context) error {
	if n.sendDelay == 0 {
		return nil
	}
	t := time.NewTimer(n.sendDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (n *notifier) logSummary(res PassResult) {
	n.logger.Info("pass finished",
		zap.String("pass", string(res.Kind)),
		zap.String("company_id", res.CompanyID),
		zap.Int("sent", res.Sent),
		zap.Int("errors", res.Errors),
		zap.Int("skipped", res.Skipped),
	)
}
