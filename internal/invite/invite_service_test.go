package invite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-outtime/internal/company"
	"go-outtime/internal/employee"
	employeeMock "go-outtime/internal/employee/mock"
	"go-outtime/internal/events"
	"go-outtime/internal/invite"
	inviteerrors "go-outtime/internal/invite/errors"
	inviteMock "go-outtime/internal/invite/mock"
	"go-outtime/internal/messaging/kafka"
	kafkaMock "go-outtime/internal/messaging/kafka/mock"
	"go-outtime/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type inviteDeps struct {
	sqlMock      sqlmock.Sqlmock
	repo         *inviteMock.MockRepository
	employeeRepo *employeeMock.MockRepository
	outboxRepo   *kafkaMock.MockOutboxRepository
	service      invite.Service
	now          time.Time
}

func setupInviteService(t *testing.T) *inviteDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := inviteMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := invite.NewService(db, repo, employeeRepo, outboxRepo,
		employee.NewOptionsCache(nil),
		clock.Fixed(now),
		invite.Options{BotUsername: "acme_bot"},
	)

	return &inviteDeps{
		sqlMock:      sqlMock,
		repo:         repo,
		employeeRepo: employeeRepo,
		outboxRepo:   outboxRepo,
		service:      svc,
		now:          now,
	}
}

func pendingInvite(now time.Time) *invite.Invite {
	return &invite.Invite{
		ID:           uuid.New(),
		Token:        uuid.NewString(),
		CompanyID:    uuid.New(),
		EmployeeName: "Invited Name",
		ExpiresAt:    now.Add(48 * time.Hour),
		Company:      &company.Company{Name: "Acme"},
	}
}

func expectRedeemTx(d *inviteDeps) {
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.employeeRepo.EXPECT().WithTx(gomock.Any()).Return(d.employeeRepo)
	d.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(d.outboxRepo)
}

func TestInviteService_Create(t *testing.T) {
	d := setupInviteService(t)
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("seven day expiry and bot link", func(t *testing.T) {
		d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv *invite.Invite) error {
			assert.Equal(t, "Dana", inv.EmployeeName)
			assert.False(t, inv.IsUsed)
			assert.Equal(t, d.now.Add(7*24*time.Hour), inv.ExpiresAt)
			_, err := uuid.Parse(inv.Token)
			assert.NoError(t, err)
			return nil
		})

		resp, err := d.service.Create(ctx, companyID, invite.CreateInviteRequest{Name: " Dana "})
		assert.NoError(t, err)
		assert.Equal(t, "https://t.me/acme_bot?start="+resp.Token, resp.InviteLink)
	})

	t.Run("name too short", func(t *testing.T) {
		_, err := d.service.Create(ctx, companyID, invite.CreateInviteRequest{Name: "D"})
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidName)
	})
}

func TestInviteService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("pending invite", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)

		resp, err := d.service.Validate(ctx, " "+inv.Token+" ")
		require.NoError(t, err)
		assert.Equal(t, inv.Token, resp.Token)
		assert.Equal(t, "Acme", resp.CompanyName)
		assert.Equal(t, "Invited Name", resp.EmployeeName)
		assert.Equal(t, "https://t.me/acme_bot?start="+inv.Token, resp.InviteLink)
	})

	t.Run("expired token", func(t *testing.T) {
		d := setupInviteService(t)

		d.repo.EXPECT().FindRedeemable(ctx, "expired-tok", d.now).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.Validate(ctx, "expired-tok")
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
	})

	t.Run("used token", func(t *testing.T) {
		d := setupInviteService(t)

		d.repo.EXPECT().FindRedeemable(ctx, "used-tok", d.now).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.Validate(ctx, "used-tok")
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
	})

	t.Run("blank token", func(t *testing.T) {
		d := setupInviteService(t)
		_, err := d.service.Validate(ctx, "   ")
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
	})

	t.Run("database error passes through", func(t *testing.T) {
		d := setupInviteService(t)
		dbErr := errors.New("connection reset")

		d.repo.EXPECT().FindRedeemable(ctx, "tok", d.now).Return(nil, dbErr)

		_, err := d.service.Validate(ctx, "tok")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestInviteService_Redeem(t *testing.T) {
	ctx := context.Background()

	t.Run("success then second redemption is rejected", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)
		req := invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token}

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "Invited Name", e.Name)
			assert.Equal(t, inv.CompanyID, e.CompanyID)
			assert.True(t, e.IsActive)
			return nil
		})
		d.repo.EXPECT().MarkUsed(ctx, inv.ID.String(), d.now).Return(nil)
		d.outboxRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.Event) error {
			assert.Equal(t, events.EmployeeRegisteredEvent, ev.EventType)
			assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
			return nil
		})
		d.sqlMock.ExpectCommit()

		resp, err := d.service.Redeem(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Acme", resp.Employee.CompanyName)
		assert.Equal(t, "Welcome to Acme!", resp.Message)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(nil, gorm.ErrRecordNotFound)
		_, err = d.service.Redeem(ctx, req)
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("supplied name wins over invite name", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "Chosen", e.Name)
			return nil
		})
		d.repo.EXPECT().MarkUsed(ctx, inv.ID.String(), d.now).Return(nil)
		d.outboxRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.sqlMock.ExpectCommit()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 7, Name: "Chosen", InviteToken: inv.Token})
		assert.NoError(t, err)
	})

	t.Run("already registered", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(&employee.Employee{}, nil)

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.ErrorIs(t, err, inviteerrors.ErrAlreadyRegistered)
	})

	t.Run("concurrent registration hits the unique index", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: employee.ActiveTelegramConstraint,
		})
		d.sqlMock.ExpectRollback()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.ErrorIs(t, err, inviteerrors.ErrAlreadyRegistered)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("invite consumed between check and lock", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
	})

	t.Run("locked row already used", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)
		used := *inv
		used.IsUsed = true

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(&used, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("locked row expires at redemption time", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)
		stale := *inv
		stale.ExpiresAt = d.now

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(&stale, nil)
		d.sqlMock.ExpectRollback()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidOrExpiredInvite)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		d := setupInviteService(t)
		inv := pendingInvite(d.now)

		d.repo.EXPECT().FindRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectBegin()
		expectRedeemTx(d)
		d.repo.EXPECT().LockRedeemable(ctx, inv.Token, d.now).Return(inv, nil)
		d.employeeRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.repo.EXPECT().MarkUsed(ctx, inv.ID.String(), d.now).Return(nil)
		d.outboxRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))
		d.sqlMock.ExpectRollback()

		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{TelegramID: 42, InviteToken: inv.Token})
		assert.EqualError(t, err, "disk full")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing telegram id", func(t *testing.T) {
		d := setupInviteService(t)
		_, err := d.service.Redeem(ctx, invite.RedeemInviteRequest{InviteToken: "abc"})
		assert.ErrorIs(t, err, inviteerrors.ErrInvalidTelegramID)
	})
}

func TestInviteService_Revoke(t *testing.T) {
	d := setupInviteService(t)
	ctx := context.Background()

	d.repo.EXPECT().DeleteUnused(ctx, "c1", "tok").Return(gorm.ErrRecordNotFound)

	err := d.service.Revoke(ctx, "c1", "tok")
	assert.ErrorIs(t, err, inviteerrors.ErrInviteNotFound)
}

func TestInvite_Redeemable(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		inv  invite.Invite
		want bool
	}{
		{"fresh", invite.Invite{ExpiresAt: now.Add(time.Hour)}, true},
		{"used", invite.Invite{IsUsed: true, ExpiresAt: now.Add(time.Hour)}, false},
		{"expired unused", invite.Invite{ExpiresAt: now.Add(-time.Second)}, false},
		{"expired and used", invite.Invite{IsUsed: true, ExpiresAt: now.Add(-time.Hour)}, false},
		{"expires exactly now", invite.Invite{ExpiresAt: now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv.Redeemable(now))
		})
	}
}
