package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-outtime/internal/attendance"
	attendanceerrors "go-outtime/internal/attendance/errors"
	"go-outtime/internal/company"
	"go-outtime/internal/employee"
	employeeMock "go-outtime/internal/employee/mock"
	"go-outtime/internal/events"
	"go-outtime/internal/messaging/kafka"
	kafkaMock "go-outtime/internal/messaging/kafka/mock"
	"go-outtime/internal/report"
	reportMock "go-outtime/internal/report/mock"
	"go-outtime/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memRepo keeps records keyed by employee and date like the unique index does.
type memRepo struct {
	records   map[string]*attendance.TimeRecord
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string]*attendance.TimeRecord{}}
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(time.DateOnly)
}

func (m *memRepo) WithTx(*sql.Tx) attendance.Repository { return m }

func (m *memRepo) Create(_ context.Context, r *attendance.TimeRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	k := key(r.EmployeeID.String(), r.Date)
	if _, ok := m.records[k]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: attendance.UniqueDayConstraint}
	}
	cp := *r
	m.records[k] = &cp
	return nil
}

func (m *memRepo) FindByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.TimeRecord, error) {
	r, ok := m.records[key(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) find(id string) *attendance.TimeRecord {
	for _, r := range m.records {
		if r.ID.String() == id {
			return r
		}
	}
	return nil
}

func (m *memRepo) MarkStarted(_ context.Context, id, status string, at time.Time) error {
	r := m.find(id)
	if r == nil || r.StartTime != nil {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	r.StartTime = &at
	return nil
}

func (m *memRepo) MarkEnded(_ context.Context, id string, at time.Time) error {
	r := m.find(id)
	if r == nil || r.StartTime == nil || r.EndTime != nil {
		return gorm.ErrRecordNotFound
	}
	r.EndTime = &at
	return nil
}

func (m *memRepo) ListByEmployeeAndRange(context.Context, string, time.Time, time.Time) ([]attendance.TimeRecord, error) {
	return nil, nil
}

type attendanceDeps struct {
	sqlMock      sqlmock.Sqlmock
	repo         *memRepo
	employeeRepo *employeeMock.MockRepository
	reportRepo   *reportMock.MockRepository
	outboxRepo   *kafkaMock.MockOutboxRepository
	service      attendance.Service
	now          *time.Time
	emp          *employee.Employee
}

func setupAttendance(t *testing.T) *attendanceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	d := &attendanceDeps{
		sqlMock:      sqlMock,
		repo:         newMemRepo(),
		employeeRepo: employeeMock.NewMockRepository(ctrl),
		reportRepo:   reportMock.NewMockRepository(ctrl),
		outboxRepo:   kafkaMock.NewMockOutboxRepository(ctrl),
		now:          &now,
		emp: &employee.Employee{
			ID:         uuid.New(),
			CompanyID:  uuid.New(),
			TelegramID: 1001,
			Name:       "Ann",
			IsActive:   true,
			Company:    &company.Company{Timezone: "UTC"},
		},
	}
	d.service = attendance.NewService(db, d.repo, d.employeeRepo, d.reportRepo, d.outboxRepo,
		clock.Func(func() time.Time { return *d.now }))
	return d
}

func (d *attendanceDeps) expectEmployee() {
	d.employeeRepo.EXPECT().FindActiveByTelegramID(gomock.Any(), d.emp.TelegramID).Return(d.emp, nil)
}

func (d *attendanceDeps) expectOutbox(eventType string) {
	d.outboxRepo.EXPECT().WithTx(gomock.Any()).Return(d.outboxRepo)
	d.outboxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.Event) error {
		if ev.EventType != eventType {
			return errors.New("unexpected event " + ev.EventType)
		}
		return nil
	})
}

func TestService_StartDay_Idempotent(t *testing.T) {
	d := setupAttendance(t)
	ctx := context.Background()
	req := attendance.StartDayRequest{TelegramID: d.emp.TelegramID}

	d.expectEmployee()
	d.sqlMock.ExpectBegin()
	d.expectOutbox(events.WorkdayStartedEvent)
	d.sqlMock.ExpectCommit()

	resp, err := d.service.StartDay(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusWork, resp.Record.Status)
	assert.Equal(t, "Great! Start of work recorded at 09:00", resp.Message)

	d.expectEmployee()
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectRollback()

	_, err = d.service.StartDay(ctx, req)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyStarted)
	assert.Len(t, d.repo.records, 1)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestService_StartDay_RaceMapsToAlreadyStarted(t *testing.T) {
	d := setupAttendance(t)
	d.repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: attendance.UniqueDayConstraint}

	d.expectEmployee()
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectRollback()

	_, err := d.service.StartDay(context.Background(), attendance.StartDayRequest{TelegramID: d.emp.TelegramID})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyStarted)
}

func TestService_StartDay_ExistingRowWithoutStart(t *testing.T) {
	d := setupAttendance(t)
	today := clock.DateIn(*d.now, time.UTC)
	d.repo.records[key(d.emp.ID.String(), today)] = &attendance.TimeRecord{
		ID: uuid.New(), EmployeeID: d.emp.ID, Date: today, Status: attendance.StatusWork,
	}

	d.expectEmployee()
	d.sqlMock.ExpectBegin()
	d.expectOutbox(events.WorkdayStartedEvent)
	d.sqlMock.ExpectCommit()

	resp, err := d.service.StartDay(context.Background(), attendance.StartDayRequest{
		TelegramID: d.emp.TelegramID,
		Status:     attendance.StatusLate,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Record.Status)

	stored := d.repo.records[key(d.emp.ID.String(), today)]
	assert.Equal(t, attendance.StatusLate, stored.Status)
	assert.NotNil(t, stored.StartTime)
}

func TestService_StartDay_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown or inactive employee", func(t *testing.T) {
		d := setupAttendance(t)
		d.employeeRepo.EXPECT().FindActiveByTelegramID(ctx, int64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.StartDay(ctx, attendance.StartDayRequest{TelegramID: 5})
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})

	t.Run("bad status", func(t *testing.T) {
		d := setupAttendance(t)
		_, err := d.service.StartDay(ctx, attendance.StartDayRequest{TelegramID: 5, Status: "party"})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	})
}

func TestService_StartDay_UsesCompanyCalendarDate(t *testing.T) {
	d := setupAttendance(t)
	d.emp.Company = &company.Company{Timezone: "Asia/Tokyo"}
	*d.now = time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC) // 05:00 on the 5th in Tokyo

	d.expectEmployee()
	d.sqlMock.ExpectBegin()
	d.expectOutbox(events.WorkdayStartedEvent)
	d.sqlMock.ExpectCommit()

	resp, err := d.service.StartDay(context.Background(), attendance.StartDayRequest{TelegramID: d.emp.TelegramID})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", resp.Record.Date)
}

func TestService_EndDay(t *testing.T) {
	ctx := context.Background()

	t.Run("no record today is not started and writes no report", func(t *testing.T) {
		d := setupAttendance(t)
		d.expectEmployee()
		d.sqlMock.ExpectBegin()
		d.reportRepo.EXPECT().WithTx(gomock.Any()).Return(d.reportRepo)
		d.reportRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		d.sqlMock.ExpectRollback()

		_, err := d.service.EndDay(ctx, attendance.EndDayRequest{TelegramID: d.emp.TelegramID, Content: "did things"})
		assert.ErrorIs(t, err, attendanceerrors.ErrNotStarted)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("report too short", func(t *testing.T) {
		d := setupAttendance(t)
		_, err := d.service.EndDay(ctx, attendance.EndDayRequest{TelegramID: d.emp.TelegramID, Content: "  ok  "})
		assert.ErrorIs(t, err, attendanceerrors.ErrReportTooShort)
	})

	t.Run("start then end reports duration", func(t *testing.T) {
		d := setupAttendance(t)

		d.expectEmployee()
		d.sqlMock.ExpectBegin()
		d.expectOutbox(events.WorkdayStartedEvent)
		d.sqlMock.ExpectCommit()
		_, err := d.service.StartDay(ctx, attendance.StartDayRequest{TelegramID: d.emp.TelegramID})
		require.NoError(t, err)

		*d.now = d.now.Add(8*time.Hour + 30*time.Minute + 42*time.Second)

		d.expectEmployee()
		d.sqlMock.ExpectBegin()
		d.reportRepo.EXPECT().WithTx(gomock.Any()).Return(d.reportRepo)
		d.reportRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *report.Report) error {
			assert.Equal(t, "Closed three tickets", r.Content)
			return nil
		})
		d.expectOutbox(events.WorkdayEndedEvent)
		d.sqlMock.ExpectCommit()

		resp, err := d.service.EndDay(ctx, attendance.EndDayRequest{TelegramID: d.emp.TelegramID, Content: "  Closed three tickets "})
		require.NoError(t, err)
		assert.Equal(t, "8h 30m", resp.WorkDuration)
		assert.Equal(t, "Report accepted! Worked today: 8h 30m", resp.Message)

		d.expectEmployee()
		d.sqlMock.ExpectBegin()
		d.reportRepo.EXPECT().WithTx(gomock.Any()).Return(d.reportRepo)
		d.sqlMock.ExpectRollback()

		_, err = d.service.EndDay(ctx, attendance.EndDayRequest{TelegramID: d.emp.TelegramID, Content: "again please"})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyEnded)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("report failure rolls back the end time", func(t *testing.T) {
		d := setupAttendance(t)
		today := clock.DateIn(*d.now, time.UTC)
		start := d.now.Add(-time.Hour)
		d.repo.records[key(d.emp.ID.String(), today)] = &attendance.TimeRecord{
			ID: uuid.New(), EmployeeID: d.emp.ID, Date: today, StartTime: &start, Status: attendance.StatusWork,
		}

		d.expectEmployee()
		d.sqlMock.ExpectBegin()
		d.reportRepo.EXPECT().WithTx(gomock.Any()).Return(d.reportRepo)
		d.reportRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		d.sqlMock.ExpectRollback()

		_, err := d.service.EndDay(ctx, attendance.EndDayRequest{TelegramID: d.emp.TelegramID, Content: "wrote code"})
		assert.EqualError(t, err, "db down")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestService_GetStatus(t *testing.T) {
	d := setupAttendance(t)
	ctx := context.Background()
	today := clock.DateIn(*d.now, time.UTC)
	start := d.now.Add(-90 * time.Minute)
	d.repo.records[key(d.emp.ID.String(), today)] = &attendance.TimeRecord{
		ID: uuid.New(), EmployeeID: d.emp.ID, Date: today, StartTime: &start, Status: attendance.StatusWork,
	}

	d.expectEmployee()
	d.reportRepo.EXPECT().FindByEmployeeAndDate(ctx, d.emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)

	resp, err := d.service.GetStatus(ctx, d.emp.TelegramID)
	require.NoError(t, err)
	assert.True(t, resp.Today.HasStarted)
	assert.False(t, resp.Today.HasReport)
	assert.Equal(t, attendance.DisplayWorking, resp.Today.Status)
	require.NotNil(t, resp.Today.WorkDuration)
	assert.Equal(t, "1h 30m", *resp.Today.WorkDuration)
}
