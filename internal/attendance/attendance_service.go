package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	attendanceerrors "go-outtime/internal/attendance/errors"
	"go-outtime/internal/employee"
	"go-outtime/internal/events"
	"go-outtime/internal/messaging/kafka"
	"go-outtime/internal/report"
	"go-outtime/internal/shared/clock"
	"go-outtime/internal/shared/connection"
	"go-outtime/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	StartDay(ctx context.Context, req StartDayRequest) (StartDayResponse, error)
	EndDay(ctx context.Context, req EndDayRequest) (EndDayResponse, error)
	GetStatus(ctx context.Context, telegramID int64) (StatusResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	reportRepo   report.Repository
	outboxRepo   kafka.OutboxRepository
	clock        clock.Clock
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	reportRepo report.Repository,
	outboxRepo kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		reportRepo:   reportRepo,
		outboxRepo:   outboxRepo,
		clock:        clk,
		logger:       l,
	}
}

func (s *service) activeEmployee(ctx context.Context, telegramID int64) (*employee.Employee, error) {
	if telegramID == 0 {
		return nil, attendanceerrors.ErrInvalidTelegramID
	}
	emp, err := s.employeeRepo.FindActiveByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func (s *service) StartDay(ctx context.Context, req StartDayRequest) (StartDayResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusWork
	}
	if !ValidStatus(status) {
		return StartDayResponse{}, attendanceerrors.ErrInvalidStatus
	}

	emp, err := s.activeEmployee(ctx, req.TelegramID)
	if err != nil {
		return StartDayResponse{}, err
	}

	now := s.clock.Now()
	loc := emp.Location()
	today := clock.DateIn(now, loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StartDayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return StartDayResponse{}, err
	}

	var rec *TimeRecord
	switch {
	case existing != nil && existing.Started():
		return StartDayResponse{}, attendanceerrors.ErrAlreadyStarted

	case existing != nil:
		// a row without a start takes the new label and the start in place
		if err := qtx.MarkStarted(ctx, existing.ID.String(), status, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return StartDayResponse{}, attendanceerrors.ErrAlreadyStarted
			}
			return StartDayResponse{}, err
		}
		existing.Status = status
		existing.StartTime = &now
		rec = existing

	default:
		rec = &TimeRecord{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			Date:       today,
			StartTime:  &now,
			Status:     status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := qtx.Create(ctx, rec); err != nil {
			if connection.IsUniqueViolation(err, UniqueDayConstraint) {
				return StartDayResponse{}, attendanceerrors.ErrAlreadyStarted
			}
			s.logger.Error("create time record failed",
				zap.String("request_id", rid),
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return StartDayResponse{}, err
		}
	}

	event, err := kafka.NewEvent(rid, "employee", emp.ID.String(),
		events.WorkdayStartedEvent, events.WorkdayTopic,
		events.WorkdayStarted{
			EventType:  events.WorkdayStartedEvent,
			EmployeeID: emp.ID.String(),
			CompanyID:  emp.CompanyID.String(),
			Date:       today.Format(time.DateOnly),
			Status:     status,
			StartedAt:  now.UTC(),
		})
	if err != nil {
		return StartDayResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, event); err != nil {
		return StartDayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return StartDayResponse{}, err
	}

	s.logger.Info("day started",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("status", status),
	)

	return StartDayResponse{
		Message: startMessage(status, now.In(loc)),
		Record:  snapshot(rec, loc),
	}, nil
}

func (s *service) EndDay(ctx context.Context, req EndDayRequest) (EndDayResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	content := strings.TrimSpace(req.Content)
	if len([]rune(content)) < report.MinContentLength {
		return EndDayResponse{}, attendanceerrors.ErrReportTooShort
	}

	emp, err := s.activeEmployee(ctx, req.TelegramID)
	if err != nil {
		return EndDayResponse{}, err
	}

	now := s.clock.Now()
	today := clock.DateIn(now, emp.Location())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EndDayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qReport := s.reportRepo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, emp.ID.String(), today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EndDayResponse{}, attendanceerrors.ErrNotStarted
		}
		return EndDayResponse{}, err
	}
	if rec.Ended() {
		return EndDayResponse{}, attendanceerrors.ErrAlreadyEnded
	}
	if !rec.Started() {
		return EndDayResponse{}, attendanceerrors.ErrNotStarted
	}

	if err := qtx.MarkEnded(ctx, rec.ID.String(), now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EndDayResponse{}, attendanceerrors.ErrAlreadyEnded
		}
		return EndDayResponse{}, err
	}

	rep := &report.Report{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Date:       today,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := qReport.Create(ctx, rep); err != nil {
		if connection.IsUniqueViolation(err, report.UniqueDateConstraint) {
			return EndDayResponse{}, attendanceerrors.ErrReportAlreadyExists
		}
		s.logger.Error("create report failed",
			zap.String("request_id", rid),
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
		return EndDayResponse{}, err
	}

	worked := WorkedDuration(*rec.StartTime, now)

	event, err := kafka.NewEvent(rid, "employee", emp.ID.String(),
		events.WorkdayEndedEvent, events.WorkdayTopic,
		events.WorkdayEnded{
			EventType:     events.WorkdayEndedEvent,
			EmployeeID:    emp.ID.String(),
			CompanyID:     emp.CompanyID.String(),
			Date:          today.Format(time.DateOnly),
			StartedAt:     rec.StartTime.UTC(),
			EndedAt:       now.UTC(),
			WorkedMinutes: worked.TotalMinutes(),
			ReportID:      rep.ID.String(),
		})
	if err != nil {
		return EndDayResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, event); err != nil {
		return EndDayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EndDayResponse{}, err
	}

	s.logger.Info("day ended",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.Int64("worked_minutes", worked.TotalMinutes()),
	)

	return EndDayResponse{
		Message: fmt.Sprintf("Report accepted! Worked today: %s", worked),
		Report: ReportSnapshot{
			ID:      rep.ID.String(),
			Content: rep.Content,
			Date:    today.Format(time.DateOnly),
		},
		WorkDuration: worked.String(),
	}, nil
}

func (s *service) GetStatus(ctx context.Context, telegramID int64) (StatusResponse, error) {
	emp, err := s.activeEmployee(ctx, telegramID)
	if err != nil {
		return StatusResponse{}, err
	}

	now := s.clock.Now()
	loc := emp.Location()
	today := clock.DateIn(now, loc)

	rec, err := s.repo.FindByEmployeeAndDate(ctx, emp.ID.String(), today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResponse{}, err
		}
		rec = nil
	}

	hasReport := true
	if _, err := s.reportRepo.FindByEmployeeAndDate(ctx, emp.ID.String(), today); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResponse{}, err
		}
		hasReport = false
	}

	day := TodayStatus{
		HasStarted: rec.Started(),
		HasEnded:   rec.Ended(),
		HasReport:  hasReport,
		Status:     DisplayStatus(rec),
	}
	if rec != nil {
		snap := snapshot(rec, loc)
		day.StartTime = snap.StartTime
		day.EndTime = snap.EndTime
		if rec.Ended() || IsWorkingStatus(rec.Status) {
			if d, ok := Elapsed(rec, now); ok {
				v := d.String()
				day.WorkDuration = &v
			}
		}
	}

	return StatusResponse{
		Employee: EmployeeSummary{ID: emp.ID.String(), Name: emp.Name, IsActive: emp.IsActive},
		Today:    day,
	}, nil
}

func snapshot(r *TimeRecord, loc *time.Location) RecordSnapshot {
	snap := RecordSnapshot{Date: r.Date.Format(time.DateOnly), Status: r.Status}
	if r.StartTime != nil {
		v := r.StartTime.In(loc).Format(time.RFC3339)
		snap.StartTime = &v
	}
	if r.EndTime != nil {
		v := r.EndTime.In(loc).Format(time.RFC3339)
		snap.EndTime = &v
	}
	return snap
}

func startMessage(status string, at time.Time) string {
	hm := at.Format("15:04")
	switch status {
	case StatusWork:
		return fmt.Sprintf("Great! Start of work recorded at %s", hm)
	case StatusLate:
		return fmt.Sprintf("Got it, late start recorded at %s", hm)
	case StatusSick:
		return "Sick day recorded. Get well soon!"
	case StatusVacation:
		return "Vacation recorded. Have a good rest!"
	default:
		return fmt.Sprintf("Start recorded at %s", hm)
	}
}
