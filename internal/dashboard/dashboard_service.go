package dashboard

import (
	"context"
	"errors"
	"time"

	"go-outtime/internal/attendance"
	"go-outtime/internal/company"
	dashboarderrors "go-outtime/internal/dashboard/errors"
	"go-outtime/internal/employee"
	employeeerrors "go-outtime/internal/employee/errors"
	"go-outtime/internal/invite"
	"go-outtime/internal/report"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	overviewRecentReports = 5
	detailsRecentReports  = 10
	newEmployeeWindow     = 24 * time.Hour
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	CompanyStats(ctx context.Context, companyID, date string) (DayStats, error)
	Overview(ctx context.Context, companyID, date string) (OverviewResponse, error)
	Weekly(ctx context.Context, companyID, endDate string) (WeeklyResponse, error)
	QuickActions(ctx context.Context, companyID string) (QuickActionsResponse, error)
	Notifications(ctx context.Context, companyID string) ([]Notification, error)
	EmployeeDetails(ctx context.Context, companyID, employeeID string) (EmployeeDetailsResponse, error)
	SettingsStats(ctx context.Context, companyID string) (SettingsStatsResponse, error)
}

type service struct {
	repo           Repository
	companyRepo    company.Repository
	employeeRepo   employee.Repository
	inviteRepo     invite.Repository
	attendanceRepo attendance.Repository
	reportRepo     report.Repository
	clock          clock.Clock
	sf             *singleflight.Group
	logger         *zap.Logger
}

func NewService(
	repo Repository,
	companyRepo company.Repository,
	employeeRepo employee.Repository,
	inviteRepo invite.Repository,
	attendanceRepo attendance.Repository,
	reportRepo report.Repository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{
		repo:           repo,
		companyRepo:    companyRepo,
		employeeRepo:   employeeRepo,
		inviteRepo:     inviteRepo,
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
		clock:          clk,
		sf:             &singleflight.Group{},
		logger:         l,
	}
}

func (s *service) loadCompany(ctx context.Context, companyID string) (*company.Company, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.ErrInvalidInput
	}
	c, err := s.companyRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dashboarderrors.ErrCompanyNotFound
	}
	return c, err
}

// resolveDate parses YYYY-MM-DD or falls back to today in loc.
func (s *service) resolveDate(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return clock.DateIn(s.clock.Now(), loc), nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, dashboarderrors.ErrInvalidDate
	}
	return d, nil
}

// dayInput loads one company's employees with their records and reports in
// [from, to].
func (s *service) dayInput(ctx context.Context, c *company.Company, from, to, date time.Time) (DayInput, error) {
	companyID := c.ID.String()
	employees, err := s.employeeRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return DayInput{}, err
	}
	records, err := s.repo.RecordsInRange(ctx, companyID, from, to)
	if err != nil {
		return DayInput{}, err
	}
	reports, err := s.repo.ReportsInRange(ctx, companyID, from, to)
	if err != nil {
		return DayInput{}, err
	}
	return DayInput{
		Employees: employees,
		Records:   records,
		Reports:   reports,
		Date:      date,
		Morning:   c.MorningNotificationTime,
		Location:  c.Location(),
		Now:       s.clock.Now(),
	}, nil
}

// shared coalesces identical concurrent dashboard loads.
func shared[T any](s *service, key string, fn func() (T, error)) (T, error) {
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *service) CompanyStats(ctx context.Context, companyID, date string) (DayStats, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return DayStats{}, err
	}
	day, err := s.resolveDate(date, c.Location())
	if err != nil {
		return DayStats{}, err
	}

	return shared(s, "stats:"+companyID+":"+dateKey(day), func() (DayStats, error) {
		in, err := s.dayInput(ctx, c, day, day, day)
		if err != nil {
			s.logger.Error("load company stats failed", zap.String("company_id", companyID), zap.Error(err))
			return DayStats{}, err
		}
		return ComputeDayStats(in), nil
	})
}

func (s *service) Overview(ctx context.Context, companyID, date string) (OverviewResponse, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return OverviewResponse{}, err
	}
	day, err := s.resolveDate(date, c.Location())
	if err != nil {
		return OverviewResponse{}, err
	}

	return shared(s, "overview:"+companyID+":"+dateKey(day), func() (OverviewResponse, error) {
		in, err := s.dayInput(ctx, c, day, day, day)
		if err != nil {
			s.logger.Error("load overview failed", zap.String("company_id", companyID), zap.Error(err))
			return OverviewResponse{}, err
		}
		recent, err := s.repo.RecentReports(ctx, companyID, overviewRecentReports)
		if err != nil {
			return OverviewResponse{}, err
		}

		resp := OverviewResponse{
			Date:          dateKey(day),
			TodayStats:    ComputeDayStats(in),
			RecentReports: make([]RecentReport, len(recent)),
			Employees:     EmployeesToday(in),
		}
		for i, r := range recent {
			resp.RecentReports[i] = toRecentReport(r.Report, r.EmployeeName, true)
		}
		return resp, nil
	})
}

func (s *service) Weekly(ctx context.Context, companyID, endDate string) (WeeklyResponse, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return WeeklyResponse{}, err
	}
	end, err := s.resolveDate(endDate, c.Location())
	if err != nil {
		return WeeklyResponse{}, err
	}
	start := end.AddDate(0, 0, -(weekDays - 1))

	return shared(s, "weekly:"+companyID+":"+dateKey(end), func() (WeeklyResponse, error) {
		records, err := s.repo.RecordsInRange(ctx, companyID, start, end)
		if err != nil {
			s.logger.Error("load weekly records failed", zap.String("company_id", companyID), zap.Error(err))
			return WeeklyResponse{}, err
		}
		reports, err := s.repo.ReportsInRange(ctx, companyID, start, end)
		if err != nil {
			return WeeklyResponse{}, err
		}
		return ComputeWeekly(records, reports, end, s.clock.Now()), nil
	})
}

func (s *service) QuickActions(ctx context.Context, companyID string) (QuickActionsResponse, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return QuickActionsResponse{}, err
	}
	now := s.clock.Now()
	today := c.Today(now)

	in, err := s.dayInput(ctx, c, today, today, today)
	if err != nil {
		return QuickActionsResponse{}, err
	}
	invites, err := s.inviteRepo.ListActiveByCompany(ctx, companyID, now)
	if err != nil {
		return QuickActionsResponse{}, err
	}

	pending := PendingReports(in)
	stats := ComputeDayStats(in)
	return QuickActionsResponse{
		QuickActions: QuickActions{
			ActiveInvites:         len(invites),
			PendingReports:        len(pending),
			EmployeesWorkingToday: stats.WorkingToday,
			TotalActiveEmployees:  stats.TotalEmployees,
		},
		PendingReportEmployees: pending,
	}, nil
}

func (s *service) Notifications(ctx context.Context, companyID string) ([]Notification, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	today := c.Today(now)
	yesterday := today.AddDate(0, 0, -1)

	in, err := s.dayInput(ctx, c, yesterday, today, today)
	if err != nil {
		return nil, err
	}
	joiners, err := s.repo.EmployeesJoinedSince(ctx, companyID, now.Add(-newEmployeeWindow))
	if err != nil {
		return nil, err
	}

	return BuildNotifications(NotificationInput{
		Employees:  in.Employees,
		Records:    in.Records,
		Reports:    in.Reports,
		NewJoiners: joiners,
		Today:      today,
		Morning:    c.MorningNotificationTime,
		Location:   in.Location,
		Now:        now,
	}), nil
}

func (s *service) EmployeeDetails(ctx context.Context, companyID, employeeID string) (EmployeeDetailsResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeDetailsResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeDetailsResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeDetailsResponse{}, err
	}

	loc := e.Location()
	today := clock.DateIn(s.clock.Now(), loc)
	monday := weekStart(today)

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, monday, today)
	if err != nil {
		return EmployeeDetailsResponse{}, err
	}
	recent, err := s.reportRepo.ListRecentByEmployee(ctx, employeeID, detailsRecentReports)
	if err != nil {
		return EmployeeDetailsResponse{}, err
	}

	var stamps []ReportStamp
	var weekReports int
	for _, r := range recent {
		stamps = append(stamps, ReportStamp{EmployeeID: r.EmployeeID, Date: r.Date})
		if !r.Date.Before(monday) && !r.Date.After(today) {
			weekReports++
		}
	}

	snapshot := EmployeesToday(DayInput{
		Employees: []employee.Employee{*e},
		Records:   records,
		Reports:   stamps,
		Date:      today,
		Location:  loc,
	})

	resp := EmployeeDetailsResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		TelegramID:    e.TelegramID,
		IsActive:      e.IsActive,
		Today:         snapshot[0],
		WeekStats:     ComputeWeekStats(records, weekReports),
		RecentReports: make([]RecentReport, len(recent)),
	}
	for i, r := range recent {
		resp.RecentReports[i] = toRecentReport(r, e.Name, false)
	}
	return resp, nil
}

func (s *service) SettingsStats(ctx context.Context, companyID string) (SettingsStatsResponse, error) {
	c, err := s.loadCompany(ctx, companyID)
	if err != nil {
		return SettingsStatsResponse{}, err
	}
	today := c.Today(s.clock.Now())

	all, err := s.employeeRepo.ListByCompanyWithStats(ctx, companyID, true)
	if err != nil {
		return SettingsStatsResponse{}, err
	}
	invites, err := s.repo.CountInvites(ctx, companyID)
	if err != nil {
		return SettingsStatsResponse{}, err
	}
	in, err := s.dayInput(ctx, c, today, today, today)
	if err != nil {
		return SettingsStatsResponse{}, err
	}

	var resp SettingsStatsResponse
	resp.Company = CompanyTotals{
		TotalEmployees:   len(all),
		TotalInvitesSent: invites.Total,
		UsedInvites:      invites.Used,
	}
	for _, e := range all {
		if e.IsActive {
			resp.Company.ActiveEmployees++
		}
		resp.AllTime.TotalReports += e.TotalReports
	}
	if resp.Company.ActiveEmployees > 0 {
		resp.AllTime.AverageReportsPerEmployee = round1(float64(resp.AllTime.TotalReports) / float64(resp.Company.ActiveEmployees))
	}

	day := ComputeDayStats(in)
	resp.Today = TodayTotals{WorkingEmployees: day.WorkingToday, AverageWorkHours: day.AvgWorkHours}
	return resp, nil
}
