package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-outtime/internal/company"
	reporterrors "go-outtime/internal/report/errors"
	"go-outtime/internal/shared/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultRangeDays = 30
	defaultPageSize  = 20
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, companyID string, q ListQuery) ([]ReportResponse, int64, error)
	GetByID(ctx context.Context, companyID, id string) (ReportResponse, error)
	Stats(ctx context.Context, companyID string, q RangeQuery) (StatsResponse, error)
	Export(ctx context.Context, companyID string, q RangeQuery) (ExportFile, error)
}

type service struct {
	repo        Repository
	companyRepo company.Repository
	clock       clock.Clock
	logger      *zap.Logger
}

func NewService(repo Repository, companyRepo company.Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{repo: repo, companyRepo: companyRepo, clock: clk, logger: l}
}

func (s *service) location(ctx context.Context, companyID string) *time.Location {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return time.UTC
	}
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("company lookup failed, using UTC", zap.String("company_id", companyID), zap.Error(err))
		return time.UTC
	}
	return c.Location()
}

// resolveRange defaults to the last 30 days ending today in loc.
func (s *service) resolveRange(q RangeQuery, loc *time.Location) (time.Time, time.Time, error) {
	to := clock.DateIn(s.clock.Now(), loc)
	from := to.AddDate(0, 0, -defaultRangeDays)

	if q.StartDate != "" {
		t, err := time.Parse(time.DateOnly, q.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
		}
		from = t
	}
	if q.EndDate != "" {
		t, err := time.Parse(time.DateOnly, q.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
		}
		to = t
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func (s *service) List(ctx context.Context, companyID string, q ListQuery) ([]ReportResponse, int64, error) {
	from, to, err := s.resolveRange(q.RangeQuery, s.location(ctx, companyID))
	if err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	rows, total, err := s.repo.List(ctx, Filter{
		CompanyID:  companyID,
		From:       from,
		To:         to,
		EmployeeID: q.EmployeeID,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		s.logger.Error("list reports failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, 0, err
	}

	out := make([]ReportResponse, len(rows))
	for i, r := range rows {
		out[i] = mapToResponse(r)
	}
	return out, total, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, reporterrors.ErrReportNotFound
		}
		return ReportResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Stats(ctx context.Context, companyID string, q RangeQuery) (StatsResponse, error) {
	from, to, err := s.resolveRange(q, s.location(ctx, companyID))
	if err != nil {
		return StatsResponse{}, err
	}

	rows, _, err := s.repo.List(ctx, Filter{CompanyID: companyID, From: from, To: to, EmployeeID: q.EmployeeID})
	if err != nil {
		return StatsResponse{}, err
	}

	return Summarize(rows, from, to), nil
}

// Summarize groups reports per employee and per day. Employees and days are
// returned in a stable order.
func Summarize(rows []WithEmployee, from, to time.Time) StatsResponse {
	perEmployee := map[string]*EmployeeReportStats{}
	perDay := map[string]int{}

	for _, r := range rows {
		id := r.EmployeeID.String()
		st, ok := perEmployee[id]
		if !ok {
			st = &EmployeeReportStats{EmployeeID: id, EmployeeName: r.EmployeeName}
			perEmployee[id] = st
		}
		st.TotalReports++
		st.TotalWords += WordCount(r.Content)
		perDay[r.Date.Format(time.DateOnly)]++
	}

	employees := make([]EmployeeReportStats, 0, len(perEmployee))
	for _, st := range perEmployee {
		st.AvgWords = (st.TotalWords + st.TotalReports/2) / st.TotalReports
		employees = append(employees, *st)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].EmployeeName == employees[j].EmployeeName {
			return employees[i].EmployeeID < employees[j].EmployeeID
		}
		return employees[i].EmployeeName < employees[j].EmployeeName
	})

	daily := make([]DailyReportCount, 0, len(perDay))
	for d, n := range perDay {
		daily = append(daily, DailyReportCount{Date: d, ReportsCount: n})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	unique := len(perEmployee)
	divisor := unique
	if divisor == 0 {
		divisor = 1
	}

	return StatsResponse{
		Summary: StatsSummary{
			TotalReports:          len(rows),
			UniqueEmployees:       unique,
			AvgReportsPerEmployee: float64(len(rows)) / float64(divisor),
			DateRange:             DateRange{Start: from.Format(time.DateOnly), End: to.Format(time.DateOnly)},
		},
		EmployeeStats: employees,
		DailyStats:    daily,
	}
}

func (s *service) Export(ctx context.Context, companyID string, q RangeQuery) (ExportFile, error) {
	loc := s.location(ctx, companyID)
	from, to, err := s.resolveRange(q, loc)
	if err != nil {
		return ExportFile{}, err
	}

	rows, _, err := s.repo.List(ctx, Filter{CompanyID: companyID, From: from, To: to, EmployeeID: q.EmployeeID})
	if err != nil {
		return ExportFile{}, err
	}

	content, err := BuildWorkbook(rows, loc)
	if err != nil {
		s.logger.Error("build report workbook failed", zap.String("company_id", companyID), zap.Error(err))
		return ExportFile{}, err
	}

	s.logger.Info("reports exported", zap.String("company_id", companyID), zap.Int("rows", len(rows)))
	return ExportFile{
		FileName: fmt.Sprintf("reports_%s_%s.xlsx", from.Format(time.DateOnly), to.Format(time.DateOnly)),
		Content:  content,
	}, nil
}

func mapToResponse(r WithEmployee) ReportResponse {
	return ReportResponse{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		EmployeeName: r.EmployeeName,
		Content:      r.Content,
		Date:         r.Date.Format(time.DateOnly),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		WordCount:    WordCount(r.Content),
	}
}
