package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-outtime/internal/company"
	companyMock "go-outtime/internal/company/mock"
	"go-outtime/internal/report"
	reporterrors "go-outtime/internal/report/errors"
	reportMock "go-outtime/internal/report/mock"
	"go-outtime/internal/shared/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type reportDeps struct {
	repo        *reportMock.MockRepository
	companyRepo *companyMock.MockRepository
	service     report.Service
	companyID   uuid.UUID
}

func setupReport(t *testing.T) *reportDeps {
	ctrl := gomock.NewController(t)
	d := &reportDeps{
		repo:        reportMock.NewMockRepository(ctrl),
		companyRepo: companyMock.NewMockRepository(ctrl),
		companyID:   uuid.New(),
	}
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	d.service = report.NewService(d.repo, d.companyRepo, clock.Fixed(now))
	d.companyRepo.EXPECT().GetByID(gomock.Any(), d.companyID).
		Return(&company.Company{ID: d.companyID, Timezone: "UTC"}, nil).AnyTimes()
	return d
}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func row(empID uuid.UUID, name, date, content string) report.WithEmployee {
	return report.WithEmployee{
		Report:       report.Report{ID: uuid.New(), EmployeeID: empID, Date: day(date), Content: content},
		EmployeeName: name,
	}
}

func TestReportService_List_DefaultRangeAndPaging(t *testing.T) {
	d := setupReport(t)
	ctx := context.Background()

	d.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f report.Filter) ([]report.WithEmployee, int64, error) {
		assert.Equal(t, day("2024-03-01"), f.From)
		assert.Equal(t, day("2024-03-31"), f.To)
		assert.Equal(t, 20, f.Limit)
		assert.Equal(t, 20, f.Offset)
		return []report.WithEmployee{row(uuid.New(), "Ann", "2024-03-30", "fixed the build")}, 21, nil
	})

	rows, total, err := d.service.List(ctx, d.companyID.String(), report.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.Equal(t, 3, rows[0].WordCount)
}

func TestReportService_List_BadRange(t *testing.T) {
	d := setupReport(t)

	_, _, err := d.service.List(context.Background(), d.companyID.String(), report.ListQuery{
		RangeQuery: report.RangeQuery{StartDate: "2024-03-10", EndDate: "2024-03-01"},
	})
	assert.ErrorIs(t, err, reporterrors.ErrInvalidDateRange)
}

func TestReportService_GetByID(t *testing.T) {
	d := setupReport(t)
	ctx := context.Background()
	id := uuid.NewString()

	d.repo.EXPECT().FindByIDAndCompany(ctx, d.companyID.String(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := d.service.GetByID(ctx, d.companyID.String(), id)
	assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)

	_, err = d.service.GetByID(ctx, d.companyID.String(), "42")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidReportID)
}

func TestSummarize(t *testing.T) {
	ann, bob := uuid.New(), uuid.New()
	rows := []report.WithEmployee{
		row(ann, "Ann", "2024-03-02", "one two three"),
		row(ann, "Ann", "2024-03-01", "one two three four five"),
		row(bob, "Bob", "2024-03-01", "hello"),
	}

	got := report.Summarize(rows, day("2024-03-01"), day("2024-03-31"))

	assert.Equal(t, 3, got.Summary.TotalReports)
	assert.Equal(t, 2, got.Summary.UniqueEmployees)
	assert.Equal(t, 1.5, got.Summary.AvgReportsPerEmployee)
	require.Len(t, got.EmployeeStats, 2)
	assert.Equal(t, "Ann", got.EmployeeStats[0].EmployeeName)
	assert.Equal(t, 4, got.EmployeeStats[0].AvgWords)
	assert.Equal(t, []report.DailyReportCount{
		{Date: "2024-03-01", ReportsCount: 2},
		{Date: "2024-03-02", ReportsCount: 1},
	}, got.DailyStats)
}

func TestReportService_Export(t *testing.T) {
	d := setupReport(t)
	ctx := context.Background()

	d.repo.EXPECT().List(ctx, gomock.Any()).
		Return([]report.WithEmployee{row(uuid.New(), "Ann", "2024-03-05", "deployed release")}, int64(1), nil)

	file, err := d.service.Export(ctx, d.companyID.String(), report.RangeQuery{StartDate: "2024-03-01", EndDate: "2024-03-07"})
	require.NoError(t, err)
	assert.Equal(t, "reports_2024-03-01_2024-03-07.xlsx", file.FileName)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "Employee", "Report", "Created at"}, rows[0])
	assert.Equal(t, "Ann", rows[1][1])
	assert.Equal(t, "deployed release", rows[1][2])
}
