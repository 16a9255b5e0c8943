package dashboard

import (
	"context"
	"time"

	"go-outtime/internal/attendance"
	"go-outtime/internal/employee"
	"go-outtime/internal/report"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStamp marks that an employee filed a report on a date.
type ReportStamp struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id"`
	Date       time.Time `gorm:"column:date"`
}

type InviteCounts struct {
	Total int64 `gorm:"column:total"`
	Used  int64 `gorm:"column:used"`
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	RecordsInRange(ctx context.Context, companyID string, from, to time.Time) ([]attendance.TimeRecord, error)
	ReportsInRange(ctx context.Context, companyID string, from, to time.Time) ([]ReportStamp, error)
	RecentReports(ctx context.Context, companyID string, limit int) ([]report.WithEmployee, error)
	EmployeesJoinedSince(ctx context.Context, companyID string, since time.Time) ([]employee.Employee, error)
	CountInvites(ctx context.Context, companyID string) (InviteCounts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Every query below only sees active employees.
func (r *repository) activeJoin(ctx context.Context, table, companyID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(table).
		Joins("JOIN employees e ON e.id = x.employee_id").
		Where("e.company_id = ? AND e.is_active = ?", companyID, true)
}

func (r *repository) RecordsInRange(ctx context.Context, companyID string, from, to time.Time) ([]attendance.TimeRecord, error) {
	var rows []attendance.TimeRecord
	err := r.activeJoin(ctx, "time_records x", companyID).
		Select("x.*").
		Where("x.date BETWEEN ? AND ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Order("x.date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ReportsInRange(ctx context.Context, companyID string, from, to time.Time) ([]ReportStamp, error) {
	var rows []ReportStamp
	err := r.activeJoin(ctx, "reports x", companyID).
		Select("x.employee_id, x.date").
		Where("x.date BETWEEN ? AND ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentReports(ctx context.Context, companyID string, limit int) ([]report.WithEmployee, error) {
	var rows []report.WithEmployee
	err := r.activeJoin(ctx, "reports x", companyID).
		Select("x.*, e.name AS employee_name, e.telegram_id").
		Order("x.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeesJoinedSince(ctx context.Context, companyID string, since time.Time) ([]employee.Employee, error) {
	var rows []employee.Employee
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ? AND created_at >= ?", companyID, true, since).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountInvites(ctx context.Context, companyID string) (InviteCounts, error) {
	var c InviteCounts
	err := r.db.WithContext(ctx).
		Table("invites").
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_used) AS used").
		Where("company_id = ?", companyID).
		Scan(&c).Error
	return c, err
}
