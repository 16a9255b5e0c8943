package report

import (
	"context"
	"database/sql"
	"time"

	"go-outtime/internal/shared/connection"

	"gorm.io/gorm"
)

const UniqueDateConstraint = "uq_reports_employee_date"

type Filter struct {
	CompanyID  string
	From       time.Time
	To         time.Time
	EmployeeID string
	Limit      int
	Offset     int
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Report) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Report, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*WithEmployee, error)
	List(ctx context.Context, f Filter) ([]WithEmployee, int64, error)
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Report, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.conn(ctx).Create(rep).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Report, error) {
	var rep Report
	err := r.conn(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format(time.DateOnly)).
		First(&rep).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

const withEmployeeColumns = "r.*, e.name AS employee_name, e.telegram_id"

func (r *repository) joined(ctx context.Context, companyID string) *gorm.DB {
	return r.conn(ctx).
		Table("reports r").
		Joins("JOIN employees e ON e.id = r.employee_id").
		Where("e.company_id = ?", companyID)
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*WithEmployee, error) {
	var rows []WithEmployee
	err := r.joined(ctx, companyID).
		Select(withEmployeeColumns).
		Where("r.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// List returns one page of reports and the total matching count. A zero
// Limit returns every matching row.
func (r *repository) List(ctx context.Context, f Filter) ([]WithEmployee, int64, error) {
	q := r.joined(ctx, f.CompanyID).
		Where("r.date BETWEEN ? AND ?", f.From.Format(time.DateOnly), f.To.Format(time.DateOnly))
	if f.EmployeeID != "" {
		q = q.Where("r.employee_id = ?", f.EmployeeID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Select(withEmployeeColumns).Order("r.date DESC, e.name ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []WithEmployee
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Report, error) {
	var rows []Report
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
