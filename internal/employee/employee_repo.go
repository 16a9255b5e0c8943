package employee

import (
	"context"
	"database/sql"

	"go-outtime/internal/shared/connection"
	"go-outtime/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindActiveByTelegramID(ctx context.Context, telegramID int64) (*Employee, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	ListByCompanyWithStats(ctx context.Context, companyID string, includeInactive bool) ([]WithStats, error)
	Update(ctx context.Context, e *Employee) error
	Deactivate(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Omit("Company").Create(e).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Company").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindActiveByTelegramID never returns deactivated employees.
func (r *repository) FindActiveByTelegramID(ctx context.Context, telegramID int64) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).
		Preload("Company").
		Where("telegram_id = ? AND is_active = ?", telegramID, true).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Company").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Preload("Company").
		Where("is_active = ?", true).
		Order("company_id, name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByCompanyWithStats(ctx context.Context, companyID string, includeInactive bool) ([]WithStats, error) {
	var rows []WithStats
	q := r.conn(ctx).
		Table("employees e").
		Select(`e.*,
			COUNT(DISTINCT CASE WHEN tr.start_time IS NOT NULL THEN tr.date END) AS total_days_worked,
			COUNT(DISTINCT rp.id) AS total_reports,
			COALESCE(AVG(EXTRACT(EPOCH FROM (tr.end_time - tr.start_time)) / 3600)
				FILTER (WHERE tr.end_time IS NOT NULL AND tr.start_time IS NOT NULL), 0) AS avg_hours_per_day`).
		Joins("LEFT JOIN time_records tr ON tr.employee_id = e.id").
		Joins("LEFT JOIN reports rp ON rp.employee_id = e.id AND rp.date = tr.date").
		Where("e.company_id = ?", companyID)
	if !includeInactive {
		q = q.Where("e.is_active = ?", true)
	}
	err := q.Group("e.id").Order("e.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn(ctx).
		Model(&Employee{}).
		Where("id = ? AND company_id = ?", e.ID, e.CompanyID).
		Updates(map[string]any{
			"name":       e.Name,
			"is_active":  e.IsActive,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

// Deactivate is a soft delete; history stays attached to the row.
func (r *repository) Deactivate(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
