package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-outtime/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *TimeRecord) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)
	MarkStarted(ctx context.Context, id string, status string, at time.Time) error
	MarkEnded(ctx context.Context, id string, at time.Time) error
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeRecord, error)
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

func (r *repository) Create(ctx context.Context, rec *TimeRecord) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error) {
	var rec TimeRecord
	err := r.conn(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format(time.DateOnly)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkStarted fills the start of a record that exists without one. It
// matches nothing once a start is recorded.
func (r *repository) MarkStarted(ctx context.Context, id string, status string, at time.Time) error {
	res := r.conn(ctx).
		Model(&TimeRecord{}).
		Where("id = ? AND start_time IS NULL", id).
		Updates(map[string]any{
			"status":     status,
			"start_time": at,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkEnded only closes an open, started record.
func (r *repository) MarkEnded(ctx context.Context, id string, at time.Time) error {
	res := r.conn(ctx).
		Model(&TimeRecord{}).
		Where("id = ? AND start_time IS NOT NULL AND end_time IS NULL", id).
		Updates(map[string]any{
			"end_time":   at,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.conn(ctx).
		Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
