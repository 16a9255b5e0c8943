package company

import (
	"context"
	"database/sql"

	"go-outtime/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindAll(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c *Company) error
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

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var c Company
	if err := r.conn(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var rows []Company
	err := r.conn(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.conn(ctx).
		Model(&Company{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":                      c.Name,
			"morning_notification_time": c.MorningNotificationTime,
			"evening_notification_time": c.EveningNotificationTime,
			"timezone":                  c.Timezone,
			"updated_at":                gorm.Expr("NOW()"),
		}).Error
}
