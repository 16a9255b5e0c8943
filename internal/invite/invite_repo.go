package invite

import (
	"context"
	"database/sql"
	"time"

	"go-outtime/internal/shared/connection"
	"go-outtime/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=invite_repo.go -destination=mock/invite_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inv *Invite) error
	FindRedeemable(ctx context.Context, token string, now time.Time) (*Invite, error)
	LockRedeemable(ctx context.Context, token string, now time.Time) (*Invite, error)
	MarkUsed(ctx context.Context, id string, usedAt time.Time) error
	ListActiveByCompany(ctx context.Context, companyID string, now time.Time) ([]Invite, error)
	DeleteUnused(ctx context.Context, companyID, token string) error
	DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error)
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

func redeemable(token string, now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("token = ? AND is_used = ? AND expires_at > ?", token, false, now)
	}
}

func (r *repository) Create(ctx context.Context, inv *Invite) error {
	return r.conn(ctx).Omit("Company").Create(inv).Error
}

func (r *repository) FindRedeemable(ctx context.Context, token string, now time.Time) (*Invite, error) {
	var inv Invite
	err := r.conn(ctx).
		Scopes(redeemable(token, now)).
		Preload("Company").
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// LockRedeemable takes a row lock so two redemptions of one token serialise.
func (r *repository) LockRedeemable(ctx context.Context, token string, now time.Time) (*Invite, error) {
	var inv Invite
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(redeemable(token, now)).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) MarkUsed(ctx context.Context, id string, usedAt time.Time) error {
	res := r.conn(ctx).
		Model(&Invite{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]any{"is_used": true, "used_at": usedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListActiveByCompany(ctx context.Context, companyID string, now time.Time) ([]Invite, error) {
	var rows []Invite
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_used = ? AND expires_at > ?", false, now).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteUnused(ctx context.Context, companyID, token string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("token = ? AND is_used = ?", token, false).
		Delete(&Invite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteExpiredUnused never touches used invites, however old.
func (r *repository) DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error) {
	res := r.conn(ctx).
		Where("is_used = ? AND expires_at < ?", false, now).
		Delete(&Invite{})
	return res.RowsAffected, res.Error
}
