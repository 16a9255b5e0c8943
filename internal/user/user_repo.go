package user

import (
	"context"

	"go-outtime/internal/auth"
	"go-outtime/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *auth.User) error
	FindByID(ctx context.Context, companyID, id string) (*auth.User, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]auth.User, error)
	UpdateRole(ctx context.Context, companyID, id, role string) error
	UpdatePassword(ctx context.Context, companyID, id, hash string) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *auth.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*auth.User, error) {
	var u auth.User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]auth.User, error) {
	var users []auth.User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) update(ctx context.Context, companyID, id string, fields map[string]any) error {
	fields["updated_at"] = gorm.Expr("NOW()")
	res := r.db.WithContext(ctx).
		Model(&auth.User{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, companyID, id, role string) error {
	return r.update(ctx, companyID, id, map[string]any{"role": role})
}

func (r *repository) UpdatePassword(ctx context.Context, companyID, id, hash string) error {
	return r.update(ctx, companyID, id, map[string]any{"password_hash": hash})
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&auth.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
