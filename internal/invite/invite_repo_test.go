package invite_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-outtime/internal/invite"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_DeleteExpiredUnused(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := invite.NewRepository(gdb)
	now := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "invites" WHERE is_used = $1 AND expires_at < $2`)).
		WithArgs(false, now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteExpiredUnused(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkUsed_AlreadyUsed(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := invite.NewRepository(gdb)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "invites" SET "is_used"=$1,"used_at"=$2 WHERE id = $3 AND is_used = $4`)).
		WithArgs(true, now, "inv-1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkUsed(context.Background(), "inv-1", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

const redeemableQuery = `SELECT * FROM "invites" WHERE token = $1 AND is_used = $2 AND expires_at > $3`

func TestRepository_FindRedeemable(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := invite.NewRepository(gdb)
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	id, companyID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(redeemableQuery)).
		WithArgs("tok", false, now, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token", "company_id", "employee_name", "is_used", "expires_at"}).
			AddRow(id, "tok", companyID, "Ann", false, now.Add(time.Hour)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "companies" WHERE "companies"."id" = $1`)).
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(companyID, "Acme"))

	inv, err := repo.FindRedeemable(context.Background(), "tok", now)
	require.NoError(t, err)
	assert.Equal(t, id, inv.ID)
	assert.Equal(t, "Acme", inv.CompanyName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Expiry is checked in SQL against the caller's clock, so an expired token
// is never found whatever its used flag.
func TestRepository_FindRedeemable_Expired(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := invite.NewRepository(gdb)
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(redeemableQuery)).
		WithArgs("stale", false, now, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindRedeemable(context.Background(), "stale", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
