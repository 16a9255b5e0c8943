package connection

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Session returns a gorm session bound to ctx. When tx is set every statement
// of the session runs inside that transaction.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	s := db.Session(&gorm.Session{Context: ctx})
	if tx != nil {
		s.Statement.ConnPool = tx
	}
	return s
}

// IsUniqueViolation reports whether err is a postgres unique violation on the
// given constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") &&
		(constraint == "" || strings.Contains(msg, strings.ToLower(constraint)))
}
