// Package claim holds the conditional-write primitive shared by the repositories.
//
// A claim is a single UPDATE or INSERT whose WHERE clause (or unique index) only lets
// one writer win. The winner sees exactly one affected row; every other writer sees zero
// and must treat the state as already taken.
package claim

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Exec runs query and reports whether this caller won the claim.
//
// For INSERT ... ON DUPLICATE KEY UPDATE id = id the MySQL driver reports one affected
// row for a fresh insert and zero for a no-op update, so the same rule applies.
func Exec(ctx context.Context, ext sqlx.ExecerContext, query string, args ...any) (bool, error) {
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports whether err is a MySQL unique-index violation, i.e. another
// writer already holds the slot.
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
