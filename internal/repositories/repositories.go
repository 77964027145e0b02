// Package repositories persists storefront data through sqlx. Every query is
// written with '?' placeholders and rebound for the driver behind the handle,
// so the same repository serves PostgreSQL and SQLite.
package repositories

import (
	"database/sql"
	"strings"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
)

// logQuery logs a statement on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
