package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// mapError turns driver errors into domain errors.
func mapError(kind string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError(kind)
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return domain.ValidationError("%s with this %s already exists", kind, uniqueField(pqErr))
		case "23502":
			return domain.ValidationError("required field %s is missing", pqErr.Column)
		case "22P02", "22003", "22001", "23514":
			return domain.ValidationError("invalid value for %s: %s", kind, pqErr.Message)
		}
	}
	return fmt.Errorf("%s query failed: %w", kind, err)
}

func uniqueField(pqErr *pq.Error) string {
	// constraint names follow <table>_<column>_key
	name := strings.TrimSuffix(pqErr.Constraint, "_key")
	if i := strings.Index(name, "_"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return "value"
}

func expectRows(kind string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NotFoundError(kind)
	}
	return nil
}

// orderBy renders a SortSpec against a whitelist of sortable columns. The
// id tiebreak keeps pages stable for rows created in the same instant.
func orderBy(spec domain.SortSpec, columns map[string]string) (string, error) {
	if spec.Field == "" {
		spec.Field = domain.NewestFirst.Field
	}
	column, ok := columns[spec.Field]
	if !ok {
		return "", domain.ValidationError("cannot sort by %q", spec.Field)
	}

	var dir string
	switch spec.Direction {
	case domain.Asc:
		dir = "ASC"
	case domain.Desc, "":
		dir = "DESC"
	default:
		return "", domain.ValidationError("unknown sort direction %q", spec.Direction)
	}

	return fmt.Sprintf(" ORDER BY %s %s, id %s", column, dir, dir), nil
}

func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", limit)
}

var timestampColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func sortColumns(extra ...string) map[string]string {
	columns := make(map[string]string, len(timestampColumns)+len(extra))
	for k, v := range timestampColumns {
		columns[k] = v
	}
	for _, c := range extra {
		columns[c] = c
	}
	return columns
}

func countRows(ctx context.Context, db DBTX, kind, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(kind, err)
	}
	return n, nil
}
