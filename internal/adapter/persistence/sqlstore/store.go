// Package sqlstore implements the repository ports with sqlx, for SQLite
// (modernc.org/sqlite) and Postgres (pgx stdlib). Queries are written with "?"
// or ":name" placeholders and rebound to the dialect by sqlx.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	db *sqlx.DB
}

// New wraps db for dialect. sqlx only uses the driver name to pick the bind
// style; modernc registers itself as "sqlite", which sqlx knows as "sqlite3".
func New(db *sql.DB, dialect goose.Dialect) *Store {
	driver := "sqlite3"
	if dialect == goose.DialectPostgres {
		driver = "pgx"
	}
	return &Store{db: sqlx.NewDb(db, driver)}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Organizations() *OrganizationRepository { return &OrganizationRepository{s} }

func (s *Store) Services() *ServiceRepository { return &ServiceRepository{s} }

func (s *Store) Modifiers() *ModifierRepository { return &ModifierRepository{s} }

func (s *Store) Clients() *ClientRepository { return &ClientRepository{s} }

func (s *Store) Assessments() *AssessmentRepository { return &AssessmentRepository{s} }

func (s *Store) Payments() *PaymentRepository { return &PaymentRepository{s} }

func (s *Store) insert(ctx context.Context, query string, row any) error {
	_, err := s.db.NamedExecContext(ctx, query, row)
	return err
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.db.Rebind(query), args...)
}

// get loads one row into dest. A missing row leaves dest untouched and
// reports false.
func (s *Store) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *Store) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	return s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...)
}

// convert maps rows with fn. The result is never nil.
func convert[R, T any](rows []R, fn func(R) (T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sortableTime)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// likePrefix escapes LIKE wildcards in prefix and appends "%".
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
