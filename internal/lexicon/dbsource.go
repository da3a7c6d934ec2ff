package lexicon

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/XSAM/otelsql"
	_ "github.com/go-sql-driver/mysql"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DBSource loads definitions from a MySQL table with id, kind, singular,
// and plural columns. A NULL plural means the default pluralization applies,
// matching an absent field in the file format.
type DBSource struct {
	DB    *sql.DB
	Table string
}

// OpenDB opens the definitions database, instrumented with otelsql when
// observability is enabled.
func OpenDB(dsn string, instrumented bool) (*sql.DB, error) {
	if instrumented {
		return otelsql.Open("mysql", dsn,
			otelsql.WithAttributes(semconv.DBSystemMySQL),
			otelsql.WithSpanOptions(otelsql.SpanOptions{DisableErrSkip: true}),
		)
	}
	return sql.Open("mysql", dsn)
}

// Load reads every definition row ordered by id.
func (s DBSource) Load(ctx context.Context) ([]Definition, error) {
	query, args, err := sq.Select("id", "kind", "singular", "plural").
		From(s.Table).
		OrderBy("id").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build definitions query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query definitions: %w", err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var (
			id       string
			kind     sql.NullString
			singular sql.NullString
			plural   sql.NullString
		)
		if err := rows.Scan(&id, &kind, &singular, &plural); err != nil {
			return nil, fmt.Errorf("failed to scan definition row: %w", err)
		}

		def := Definition{ID: id, Kind: kind.String}
		if singular.Valid {
			def.Name.Singular = &singular.String
		}
		if plural.Valid {
			def.Name.Plural = &plural.String
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read definition rows: %w", err)
	}
	return defs, nil
}
