package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/one2x-ai/nameversion/internal/config"
)

// QuerySQL runs the configured query, or the generated table query, and
// returns its single column for every row. NULL and blank values are skipped.
func QuerySQL(ctx context.Context, src config.Source, opt config.SourceOption) ([]string, error) {
	driver, err := parseDriver(src.Engine, src.Driver)
	if err != nil {
		return nil, err
	}
	query := src.Query
	if query == "" {
		query = TableLoader{Table: src.Table, Column: src.Column, Driver: driver}.LoadSQL()
	}

	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	db, err := sql.Open(string(driver), src.URI)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if !name.Valid {
			continue
		}
		if n := strings.TrimSpace(name.String); n != "" {
			names = append(names, n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
