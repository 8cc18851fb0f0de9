package source

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/one2x-ai/nameversion/internal/config"
)

// SQLDriver is a database/sql driver name.
type SQLDriver string

const (
	SQLDriverSQLite SQLDriver = "sqlite3"
	SQLDriverPGXV5  SQLDriver = "pgx"
	SQLDriverLibPQ  SQLDriver = "postgres"
	SQLDriverMySQL  SQLDriver = "mysql"
)

func parseDriver(engine config.Engine, pkg string) (SQLDriver, error) {
	switch engine {
	case config.EngineSQLite:
		return SQLDriverSQLite, nil
	case config.EngineMySQL:
		return SQLDriverMySQL, nil
	case config.EnginePostgreSQL:
		switch pkg {
		case "", config.DriverPGXV5:
			return SQLDriverPGXV5, nil
		case config.DriverLibPQ:
			return SQLDriverLibPQ, nil
		}
		return "", fmt.Errorf("unknown postgresql driver: %s", pkg)
	}
	return "", fmt.Errorf("unknown engine: %s", engine)
}

func (d SQLDriver) IsPostgres() bool {
	return d == SQLDriverPGXV5 || d == SQLDriverLibPQ
}

func (d SQLDriver) IsMySQL() bool {
	return d == SQLDriverMySQL
}

// QuoteIdent quotes a possibly schema-qualified identifier.
func (d SQLDriver) QuoteIdent(name string) string {
	q := `"`
	if d.IsMySQL() {
		q = "`"
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = q + strings.ReplaceAll(p, q, q+q) + q
	}
	return strings.Join(parts, ".")
}
