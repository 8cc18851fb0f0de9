package source

import "fmt"

const DefaultColumn = "name"

// TableLoader builds the query that reads every name from one column of a
// table.
type TableLoader struct {
	Table  string
	Column string
	Driver SQLDriver
}

func (t TableLoader) column() string {
	if t.Column == "" {
		return DefaultColumn
	}
	return t.Column
}

func (t TableLoader) LoadSQL() string {
	col := t.Driver.QuoteIdent(t.column())
	return fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		col, t.Driver.QuoteIdent(t.Table), col)
}
