package query

import (
	"strings"

	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
	"litedb/internal/parser"
)

// InsertQuery is an INSERT statement broken down into a table name, the
// caller's column list exactly as supplied (possibly empty), and one value
// list per row. Row length vs column list correspondence is the
// dispatcher's responsibility, not checked here.
type InsertQuery struct {
	TableName string
	Columns   []string
	Rows      [][]schema.Value
}

// NewInsertQuery classifies and stringifies every literal: numbers keep
// their numeric text, booleans become "true"/"false", single-quoted strings
// their content, bare identifiers their literal text. Nulls carry an
// explicit marker instead of sentinel text. The grammar admits no other
// literal kind, so nothing is ever dropped from a row.
func NewInsertQuery(stmt *parser.Statement) (*InsertQuery, error) {
	ins := stmt.Insert
	if ins == nil {
		return nil, dberr.Internal("statement is not INSERT")
	}

	rows := make([][]schema.Value, 0, len(ins.Rows))
	for _, row := range ins.Rows {
		values := make([]schema.Value, 0, len(row.Values))
		for _, lit := range row.Values {
			switch {
			case lit.Number != nil:
				values = append(values, schema.Value{Raw: *lit.Number})
			case lit.Str != nil:
				values = append(values, schema.Value{Raw: strings.Trim(*lit.Str, "'")})
			case lit.Bool != nil:
				values = append(values, schema.Value{Raw: strings.ToLower(*lit.Bool)})
			case lit.Null:
				values = append(values, schema.NullValue)
			case lit.Ident != nil:
				values = append(values, schema.Value{Raw: *lit.Ident})
			default:
				return nil, dberr.Internal("unsupported literal in VALUES list")
			}
		}
		rows = append(rows, values)
	}

	return &InsertQuery{
		TableName: ins.Table,
		Columns:   append([]string(nil), ins.Columns...),
		Rows:      rows,
	}, nil
}
