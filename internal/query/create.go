// Package query holds the statement-specific translators from the generic
// parsed-statement tree to the engine's internal representations.
package query

import (
	dberr "litedb/internal/domain/errors"
	"litedb/internal/domain/schema"
	"litedb/internal/parser"
)

// CreateQuery is a CREATE TABLE statement broken down into a table name and
// validated column definitions, in declaration order.
type CreateQuery struct {
	TableName string
	Columns   []schema.ColumnDef
}

// NewCreateQuery validates a create-table shape. Failure conditions:
// wrong statement shape, duplicate column name, unknown data type, multiple
// primary keys, PRIMARY KEY or UNIQUE on a non-indexable affinity. None are
// silently ignored.
func NewCreateQuery(stmt *parser.Statement) (*CreateQuery, error) {
	ct := stmt.CreateTable
	if ct == nil {
		return nil, dberr.Internal("statement is not CREATE TABLE")
	}

	seen := make(map[string]struct{}, len(ct.Columns))
	primaryKey := ""
	defs := make([]schema.ColumnDef, 0, len(ct.Columns))

	for _, decl := range ct.Columns {
		if _, dup := seen[decl.Name]; dup {
			return nil, dberr.Internalf("duplicate column name %q", decl.Name)
		}
		seen[decl.Name] = struct{}{}

		dt := schema.DataTypeFromName(decl.Type.Name)
		if dt == schema.DataTypeInvalid {
			return nil, dberr.Generalf("unknown data type %q for column %q", decl.Type.Name, decl.Name)
		}

		def := schema.ColumnDef{Name: decl.Name, Type: dt}
		for _, opt := range decl.Options {
			switch {
			case opt.PrimaryKey:
				if primaryKey != "" {
					return nil, dberr.Internal("more than one primary key; only one is allowed")
				}
				if !dt.Indexable() {
					return nil, dberr.Generalf(
						"PRIMARY KEY is not supported for %s column %q", dt, decl.Name)
				}
				def.PrimaryKey = true
				def.Unique = true
				def.NotNull = true
				primaryKey = decl.Name
			case opt.Unique:
				if !dt.Indexable() {
					return nil, dberr.Generalf(
						"UNIQUE is not supported for %s column %q: no index variant exists", dt, decl.Name)
				}
				def.Unique = true
			case opt.NotNull:
				def.NotNull = true
			}
		}
		defs = append(defs, def)
	}

	return &CreateQuery{TableName: ct.Name, Columns: defs}, nil
}
