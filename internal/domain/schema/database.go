package schema

import (
	"sort"

	"litedb/internal/domain/errors"
)

// Database is the catalog: a name-keyed table registry. Table names are
// unique; creation of a duplicate is the dispatcher's job to reject by
// gating through ContainsTable before inserting.
type Database struct {
	Name   string
	Tables map[string]*Table
}

// NewDatabase creates an empty catalog. Instances are constructed
// explicitly and passed by reference; there is no ambient global.
func NewDatabase(name string) *Database {
	return &Database{
		Name:   name,
		Tables: make(map[string]*Table),
	}
}

// ContainsTable reports whether the catalog holds a table with this name.
func (db *Database) ContainsTable(name string) bool {
	_, ok := db.Tables[name]
	return ok
}

// Table returns the named table, or a "table not found" error.
func (db *Database) Table(name string) (*Table, error) {
	if t, ok := db.Tables[name]; ok {
		return t, nil
	}
	return nil, errors.Generalf("table %q not found", name)
}

// TableNames returns all table names, sorted for stable listings.
func (db *Database) TableNames() []string {
	names := make([]string, 0, len(db.Tables))
	for name := range db.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
