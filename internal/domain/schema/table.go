package schema

import (
	"sort"
	"strconv"
	"sync"

	"litedb/internal/domain/errors"
)

// Table owns a declared schema, one RowStore per column, and the rowid
// sequence. A table is created once from a validated CreateQuery and then
// only mutated by insertion; at most one writer may be active at a time
// (callers serialize access, the embedded lock guards the presentation path).
type Table struct {
	mu sync.RWMutex

	Name string
	// Columns preserves declaration order; the order is load-bearing for
	// rendering and for expanding an empty INSERT column list.
	Columns    []*Column
	colsByName map[string]*Column
	// Rows maps column name to that column's store. Every declared column
	// has an entry from construction, even while empty.
	Rows map[string]*RowStore
	// Indexes is the reserved named-index registry; the insertion path only
	// maintains the per-column indexes.
	Indexes map[string]string
	// LastRowID is the rowid of the most recent insert. It never decreases.
	LastRowID int64
	// PrimaryKey is the primary-key column name, "" when the table has none.
	PrimaryKey string
}

// NewTable builds a table from validated column definitions. The translator
// guarantees at most one primary key and no Invalid affinities.
func NewTable(name string, defs []ColumnDef) *Table {
	t := &Table{
		Name:       name,
		colsByName: make(map[string]*Column, len(defs)),
		Rows:       make(map[string]*RowStore, len(defs)),
		Indexes:    make(map[string]string),
	}
	for _, def := range defs {
		col := NewColumn(def)
		t.Columns = append(t.Columns, col)
		t.colsByName[col.Name] = col
		t.Rows[col.Name] = NewRowStore(col.Type)
		if col.IsPK {
			t.PrimaryKey = col.Name
		}
	}
	return t
}

// ContainsColumn reports whether a column with the given name is declared.
func (t *Table) ContainsColumn(name string) bool {
	_, ok := t.colsByName[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	if col, ok := t.colsByName[name]; ok {
		return col, nil
	}
	return nil, errors.Generalf("column %q not found in table %q", name, t.Name)
}

// ColumnNames returns the declared column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// RowCount returns the number of rows, derived from the distinct rowids
// across all column stores.
func (t *Table) RowCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rowIDs())
}

// ValidateUniqueConstraint checks the positionally-paired column/value lists
// against every unique column's index. The first violation short-circuits;
// no state is modified. Null values never collide.
func (t *Table) ValidateUniqueConstraint(cols []string, values []Value) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, name := range cols {
		col, ok := t.colsByName[name]
		if !ok {
			return errors.Generalf("column %q not found in table %q", name, t.Name)
		}
		if !col.IsUnique || i >= len(values) || values[i].Null {
			continue
		}
		if !col.HasIndex {
			// Schema creation rejects UNIQUE on non-indexable affinities,
			// so this guard is unreachable through the dispatcher.
			return errors.Generalf("cannot find index for column %s", name)
		}
		found, err := col.Index.Contains(values[i].Raw)
		if err != nil {
			return err
		}
		if found {
			return errors.Generalf(
				"unique constraint violation for column %s: value %s already exists",
				name, values[i].Raw)
		}
	}
	return nil
}

// stagedCell is a fully-coerced value ready to commit to a column store.
type stagedCell struct {
	col *Column
	val any
}

// InsertRow adds one row. The caller's column/value lists are resolved by
// name, so caller column order is independent of declaration order. Every
// value is coerced before any store is touched: a failing row leaves no
// partial state.
//
// Rowid assignment: the candidate is LastRowID+1. When the table has an
// Integer primary key and the caller omitted it, the candidate rowid is
// auto-assigned as the key's value. When the caller supplied an Integer
// primary key explicitly, that value becomes the rowid for the whole row
// and drives the sequence forward; it must exceed the current LastRowID so
// the sequence never decreases.
func (t *Table) InsertRow(cols []string, values []Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	provided := make(map[string]Value, len(cols))
	for i, name := range cols {
		if i < len(values) {
			provided[name] = values[i]
		}
	}

	rowid := t.LastRowID + 1
	autoAssignPK := false
	if t.PrimaryKey != "" {
		pk := t.colsByName[t.PrimaryKey]
		v, supplied := provided[t.PrimaryKey]
		switch {
		case pk.Type == DataTypeInteger && (!supplied || v.Null):
			autoAssignPK = true
		case pk.Type == DataTypeInteger:
			id, err := strconv.ParseInt(v.Raw, 10, 64)
			if err != nil {
				return errors.Generalf(
					"cannot parse %q as Integer for primary key column %q", v.Raw, pk.Name)
			}
			if id <= t.LastRowID {
				return errors.Generalf(
					"primary key value %d is not greater than current rowid %d", id, t.LastRowID)
			}
			rowid = id
		}
	}

	staged := make([]stagedCell, 0, len(t.Columns))
	for _, col := range t.Columns {
		raw := ""
		if col.IsPK && autoAssignPK {
			raw = strconv.FormatInt(rowid, 10)
		} else {
			v, ok := provided[col.Name]
			if !ok || v.Null {
				if col.NotNull {
					return errors.Generalf(
						"null value in column %q violates not-null constraint", col.Name)
				}
				continue // genuine null: no entry in the column store
			}
			raw = v.Raw
		}

		val, err := parseValue(col.Type, raw)
		if err != nil {
			return errors.Generalf(
				"cannot parse %q as %s for column %q", raw, col.Type, col.Name)
		}
		staged = append(staged, stagedCell{col: col, val: val})
	}

	for _, cell := range staged {
		if err := t.Rows[cell.col.Name].put(rowid, cell.val); err != nil {
			return errors.Internalf("column %q: %v", cell.col.Name, err)
		}
		if cell.col.HasIndex {
			cell.col.Index.put(cell.val, rowid)
		}
	}
	t.LastRowID = rowid
	return nil
}

// rowIDs returns the distinct rowids across all column stores, ascending.
// Callers must hold at least a read lock.
func (t *Table) rowIDs() []int64 {
	seen := make(map[int64]struct{})
	for _, store := range t.Rows {
		for _, id := range store.rowIDs() {
			seen[id] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
