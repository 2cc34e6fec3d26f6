package schema

import (
	"strconv"

	"litedb/internal/domain/errors"
)

// Index maps a column's values back to the rowid holding them. Only Integer
// and Text columns carry a usable index; for every other affinity the index
// is a no-op and Usable reports false.
type Index struct {
	Kind  DataType
	Ints  map[int32]int64
	Texts map[string]int64
}

func NewIndex(kind DataType) *Index {
	ix := &Index{Kind: kind}
	switch kind {
	case DataTypeInteger:
		ix.Ints = make(map[int32]int64)
	case DataTypeText:
		ix.Texts = make(map[string]int64)
	default:
		ix.Kind = DataTypeNone
	}
	return ix
}

func (ix *Index) Usable() bool { return ix.Kind != DataTypeNone }

// Contains reports whether the raw value is already present in the index.
func (ix *Index) Contains(raw string) (bool, error) {
	switch ix.Kind {
	case DataTypeInteger:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return false, errors.Generalf("cannot parse %q as Integer", raw)
		}
		_, found := ix.Ints[int32(n)]
		return found, nil
	case DataTypeText:
		_, found := ix.Texts[raw]
		return found, nil
	default:
		return false, errors.General("index is not usable")
	}
}

// put records a coerced value → rowid mapping.
func (ix *Index) put(v any, rowid int64) {
	switch ix.Kind {
	case DataTypeInteger:
		ix.Ints[v.(int32)] = rowid
	case DataTypeText:
		ix.Texts[v.(string)] = rowid
	}
}

// Len returns the number of indexed values.
func (ix *Index) Len() int {
	switch ix.Kind {
	case DataTypeInteger:
		return len(ix.Ints)
	case DataTypeText:
		return len(ix.Texts)
	default:
		return 0
	}
}
