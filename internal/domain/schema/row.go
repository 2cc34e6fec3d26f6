package schema

import (
	"fmt"
	"sort"
	"strconv"
)

// RowStore holds one column's values keyed by rowid. It is a tagged variant
// over the storable affinities; exactly one of the maps is non-nil, matching
// Kind. Consumers must handle every variant rather than assuming only
// Integer and Text are real.
type RowStore struct {
	Kind  DataType
	Ints  map[int64]int32
	Texts map[int64]string
	Reals map[int64]float32
	Bools map[int64]bool
}

// NewRowStore allocates an empty store for the given affinity. None and
// Invalid produce a store with no backing map; any attempt to put a value
// into it is an error.
func NewRowStore(kind DataType) *RowStore {
	s := &RowStore{Kind: kind}
	switch kind {
	case DataTypeInteger:
		s.Ints = make(map[int64]int32)
	case DataTypeText:
		s.Texts = make(map[int64]string)
	case DataTypeReal:
		s.Reals = make(map[int64]float32)
	case DataTypeBool:
		s.Bools = make(map[int64]bool)
	case DataTypeNone, DataTypeInvalid:
		// no backing store
	}
	return s
}

// put stores a value already coerced by parseValue for this store's Kind.
func (s *RowStore) put(rowid int64, v any) error {
	switch s.Kind {
	case DataTypeInteger:
		s.Ints[rowid] = v.(int32)
	case DataTypeText:
		s.Texts[rowid] = v.(string)
	case DataTypeReal:
		s.Reals[rowid] = v.(float32)
	case DataTypeBool:
		s.Bools[rowid] = v.(bool)
	default:
		return fmt.Errorf("row store of type %s cannot hold values", s.Kind)
	}
	return nil
}

// Len returns the number of stored values.
func (s *RowStore) Len() int {
	switch s.Kind {
	case DataTypeInteger:
		return len(s.Ints)
	case DataTypeText:
		return len(s.Texts)
	case DataTypeReal:
		return len(s.Reals)
	case DataTypeBool:
		return len(s.Bools)
	default:
		return 0
	}
}

// Display returns the rendering of the value stored under rowid, with
// false when the row holds a null for this column.
func (s *RowStore) Display(rowid int64) (string, bool) {
	switch s.Kind {
	case DataTypeInteger:
		if v, ok := s.Ints[rowid]; ok {
			return strconv.FormatInt(int64(v), 10), true
		}
	case DataTypeText:
		if v, ok := s.Texts[rowid]; ok {
			return v, true
		}
	case DataTypeReal:
		if v, ok := s.Reals[rowid]; ok {
			return strconv.FormatFloat(float64(v), 'g', -1, 32), true
		}
	case DataTypeBool:
		if v, ok := s.Bools[rowid]; ok {
			return strconv.FormatBool(v), true
		}
	}
	return "", false
}

// rowIDs returns the rowids present in this store, ascending.
func (s *RowStore) rowIDs() []int64 {
	ids := make([]int64, 0, s.Len())
	switch s.Kind {
	case DataTypeInteger:
		for id := range s.Ints {
			ids = append(ids, id)
		}
	case DataTypeText:
		for id := range s.Texts {
			ids = append(ids, id)
		}
	case DataTypeReal:
		for id := range s.Reals {
			ids = append(ids, id)
		}
	case DataTypeBool:
		for id := range s.Bools {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
