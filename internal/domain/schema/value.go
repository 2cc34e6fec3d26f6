package schema

import (
	"strconv"

	"litedb/internal/domain/errors"
)

// Value is one literal from an INSERT, stringified by the translator.
// Null is an explicit marker; a null is never represented as literal text.
type Value struct {
	Raw  string
	Null bool
}

// NullValue is the explicit null marker.
var NullValue = Value{Null: true}

func (v Value) String() string {
	if v.Null {
		return "NULL"
	}
	return v.Raw
}

// parseValue coerces a raw value string into the native representation for
// the given affinity. Failures are recoverable errors, not aborts, so the
// insertion path can reject a row before mutating any store.
func parseValue(dt DataType, raw string) (any, error) {
	switch dt {
	case DataTypeInteger:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, errors.Generalf("cannot parse %q as Integer", raw)
		}
		return int32(n), nil
	case DataTypeText:
		return raw, nil
	case DataTypeReal:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, errors.Generalf("cannot parse %q as Real", raw)
		}
		return float32(f), nil
	case DataTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Generalf("cannot parse %q as Boolean", raw)
		}
		return b, nil
	default:
		return nil, errors.Generalf("values of type %s are not storable", dt)
	}
}
