package schema

import (
	"log/slog"
	"strings"
)

// DataType is the column affinity governing parsing and indexing of a
// column's values. The set is closed; Invalid is a terminal marker for an
// unrecognized type name and is never storable.
type DataType int

const (
	DataTypeInteger DataType = iota
	DataTypeText
	DataTypeReal
	DataTypeBool
	DataTypeNone
	DataTypeInvalid
)

// DataTypeFromName maps a declared SQL type name to its affinity.
// Unknown names map to DataTypeInvalid with a diagnostic; callers must
// reject Invalid rather than store it.
func DataTypeFromName(name string) DataType {
	switch strings.ToLower(name) {
	case "smallint", "int", "integer", "bigint":
		return DataTypeInteger
	case "text", "varchar", "string":
		return DataTypeText
	case "real", "float", "double", "decimal":
		return DataTypeReal
	case "bool", "boolean":
		return DataTypeBool
	case "none":
		return DataTypeNone
	default:
		slog.Warn("invalid data type given", "type", name)
		return DataTypeInvalid
	}
}

func (d DataType) String() string {
	switch d {
	case DataTypeInteger:
		return "Integer"
	case DataTypeText:
		return "Text"
	case DataTypeReal:
		return "Real"
	case DataTypeBool:
		return "Boolean"
	case DataTypeNone:
		return "None"
	default:
		return "Invalid"
	}
}

// Indexable reports whether columns of this affinity carry a usable index.
// Only Integer and Text do; Real and Bool columns cannot back unique
// constraints and are rejected for UNIQUE/PRIMARY KEY at schema creation.
func (d DataType) Indexable() bool {
	return d == DataTypeInteger || d == DataTypeText
}
