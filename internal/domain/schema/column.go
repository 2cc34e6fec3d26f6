package schema

// ColumnDef is a validated column declaration produced by the schema
// translator. PrimaryKey implies NotNull and Unique.
type ColumnDef struct {
	Name       string
	Type       DataType
	PrimaryKey bool
	NotNull    bool
	Unique     bool
}

// Column is the in-table representation of a declared column.
type Column struct {
	Name     string
	Type     DataType
	IsPK     bool
	NotNull  bool
	IsUnique bool
	// HasIndex is an explicit capability flag: true only for Integer and
	// Text columns, whose Index variant can actually answer lookups.
	HasIndex bool
	Index    *Index
}

func NewColumn(def ColumnDef) *Column {
	return &Column{
		Name:     def.Name,
		Type:     def.Type,
		IsPK:     def.PrimaryKey,
		NotNull:  def.NotNull || def.PrimaryKey,
		IsUnique: def.Unique || def.PrimaryKey,
		HasIndex: def.Type.Indexable(),
		Index:    NewIndex(def.Type),
	}
}
