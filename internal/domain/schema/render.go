package schema

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Presentation operations. These are read-only and derive fully from
// table/column/row state.

// RenderSchema writes a tabular description of the declared columns.
func (t *Table) RenderSchema(w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Column", "Type", "PK", "Not Null", "Unique", "Indexed"})
	tw.SetAutoFormatHeaders(false)
	for _, col := range t.Columns {
		tw.Append([]string{
			col.Name,
			col.Type.String(),
			yesNo(col.IsPK),
			yesNo(col.NotNull),
			yesNo(col.IsUnique),
			yesNo(col.HasIndex),
		})
	}
	tw.Render()
}

// RenderData writes every row in rowid order, one column per header, with
// NULL for absent values.
func (t *Table) RenderData(w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tw := tablewriter.NewWriter(w)
	header := append([]string{"rowid"}, t.ColumnNames()...)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	for _, rowid := range t.rowIDs() {
		cells := []string{strconv.FormatInt(rowid, 10)}
		for _, col := range t.Columns {
			if v, ok := t.Rows[col.Name].Display(rowid); ok {
				cells = append(cells, v)
			} else {
				cells = append(cells, "NULL")
			}
		}
		tw.Append(cells)
	}
	tw.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
