package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table is a rounded go-pretty table shared by the summary and the CLI
// listings. Short rows are padded with empty cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
	Align   []Alignment
}

// Render returns the table text, or "" when there are no headers.
func (t Table) Render() string {
	columns := len(t.Headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if t.Title != "" {
		tw.SetTitle(t.Title)
	}
	tw.AppendHeader(t.row(t.Headers))
	for _, row := range t.Rows {
		tw.AppendRow(t.row(row))
	}
	if len(t.Footer) > 0 {
		tw.AppendFooter(t.row(t.Footer))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(t.Align) && t.Align[i] == AlignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func (t Table) row(cells []string) table.Row {
	r := make(table.Row, len(t.Headers))
	for i := range r {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
