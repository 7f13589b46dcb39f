package presenter

import (
	"encoding/csv"
	"os"

	"dario.lol/udns/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a keyed collection flattened to display rows. Rows keep the
// order they were added in; callers sort before adding.
type Table struct {
	columns []string
	rows    [][]string
}

func New(columns ...string) *Table {
	return &Table{columns: columns}
}

func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Render draws the aligned table. An empty collection renders nothing,
// not even the header.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.C.Gray500)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return ui.TableHeader
			}
			return ui.TableCell
		}).
		Headers(t.columns...).
		Rows(t.rows...)
	return tbl.String()
}

// ExportCSV writes the table to path as comma-delimited rows with a header
// matching the display columns. An existing file is truncated. An empty
// collection still writes the header row.
func (t *Table) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	err = w.Write(t.columns)
	for _, row := range t.rows {
		if err != nil {
			break
		}
		err = w.Write(row)
	}
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
