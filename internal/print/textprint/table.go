// Package textprint renders product listings as aligned text tables.
package textprint

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Row is one product line of a table.
type Row struct {
	ID       string
	Title    string
	Price    string
	Category string
}

// RowOf extracts the table columns from a decoded product object. Missing or
// unexpected attributes render as "(none)".
func RowOf(object map[string]any) Row {
	return Row{
		ID:       column(object, "id"),
		Title:    column(object, "title"),
		Price:    column(object, "price"),
		Category: column(object, "category"),
	}
}

func column(object map[string]any, key string) string {
	value, ok := object[key]
	if !ok || value == nil {
		return "(none)"
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// encoding/json decodes every number to float64; ids print better
		// without a fractional part.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

type TableOption func(*TableWriter)

func Header(enable bool) TableOption {
	return func(t *TableWriter) { t.header = enable }
}

// List reduces the table to its first column, one value per line.
func List(enable bool) TableOption {
	return func(t *TableWriter) { t.list = enable }
}

func NewTableWriter(w io.Writer, opts ...TableOption) *TableWriter {
	t := &TableWriter{
		output: w,
		header: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TableWriter accumulates rows and writes them out aligned on Flush.
type TableWriter struct {
	output io.Writer
	rows   []Row
	header bool
	list   bool
}

func (t *TableWriter) Write(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

func (t *TableWriter) Flush() error {
	if t.list {
		for _, row := range t.rows {
			if _, err := fmt.Fprintln(t.output, row.ID); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(t.output, 0, 4, 2, ' ', 0)
	if t.header {
		if _, err := fmt.Fprintln(tw, "PRODUCT ID\tTITLE\tPRICE\tCATEGORY"); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.ID, row.Title, row.Price, row.Category); err != nil {
			return err
		}
	}
	return tw.Flush()
}
