// Public domain.

package mpc

import (
	"fmt"
	"sort"
	"strconv"
)

// Record is one catalog entry, field name to decoded JSON value.
type Record map[string]interface{}

// Float returns field f as a number.  The service sends some numeric
// fields as JSON strings; those are converted.
func (r Record) Float(f Field) (float64, bool) {
	switch v := r[string(f)].(type) {
	case float64:
		return v, true
	case string:
		return parseNumber(v)
	}
	return 0, false
}

// Text returns field f formatted as text, "" if absent or null.
func (r Record) Text(f Field) string {
	switch v := r[string(f)].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Table is a tabular view of records.
type Table struct {
	Columns []string
	Rows    []Record
}

// NewTable lays out recs with the given columns, or with the sorted union
// of all record keys if columns is empty.
func NewTable(recs []Record, columns ...Field) *Table {
	t := &Table{Rows: recs}
	if len(columns) > 0 {
		for _, f := range columns {
			t.Columns = append(t.Columns, string(f))
		}
		return t
	}
	seen := map[string]bool{}
	for _, r := range recs {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				t.Columns = append(t.Columns, k)
			}
		}
	}
	sort.Strings(t.Columns)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Cells returns row i as text in column order.
func (t *Table) Cells(i int) []string {
	row := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = t.Rows[i].Text(Field(c))
	}
	return row
}
