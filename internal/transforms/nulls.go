package transforms

import (
	"sort"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// DefaultSparseThreshold drops columns that are more than half null.
const DefaultSparseThreshold = 0.5

// NullCount is the null tally of one column.
type NullCount struct {
	Column     string  `json:"column"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NullSummary lists every column of a table in table order.
type NullSummary struct {
	Rows    int         `json:"rows"`
	Columns []NullCount `json:"columns"`
}

// Nulls counts the null cells of every column. Percentages are relative to the table's row count.
func Nulls(t *frame.Table) NullSummary {
	summary := NullSummary{Rows: t.NumRows()}
	for _, c := range t.Columns() {
		n := c.NullCount()
		var pct float64
		if summary.Rows > 0 {
			pct = float64(n) / float64(summary.Rows) * 100
		}
		summary.Columns = append(summary.Columns, NullCount{Column: c.Name, Count: n, Percentage: pct})
	}
	return summary
}

// WithNulls returns the columns holding at least one null, largest count first.
// Columns with equal counts keep table order.
func (s NullSummary) WithNulls() []NullCount {
	var out []NullCount
	for _, c := range s.Columns {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// DropSparseColumns returns a copy of t without the columns whose null fraction exceeds threshold.
// A column exactly at the threshold is kept. Tables without rows are copied unchanged.
func DropSparseColumns(t *frame.Table, threshold float64) *frame.Table {
	out := t.Clone()
	if t.NumRows() == 0 {
		return out
	}
	for _, c := range Nulls(t).Columns {
		if float64(c.Count)/float64(t.NumRows()) > threshold {
			out.DropColumn(c.Column)
		}
	}
	return out
}
