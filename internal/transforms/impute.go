package transforms

import (
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// ImputeNumericMedian fills the nulls of every Numeric column with the column median.
// Columns without any value are left alone. It returns the names of the columns it filled.
func ImputeNumericMedian(t *frame.Table) []string {
	var filled []string
	for _, c := range t.Columns() {
		if c.Kind != frame.Numeric || c.NullCount() == 0 {
			continue
		}
		values := c.Floats()
		if len(values) == 0 {
			continue
		}
		fill(c, Median(values))
		filled = append(filled, c.Name)
	}
	return filled
}

// ImputeCategoricalMode fills the nulls of every Categorical and Text column with its most
// frequent value. Ties go to the value seen first in row order. All-null columns are left alone.
func ImputeCategoricalMode(t *frame.Table) []string {
	var filled []string
	for _, c := range t.Columns() {
		if c.Kind != frame.Categorical && c.Kind != frame.Text {
			continue
		}
		if c.NullCount() == 0 {
			continue
		}
		m, ok := mode(c.Values)
		if !ok {
			continue
		}
		fill(c, m)
		filled = append(filled, c.Name)
	}
	return filled
}

func mode(values []any) (any, bool) {
	counts := make(map[string]int)
	var order []any
	for _, v := range values {
		if v == nil {
			continue
		}
		key := frame.FormatCell(v)
		if counts[key] == 0 {
			order = append(order, v)
		}
		counts[key]++
	}
	var best any
	bestCount := 0
	for _, v := range order {
		if n := counts[frame.FormatCell(v)]; n > bestCount {
			best, bestCount = v, n
		}
	}
	return best, bestCount > 0
}

func fill(c *frame.Column, v any) {
	for i := range c.Values {
		if c.Values[i] == nil {
			c.Values[i] = v
		}
	}
}
