package transforms

import (
	"strconv"
	"strings"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// Inferred lists the columns InferKinds converted.
type Inferred struct {
	Numeric   []string
	Timestamp []string
}

// InferKinds converts Text columns whose non-null cells all parse as numbers to Numeric,
// and those whose cells all parse as timestamps to Timestamp. Columns without values stay Text.
func InferKinds(t *frame.Table) Inferred {
	var out Inferred
	for _, c := range t.Columns() {
		if c.Kind != frame.Text || c.NullCount() == c.Len() {
			continue
		}
		switch {
		case allCells(c, isNumber):
			if convert(t, c.Name, frame.Numeric, toFloat) == nil {
				out.Numeric = append(out.Numeric, c.Name)
			}
		case allCells(c, isTimestamp):
			if convert(t, c.Name, frame.Timestamp, toTime) == nil {
				out.Timestamp = append(out.Timestamp, c.Name)
			}
		}
	}
	return out
}

// allCells reports whether fn holds for every non-null cell rendered as a string.
func allCells(c *frame.Column, fn func(string) bool) bool {
	for _, v := range c.Values {
		if v != nil && !fn(frame.FormatCell(v)) {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func isTimestamp(s string) bool {
	_, ok := ParseTimestamp(s)
	return ok
}
