package transforms

import (
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// FilterUpperOutliers returns the rows of t whose value in col is at most the upper fence
// (median + 1.5 * IQR). Rows with a null in col are dropped. t is not modified.
func FilterUpperOutliers(col string, t *frame.Table) (*frame.Table, error) {
	c := t.Column(col)
	if c == nil {
		return nil, &ColumnNotFoundError{Column: col}
	}
	if c.Kind != frame.Numeric {
		return nil, &ColumnKindError{Column: col, Kind: c.Kind, Want: frame.Numeric}
	}

	values := c.Floats()
	if len(values) == 0 {
		return t.Filter(func(int) bool { return false }), nil
	}
	upper := UpperFence(values)
	return t.Filter(func(row int) bool {
		v, ok := c.Values[row].(float64)
		return ok && v <= upper
	}), nil
}
