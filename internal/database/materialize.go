package database

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// columnBuilder accumulates scanned driver values for one result column.
type columnBuilder struct {
	name   string
	kind   frame.Kind
	values []any
}

func (b *columnBuilder) append(v any) {
	if raw, ok := v.([]byte); ok {
		// Scan reuses the driver buffer.
		v = string(raw)
	}
	b.values = append(b.values, v)
}

// build normalizes cells to the column kind. A numeric or timestamp column holding a value
// that does not fit its declared type is kept as text rather than losing data.
func (b *columnBuilder) build() *frame.Column {
	switch b.kind {
	case frame.Numeric:
		if cells, ok := toFloats(b.values); ok {
			return &frame.Column{Name: b.name, Kind: frame.Numeric, Values: cells}
		}
	case frame.Timestamp:
		if cells, ok := toTimes(b.values); ok {
			return &frame.Column{Name: b.name, Kind: frame.Timestamp, Values: cells}
		}
	}
	cells := make([]any, len(b.values))
	for i, v := range b.values {
		if v != nil {
			cells[i] = frame.FormatCell(v)
		}
	}
	return &frame.Column{Name: b.name, Kind: frame.Text, Values: cells}
}

// toFloats converts driver values to float64 cells. NaN is stored as the null marker.
func toFloats(values []any) ([]any, bool) {
	out := make([]any, len(values))
	for i, v := range values {
		var f float64
		switch x := v.(type) {
		case nil:
			continue
		case int64:
			f = float64(x)
		case int32:
			f = float64(x)
		case int:
			f = float64(x)
		case float64:
			f = x
		case float32:
			f = float64(x)
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return nil, false
			}
			f = parsed
		default:
			return nil, false
		}
		if !math.IsNaN(f) {
			out[i] = f
		}
	}
	return out, true
}

func toTimes(values []any) ([]any, bool) {
	out := make([]any, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case time.Time:
			out[i] = x
		default:
			return nil, false
		}
	}
	return out, true
}
