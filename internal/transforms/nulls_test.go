package transforms

import (
	"testing"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column builds n cells of which the first nulls are null.
func column(name string, n, nulls int) *frame.Column {
	values := make([]any, n)
	for i := nulls; i < n; i++ {
		values[i] = float64(i)
	}
	return frame.NewColumn(name, frame.Numeric, values)
}

func TestNulls(t *testing.T) {
	table := frame.MustNew(column("id", 10, 0), column("mths_since_last_delinq", 10, 3), column("next_payment_date", 10, 7))

	summary := Nulls(table)

	assert.Equal(t, 10, summary.Rows)
	assert.Equal(t, []NullCount{
		{Column: "id", Count: 0, Percentage: 0},
		{Column: "mths_since_last_delinq", Count: 3, Percentage: 30.0},
		{Column: "next_payment_date", Count: 7, Percentage: 70.0},
	}, summary.Columns)

	assert.Equal(t, []NullCount{
		{Column: "next_payment_date", Count: 7, Percentage: 70.0},
		{Column: "mths_since_last_delinq", Count: 3, Percentage: 30.0},
	}, summary.WithNulls())
}

func TestNulls_EmptyTable(t *testing.T) {
	table := frame.MustNew(frame.NewColumn("id", frame.Numeric, nil))

	summary := Nulls(table)
	assert.Equal(t, 0, summary.Rows)
	require.Len(t, summary.Columns, 1)
	assert.Equal(t, 0.0, summary.Columns[0].Percentage)
	assert.Empty(t, summary.WithNulls())
}

func TestDropSparseColumns(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		want      []string
	}{
		{"default threshold keeps the half-null column", DefaultSparseThreshold, []string{"id", "half", "sparse_30"}},
		{"strict threshold", 0.3, []string{"id", "sparse_30"}},
		{"zero threshold keeps complete columns only", 0, []string{"id"}},
		{"threshold of one keeps everything", 1, []string{"id", "half", "mostly", "sparse_30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := frame.MustNew(column("id", 10, 0), column("half", 10, 5), column("mostly", 10, 6), column("sparse_30", 10, 3))

			out := DropSparseColumns(table, tt.threshold)

			assert.Equal(t, tt.want, out.Names())
			assert.Equal(t, 10, out.NumRows())
			assert.Equal(t, 4, table.NumColumns())
		})
	}
}

func TestDropSparseColumns_Idempotent(t *testing.T) {
	table := frame.MustNew(column("id", 10, 0), column("half", 10, 5), column("mostly", 10, 6), column("sparse_30", 10, 3))

	once := DropSparseColumns(table, DefaultSparseThreshold)
	twice := DropSparseColumns(once, DefaultSparseThreshold)

	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.NumRows(), twice.NumRows())
	for _, name := range once.Names() {
		assert.Equal(t, once.Column(name).Values, twice.Column(name).Values, name)
	}
}
