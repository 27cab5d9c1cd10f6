package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColumnsFlag(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"term", []string{"term"}},
		{" term , int_rate,,grade ", []string{"term", "int_rate", "grade"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColumnsFlag(tt.in))
		})
	}
}

func TestGetDefaultOutputFilePath(t *testing.T) {
	assert.Equal(t, "loan_data.csv", GetDefaultOutputFilePath("", "extract"))
	assert.Equal(t, "data/loan_data_clean.csv", GetDefaultOutputFilePath("data/loan_data.csv", "clean"))
	assert.Equal(t, "loan_data_clean.parquet", GetDefaultOutputFilePath("loan_data.parquet", "clean"))
	assert.Equal(t, "loan_data_clean.csv", GetDefaultOutputFilePath("loan_data", "clean"))
}

func TestConfirmAction(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"no\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, ConfirmAction(strings.NewReader(tt.answer), &out, "Overwrite loan_data.csv"))
		assert.Contains(t, out.String(), "Overwrite loan_data.csv")
	}
}
