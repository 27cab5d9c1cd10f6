/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
// Package transforms holds the cleaning steps applied to the extracted loan table:
// type coercion, null accounting, sparse-column removal, imputation and outlier filtering.
//
// Batch operations validate every column name before touching the table, so a
// *ColumnNotFoundError always leaves the table as it was.
package transforms

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// CoerceNumeric converts the named columns to Numeric. Cells that do not parse become null.
func CoerceNumeric(cols []string, t *frame.Table) error {
	if err := requireColumns(t, cols); err != nil {
		return err
	}
	for _, name := range cols {
		if err := convert(t, name, frame.Numeric, toFloat); err != nil {
			return err
		}
	}
	return nil
}

// CoerceDatetime converts the named columns to Timestamp. Each cell is parsed on its own,
// so one column may mix layouts. Cells matching no layout become null.
func CoerceDatetime(cols []string, t *frame.Table) error {
	if err := requireColumns(t, cols); err != nil {
		return err
	}
	for _, name := range cols {
		if err := convert(t, name, frame.Timestamp, toTime); err != nil {
			return err
		}
	}
	return nil
}

// CoerceCategorical marks the named columns Categorical. Every distinct rendered value is a level.
func CoerceCategorical(cols []string, t *frame.Table) error {
	if err := requireColumns(t, cols); err != nil {
		return err
	}
	for _, name := range cols {
		if err := convert(t, name, frame.Categorical, toLabel); err != nil {
			return err
		}
	}
	return nil
}

// ExtractLeadingInteger replaces "<N> free text" cells with N, e.g. "36 months" becomes 36.
// Cells without digits become null. Cells that are already numeric are kept.
func ExtractLeadingInteger(cols []string, t *frame.Table) error {
	if err := requireColumns(t, cols); err != nil {
		return err
	}
	for _, name := range cols {
		if err := convert(t, name, frame.Numeric, leadingInteger); err != nil {
			return err
		}
	}
	return nil
}

// convert replaces the named column with one of the given kind, mapping every non-null cell through fn.
func convert(t *frame.Table, name string, kind frame.Kind, fn func(any) any) error {
	c := t.Column(name)
	if c == nil {
		return &ColumnNotFoundError{Column: name}
	}
	values := make([]any, len(c.Values))
	for i, v := range c.Values {
		if v != nil {
			values[i] = fn(v)
		}
	}
	return t.SetColumn(&frame.Column{Name: name, Kind: kind, Values: values})
}

func toFloat(v any) any {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) {
		return nil
	}
	return f
}

func toTime(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x
	case string:
		if ts, ok := ParseTimestamp(x); ok {
			return ts
		}
	}
	return nil
}

func toLabel(v any) any {
	return frame.FormatCell(v)
}

func leadingInteger(v any) any {
	if f, ok := v.(float64); ok {
		return f
	}
	s := frame.FormatCell(v)
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return nil
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return nil
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
