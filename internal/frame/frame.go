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

// Package frame holds the in-memory table the loader produces and the
// transforms mutate. A nil cell is the null marker for every kind.
package frame

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the declared kind of a column's cells.
type Kind int

const (
	Text Kind = iota
	Numeric
	Timestamp
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Timestamp:
		return "timestamp"
	case Categorical:
		return "categorical"
	default:
		return "text"
	}
}

// Column is a named sequence of cells of one kind.
// Numeric cells are float64, Timestamp cells time.Time, Categorical and Text cells string.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// NewColumn builds a column, copying values.
func NewColumn(name string, kind Kind, values []any) *Column {
	cells := make([]any, len(values))
	copy(cells, values)
	return &Column{Name: name, Kind: kind, Values: cells}
}

// Len returns the number of cells.
func (c *Column) Len() int {
	return len(c.Values)
}

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// Floats returns the non-null numeric cells in row order.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// Levels returns the distinct labels of the column in order of first appearance.
func (c *Column) Levels() []string {
	seen := make(map[string]bool)
	var levels []string
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		s := FormatCell(v)
		if !seen[s] {
			seen[s] = true
			levels = append(levels, s)
		}
	}
	return levels
}

func (c *Column) clone() *Column {
	return NewColumn(c.Name, c.Kind, c.Values)
}

// Table is an ordered collection of equally long named columns.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a table from columns. All columns must share one length and have distinct names.
func New(columns ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int)}
	for i, c := range columns {
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), t.rows)
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		t.index[c.Name] = i
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(columns ...*Column) *Table {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) NumRows() int    { return t.rows }
func (t *Table) NumColumns() int { return len(t.columns) }

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in table order. The slice is a copy; the columns are not.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column or nil.
func (t *Table) Column(name string) *Column {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.columns[i]
}

// SetColumn replaces the column with the same name, keeping its position.
func (t *Table) SetColumn(c *Column) error {
	i, ok := t.index[c.Name]
	if !ok {
		return fmt.Errorf("column %q does not exist", c.Name)
	}
	if c.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), t.rows)
	}
	t.columns[i] = c
	return nil
}

// DropColumn removes the named column. Dropping an absent column is a no-op.
func (t *Table) DropColumn(name string) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	t.columns = append(t.columns[:i], t.columns[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.columns); j++ {
		t.index[t.columns[j].Name] = j
	}
}

// Clone returns a deep copy of the table's cell slices.
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.clone()
	}
	out := MustNew(cols...)
	out.rows = t.rows
	return out
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows []int
	for r := 0; r < t.rows; r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	cols := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		values := make([]any, len(rows))
		for j, r := range rows {
			values[j] = c.Values[r]
		}
		cols[i] = &Column{Name: c.Name, Kind: c.Kind, Values: values}
	}
	out := MustNew(cols...)
	out.rows = len(rows)
	return out
}

// FormatCell renders a cell for flat-file output. Nulls render as the empty string.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
