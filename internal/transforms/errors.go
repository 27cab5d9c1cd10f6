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
package transforms

import (
	"fmt"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// ColumnNotFoundError reports a column name absent from the table.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %s", e.Column)
}

// ColumnKindError reports a column whose kind does not support the requested operation.
type ColumnKindError struct {
	Column string
	Kind   frame.Kind
	Want   frame.Kind
}

func (e *ColumnKindError) Error() string {
	return fmt.Sprintf("column %s is %s, want %s", e.Column, e.Kind, e.Want)
}

// requireColumns fails on the first name the table does not hold.
func requireColumns(t *frame.Table, cols []string) error {
	for _, name := range cols {
		if !t.HasColumn(name) {
			return &ColumnNotFoundError{Column: name}
		}
	}
	return nil
}
