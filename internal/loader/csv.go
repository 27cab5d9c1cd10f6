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
package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// Persist overwrites path with the table. The format follows the extension:
// .parquet, .xlsx, anything else is CSV.
func Persist(t *frame.Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Path: path, Msg: "failed to create directory", Err: err}
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return writeParquet(t, path)
	case ".xlsx":
		return writeXLSX(t, path)
	default:
		return writeCSV(t, path)
	}
}

// writeCSV writes a leading unnamed row-index column followed by every table column.
func writeCSV(t *frame.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Msg: "failed to create CSV file", Err: err}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := append([]string{""}, t.Names()...)
	if err := writer.Write(header); err != nil {
		return &IOError{Path: path, Msg: "failed to write CSV header", Err: err}
	}

	columns := t.Columns()
	record := make([]string, len(columns)+1)
	for row := 0; row < t.NumRows(); row++ {
		record[0] = strconv.Itoa(row)
		for i, c := range columns {
			record[i+1] = frame.FormatCell(c.Values[row])
		}
		if err := writer.Write(record); err != nil {
			return &IOError{Path: path, Msg: "failed to write CSV row", Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &IOError{Path: path, Msg: "failed to flush CSV", Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Path: path, Msg: "failed to close CSV file", Err: err}
	}
	return nil
}

// ReadCSV loads a CSV written by Persist. A leading unnamed column is taken as the row index
// and dropped. Every column is Text and empty cells are null.
func ReadCSV(path string) (*frame.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Msg: "failed to open CSV file", Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return frame.MustNew(), nil
		}
		return nil, &IOError{Path: path, Msg: "failed to read CSV header", Err: err}
	}

	skip := 0
	if len(header) > 0 && strings.TrimSpace(header[0]) == "" {
		skip = 1
	}
	names := header[skip:]
	values := make([][]any, len(names))

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &IOError{Path: path, Msg: "failed to read CSV row", Err: err}
		}
		for i := range names {
			var cell any
			if s := record[i+skip]; s != "" {
				cell = s
			}
			values[i] = append(values[i], cell)
		}
	}

	columns := make([]*frame.Column, len(names))
	for i, name := range names {
		columns[i] = &frame.Column{Name: name, Kind: frame.Text, Values: values[i]}
	}
	table, err := frame.New(columns...)
	if err != nil {
		return nil, &IOError{Path: path, Msg: "malformed CSV table", Err: err}
	}
	return table, nil
}
