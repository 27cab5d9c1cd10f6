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
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// arrowType maps a column kind onto the arrow type written to parquet.
func arrowType(kind frame.Kind) arrow.DataType {
	switch kind {
	case frame.Numeric:
		return arrow.PrimitiveTypes.Float64
	case frame.Timestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}
	default:
		return arrow.BinaryTypes.String
	}
}

func arrowRecord(t *frame.Table) arrow.Record {
	columns := t.Columns()
	fields := make([]arrow.Field, len(columns))
	for i, c := range columns {
		fields[i] = arrow.Field{Name: c.Name, Type: arrowType(c.Kind), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	for i, c := range columns {
		switch fb := b.Field(i).(type) {
		case *array.Float64Builder:
			for _, v := range c.Values {
				if f, ok := v.(float64); ok {
					fb.Append(f)
				} else {
					fb.AppendNull()
				}
			}
		case *array.TimestampBuilder:
			for _, v := range c.Values {
				if ts, ok := v.(time.Time); ok {
					fb.Append(arrow.Timestamp(ts.UnixMicro()))
				} else {
					fb.AppendNull()
				}
			}
		case *array.StringBuilder:
			for _, v := range c.Values {
				if v == nil {
					fb.AppendNull()
				} else {
					fb.Append(frame.FormatCell(v))
				}
			}
		}
	}
	return b.NewRecord()
}

func writeParquet(t *frame.Table, path string) error {
	rec := arrowRecord(t)
	defer rec.Release()

	table := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer table.Release()

	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Msg: "failed to create parquet file", Err: err}
	}
	defer file.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(table.Schema(), file, props, arrowProps)
	if err != nil {
		return &IOError{Path: path, Msg: "failed to create parquet writer", Err: err}
	}
	chunk := table.NumRows()
	if chunk == 0 {
		chunk = 1
	}
	if err := writer.WriteTable(table, chunk); err != nil {
		writer.Close()
		return &IOError{Path: path, Msg: "failed to write table to parquet", Err: err}
	}
	if err := writer.Close(); err != nil {
		return &IOError{Path: path, Msg: "failed to close parquet writer", Err: err}
	}
	return nil
}
