package dataset

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/csv"
)

// Load reads the CSV file at path into a Table and validates that every
// column the mode requires is present. The whole file is read in one
// pass; any failure aborts the load with no partial table.
//
// Column types are inferred by the arrow CSV reader and coerced to
// float64. A required-or-present column that is not numeric fails the
// load with a ParseError.
func Load(path string, mode Mode) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, hasRows, err := scanHeader(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// A run that produced zero universes writes only the header. The
	// arrow reader cannot infer types from zero rows, so validate the
	// schema from the header and hand back an empty table; the filter
	// then rejects it with the empty-result diagnostic.
	if !hasRows {
		cols := make(map[string][]float64, len(header))
		for _, name := range header {
			cols[name] = nil
		}
		for _, req := range mode.RequiredColumns() {
			if _, ok := cols[req]; !ok {
				return nil, &SchemaError{Path: path, Column: req}
			}
		}
		return New(header, cols)
	}

	rdr := csv.NewInferringReader(bytes.NewReader(data),
		csv.WithHeader(true),
		csv.WithChunk(-1),
	)
	defer rdr.Release()

	var names []string
	cols := make(map[string][]float64)
	for rdr.Next() {
		rec := rdr.Record()
		if names == nil {
			for _, field := range rec.Schema().Fields() {
				names = append(names, field.Name)
			}
		}
		for i, field := range rec.Schema().Fields() {
			vals, err := columnFloat64(rec.Column(i))
			if err != nil {
				return nil, &ParseError{Path: path, Column: field.Name, Err: err}
			}
			cols[field.Name] = append(cols[field.Name], vals...)
		}
	}
	if err := rdr.Err(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	for _, req := range mode.RequiredColumns() {
		if _, ok := cols[req]; !ok {
			return nil, &SchemaError{Path: path, Column: req}
		}
	}

	return New(names, cols)
}

// scanHeader reads the header row and reports whether any data row
// follows it.
func scanHeader(data []byte) (header []string, hasRows bool, err error) {
	r := stdcsv.NewReader(bytes.NewReader(data))
	header, err = r.Read()
	if err != nil {
		return nil, false, fmt.Errorf("could not read header: %w", err)
	}
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return header, false, nil
		}
		return nil, false, err
	}
	return header, true, nil
}

// columnFloat64 copies an arrow column out as float64 values. Integer
// columns (the generation tags) are widened; anything non-numeric is an
// error.
func columnFloat64(col arrow.Array) ([]float64, error) {
	switch c := col.(type) {
	case *array.Float64:
		out := make([]float64, c.Len())
		for i := range out {
			out[i] = c.Value(i)
		}
		return out, nil
	case *array.Int64:
		out := make([]float64, c.Len())
		for i := range out {
			out[i] = float64(c.Value(i))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported column type %s", col.DataType())
	}
}
