// SPDX-License-Identifier: MIT

package design

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a design from CSV: a header row of column labels followed by
// one numeric row per observation.
//
// Errors:
//   - ErrEmpty (no header or no data rows), ErrParse (non-numeric cell),
//     ErrColumns / ErrShape from New.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadCSV: %w", ErrEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]float64
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: %v: %w", line, err, ErrShape)
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("ReadCSV: line %d column %d %q: %w", line, j+1, cell, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}

	return m, nil
}

// WriteCSV writes the header and rows using the shortest exact float format.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(m.columns); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	n, p := m.Shape()
	rec := make([]string, p)
	var i, j int
	for i = 0; i < n; i++ {
		row, _ := m.data.RowView(i)
		for j = 0; j < p; j++ {
			rec[j] = strconv.FormatFloat(row[j], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
