// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// longformat.go — CSV edge lists ("long format").
//
// Layout:
//   - Header Source,Target,Value, plus Matrix when more than one matrix is stored.
//   - One row per stored edge in condensed order: i<j for symmetric types,
//     every i≠j for Directed. Source and Target are node labels.
//   - Values are written with the shortest representation that parses back
//     to the identical float64, so write-then-read is exact.
//
// Reading:
//   - _flat types take each matrix's Value column in file order as its
//     condensed vector.
//   - Other types rebuild squares from Source/Target labels; symmetric types
//     mirror each entry. Without a type, a file listing each node pair in one
//     direction only is mirrored too, and the usual inference applies.

package adjacency

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/relnet/matrix"
)

const (
	colSource = "Source"
	colTarget = "Target"
	colValue  = "Value"
	colMatrix = "Matrix"
)

// WriteLong writes every stored matrix as long-format CSV.
// Errors: ErrEmpty, or the writer's error.
func (a *Adjacency) WriteLong(w io.Writer) error {
	const op = "WriteLong"
	if err := a.requireData(op); err != nil {
		return err
	}
	multi := a.Len() > 1
	cw := csv.NewWriter(w)
	header := []string{colSource, colTarget, colValue}
	if multi {
		header = append(header, colMatrix)
	}
	if err := cw.Write(header); err != nil {
		return opErrorf(op, err)
	}

	labels := a.Labels()
	sym := a.IsSymmetric()
	record := make([]string, len(header))
	var row []float64
	var off int
	for m := 0; m < a.Len(); m++ {
		row, _ = a.data.RowView(m)
		off = 0
		for i := 0; i < a.side; i++ {
			for j := 0; j < a.side; j++ {
				if i == j || (sym && j < i) {
					continue
				}
				record[0], record[1] = labels[i], labels[j]
				record[2] = strconv.FormatFloat(row[off], 'g', -1, 64)
				if multi {
					record[3] = strconv.Itoa(m)
				}
				off++
				if err := cw.Write(record); err != nil {
					return opErrorf(op, err)
				}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return opErrorf(op, err)
	}

	return nil
}

// WriteFile writes long-format CSV to path, creating or truncating it.
func (a *Adjacency) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return opErrorf("WriteFile", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = opErrorf("WriteFile", cerr)
		}
	}()

	return a.WriteLong(f)
}

// Load reads a long-format CSV file; see ReadLong.
func Load(path string, opts ...BuildOption) (*Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, opErrorf("Load", err)
	}
	defer f.Close()

	return ReadLong(f, opts...)
}

// longEdge is one parsed CSV row.
type longEdge struct {
	source, target string
	value          float64
}

// ReadLong parses long-format CSV. Column names are matched case-insensitively
// and may appear in any order; Matrix is optional and must hold integers.
// Matrices are ordered by their Matrix index.
//
// Errors:
//   - ErrLongFormat (missing columns, bad numbers, empty input, a square
//     entry given twice), plus every FromVectors/FromMatrices error.
func ReadLong(r io.Reader, opts ...BuildOption) (*Adjacency, error) {
	const op = "ReadLong"
	cfg := newBuildConfig(opts)
	if cfg.mtype != "" {
		if err := cfg.mtype.Validate(); err != nil {
			return nil, opErrorf(op, err)
		}
	}

	groups, err := readLongGroups(r)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	labels := firstAppearance(groups[0])

	if cfg.mtype.IsFlat() {
		vs := make([][]float64, len(groups))
		for m, g := range groups {
			vs[m] = make([]float64, len(g))
			for i, e := range g {
				vs[m][i] = e.value
			}
		}
		k, err := SideFromEdges(len(vs[0]), cfg.mtype.IsSymmetric())
		if err == nil && len(cfg.labels) == 0 && len(labels) == k {
			opts = append(opts, WithLabels(labels))
		}
		return FromVectors(vs, opts...)
	}

	// Square rebuild: labels from the first matrix define node order.
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	k := len(labels)
	symmetric := cfg.mtype.IsSymmetric()
	if cfg.mtype == "" {
		symmetric = oneTriangle(groups[0])
	}
	ms := make([]matrix.Matrix, len(groups))
	for m, g := range groups {
		sq, err := matrix.NewDense(k, k)
		if err != nil {
			return nil, opErrorf(op, fmt.Errorf("%v: %w", err, ErrLongFormat))
		}
		seen := make(map[[2]int]struct{}, len(g))
		var row []float64
		for _, e := range g {
			i, okI := index[e.source]
			j, okJ := index[e.target]
			if !okI || !okJ {
				return nil, opErrorf(op, fmt.Errorf("matrix %d: unknown node in %s→%s: %w", m, e.source, e.target, ErrLongFormat))
			}
			if _, dup := seen[[2]int{i, j}]; dup {
				return nil, opErrorf(op, fmt.Errorf("matrix %d: duplicate entry %s→%s: %w", m, e.source, e.target, ErrLongFormat))
			}
			seen[[2]int{i, j}] = struct{}{}
			row, _ = sq.RowView(i)
			row[j] = e.value
			if symmetric {
				row, _ = sq.RowView(j)
				row[i] = e.value
			}
		}
		ms[m] = sq
	}
	if len(cfg.labels) == 0 {
		opts = append(opts, WithLabels(labels))
	}

	return FromMatrices(ms, opts...)
}

// readLongGroups parses the CSV into per-matrix edge lists ordered by index.
func readLongGroups(r io.Reader) ([][]longEdge, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header: %w", ErrLongFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrLongFormat)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	src, okS := cols[strings.ToLower(colSource)]
	tgt, okT := cols[strings.ToLower(colTarget)]
	val, okV := cols[strings.ToLower(colValue)]
	mat, okM := cols[strings.ToLower(colMatrix)]
	if !okS || !okT || !okV {
		return nil, fmt.Errorf("header %v lacks Source/Target/Value: %w", header, ErrLongFormat)
	}

	byMatrix := map[int][]longEdge{}
	var line int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("row %d: %v: %w", line, err, ErrLongFormat)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[val]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: value %q: %w", line, rec[val], ErrLongFormat)
		}
		m := 0
		if okM {
			if m, err = strconv.Atoi(strings.TrimSpace(rec[mat])); err != nil || m < 0 {
				return nil, fmt.Errorf("row %d: matrix %q: %w", line, rec[mat], ErrLongFormat)
			}
		}
		byMatrix[m] = append(byMatrix[m], longEdge{source: rec[src], target: rec[tgt], value: v})
	}
	if len(byMatrix) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrLongFormat)
	}

	keys := make([]int, 0, len(byMatrix))
	for m := range byMatrix {
		keys = append(keys, m)
	}
	sort.Ints(keys)
	groups := make([][]longEdge, len(keys))
	for i, m := range keys {
		groups[i] = byMatrix[m]
	}

	return groups, nil
}

// firstAppearance lists node labels in order of first appearance, Source before Target.
func firstAppearance(edges []longEdge) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(l string) {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	for _, e := range edges {
		add(e.source)
		add(e.target)
	}

	return out
}

// oneTriangle reports whether no node pair is listed in both directions.
func oneTriangle(edges []longEdge) bool {
	pairs := make(map[[2]string]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := pairs[[2]string{e.target, e.source}]; ok {
			return false
		}
		pairs[[2]string{e.source, e.target}] = struct{}{}
	}

	return true
}
