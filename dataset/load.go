// SPDX-License-Identifier: MIT

// Package dataset reads heart-disease records from header-keyed CSV.
//
// Cleaning rules, applied in file order:
//   - a row whose target cell is empty is dropped;
//   - an exact duplicate of an earlier kept row is dropped (first occurrence wins);
//   - columns not named in features.All are ignored.
//
// Every other cell must parse as a finite number.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heartlens/features"
)

var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrParse indicates a malformed row or cell; the wrapping error carries the line.
	ErrParse = errors.New("dataset: parse error")

	// ErrNoHeader indicates an empty input.
	ErrNoHeader = errors.New("dataset: no header row")
)

// Stats reports what Load discarded.
type Stats struct {
	Rows          int // data rows read
	MissingTarget int
	Duplicates    int
}

// binding maps one CSV column index onto a Record field.
type binding struct {
	col     int
	feature features.Feature
}

// Load parses r and returns the cleaned records in file order.
//
// Errors:
//   - ErrNoHeader, ErrMissingColumn (wrapping the column name), ErrParse
//     (wrapping the line number and cause).
func Load(r io.Reader) ([]features.Record, Stats, error) {
	var st Stats
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, st, ErrNoHeader
	}
	if err != nil {
		return nil, st, fmt.Errorf("%w: header: %w", ErrParse, err)
	}
	binds, targetCol, err := bind(header)
	if err != nil {
		return nil, st, err
	}

	out := make([]features.Record, 0, 256)
	seen := make(map[features.Record]struct{}, 256)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("%w: %w", ErrParse, err)
		}
		st.Rows++
		line, _ := cr.FieldPos(0)

		if strings.TrimSpace(row[targetCol]) == "" {
			st.MissingTarget++
			continue
		}
		var rec features.Record
		for _, b := range binds {
			cell := strings.TrimSpace(row[b.col])
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, st, fmt.Errorf("%w: line %d: column %q: invalid number %q", ErrParse, line, b.feature.Name, cell)
			}
			b.feature.Set(&rec, v)
		}

		if _, dup := seen[rec]; dup {
			st.Duplicates++
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}

	return out, st, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]features.Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// bind resolves every column of features.All against the header.
func bind(header []string) ([]binding, int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}

	binds := make([]binding, 0, len(features.All))
	target := -1
	for _, f := range features.All {
		col, ok := index[f.Name]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrMissingColumn, f.Name)
		}
		if f.Name == features.Target.Name {
			target = col
		}
		binds = append(binds, binding{col: col, feature: f})
	}

	return binds, target, nil
}
