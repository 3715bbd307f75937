// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heartlens/matrix"
)

var (
	// ErrNoRecords is returned by Extract for an empty record set.
	ErrNoRecords = errors.New("features: no records")

	// ErrNoFeatures is returned by Extract for an empty feature list.
	ErrNoFeatures = errors.New("features: no features selected")
)

// Extract projects records onto fs and returns an N×F feature matrix whose
// row i is records[i] and whose column j is fs[j].
//
// Implementation:
//   - Stage 1: reject empty inputs.
//   - Stage 2: fill a row-major table in i→j order.
//   - Stage 3: hand it to matrix.NewDenseFromRows, which enforces the finite-only policy.
//
// Errors:
//   - ErrNoRecords, ErrNoFeatures; matrix.ErrNaNInf for a non-finite attribute.
//
// Complexity:
//   - Time O(N*F), Space O(N*F).
func Extract(records []Record, fs []Feature) (*matrix.Dense, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if len(fs) == 0 {
		return nil, ErrNoFeatures
	}

	table := make([][]float64, len(records))
	for i, r := range records {
		row := make([]float64, len(fs))
		for j, f := range fs {
			row[j] = f.Get(r)
		}
		table[i] = row
	}

	X, err := matrix.NewDenseFromRows(table)
	if err != nil {
		return nil, fmt.Errorf("features: extract: %w", err)
	}

	return X, nil
}
