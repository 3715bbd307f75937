// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes the private ew* kernels to matrix_test so the
// *Dense fast paths can be checked against the At-based fallbacks.
var (
	EwBroadcastSubCols_TestOnly = ewBroadcastSubCols
	EwBroadcastSubRows_TestOnly = ewBroadcastSubRows
	EwScaleCols_TestOnly        = ewScaleCols
)
