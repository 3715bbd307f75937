// SPDX-License-Identifier: MIT

package report

import "sync"

// ResetForTest clears Init state so a test can observe the uninitialized path.
func ResetForTest() {
	mu.Lock()
	current = nil
	initOnce = sync.Once{}
	mu.Unlock()
}
