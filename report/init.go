// SPDX-License-Identifier: MIT

// Package report renders an analysis.Report as a self-contained HTML page of
// go-echarts charts: the PCA scatter, a cluster profile radar, the cluster
// proportion pie and stacked bars for age band, sex and chest-pain type.
//
// Call Init once at startup before rendering. Init is idempotent: the first
// call fixes the theme, assets host and palette for the process.
package report

import (
	"errors"
	"sync"

	"github.com/go-echarts/go-echarts/v2/types"
)

// ErrNotInitialized is returned by the render functions before Init.
var ErrNotInitialized = errors.New("report: Init has not been called")

// Settings are the process-wide chart settings fixed by Init.
type Settings struct {
	Theme      string   // go-echarts theme name
	AssetsHost string   // echarts JS host; empty keeps the go-echarts default
	Palette    []string // series colors, cycled per cluster
}

// DefaultSettings returns the westeros theme with a five-color palette.
func DefaultSettings() Settings {
	return Settings{
		Theme:   types.ThemeWesteros,
		Palette: []string{"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6"},
	}
}

var (
	initOnce sync.Once
	mu       sync.RWMutex
	current  *Settings
)

// Init fixes the chart settings. Only the first call has an effect; empty
// fields fall back to DefaultSettings.
func Init(s Settings) {
	initOnce.Do(func() {
		def := DefaultSettings()
		if s.Theme == "" {
			s.Theme = def.Theme
		}
		if len(s.Palette) == 0 {
			s.Palette = def.Palette
		}
		s.Palette = append([]string(nil), s.Palette...)

		mu.Lock()
		current = &s
		mu.Unlock()
	})
}

// Initialized reports whether Init has run.
func Initialized() bool {
	mu.RLock()
	defer mu.RUnlock()

	return current != nil
}

// settings returns the active settings or ErrNotInitialized.
func settings() (Settings, error) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return Settings{}, ErrNotInitialized
	}

	return *current, nil
}
