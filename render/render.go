// SPDX-License-Identifier: MIT

// Package render draws matrices in the terminal: a diverging heatmap with a
// colorbar legend and a sparsity (spy) plot. Styling goes through lipgloss;
// glyph density also encodes magnitude so uncoloured output stays readable.
package render

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrEmpty is returned for nil inputs.
var ErrEmpty = errors.New("render: nothing to draw")

// Defaults.
const (
	DefaultCellWidth = 2
	DefaultMaxCells  = 64
)

// Diverging palette: negative → blue, zero → neutral, positive → red.
var (
	NegativeColor = lipgloss.Color("#2166ac")
	NeutralColor  = lipgloss.Color("#f7f7f7")
	PositiveColor = lipgloss.Color("#b2182b")
	MutedColor    = lipgloss.Color("#8a8a8a")
)

// shades are indexed by magnitude level 0..4.
var shades = []string{" ", "░", "▒", "▓", "█"}

// Option tunes Heatmap and Spy.
type Option func(*options)

type options struct {
	title     string
	cellWidth int
	maxCells  int
	renderer  *lipgloss.Renderer
}

func gather(opts []Option) options {
	o := options{cellWidth: DefaultCellWidth, maxCells: DefaultMaxCells, renderer: lipgloss.DefaultRenderer()}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// WithTitle prints a bold title line above the plot.
func WithTitle(title string) Option { return func(o *options) { o.title = title } }

// WithCellWidth sets the width of one heatmap cell in columns. Panics on w < 1.
func WithCellWidth(w int) Option {
	if w < 1 {
		panic("render: WithCellWidth: w must be >= 1")
	}

	return func(o *options) { o.cellWidth = w }
}

// WithMaxCells caps rows and columns; larger inputs are downsampled by blocks.
// Panics on n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("render: WithMaxCells: n must be >= 1")
	}

	return func(o *options) { o.maxCells = n }
}

// WithRenderer selects the lipgloss renderer (and so the colour profile).
func WithRenderer(r *lipgloss.Renderer) Option { return func(o *options) { o.renderer = r } }

// blocks splits n items into at most limit contiguous groups and returns the
// group boundaries (len = groups+1).
func blocks(n, limit int) []int {
	groups := n
	if groups > limit {
		groups = limit
	}
	size := (n + groups - 1) / groups
	var out []int
	for start := 0; start < n; start += size {
		out = append(out, start)
	}

	return append(out, n)
}
