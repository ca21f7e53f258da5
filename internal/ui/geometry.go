// Package ui implements the render-agnostic widget tree and two-pass
// layout the presenter emits (spec §4.J): a header, a vertically stacked
// list of split rows, a configurable footer, and a status bar, each
// computing a minimum size before being assigned actual bounds by its
// parent. No widget here touches a terminal or GUI library directly — that
// is the renderer's concern (SPEC_FULL §4.K).
package ui

// Axis is the direction a Stack arranges its children along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Normal returns the axis perpendicular to a.
func (a Axis) Normal() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Point is a cell position, (0,0) at the top-left.
type Point struct{ X, Y int }

// Size is a widget's extent in cells.
type Size struct{ W, H int }

// Rect is a widget's bounding box.
type Rect struct {
	Pos  Point
	Size Size
}

// IsZero reports whether r has no area (spec's stack.rs marks a
// zero-bounds child invisible rather than rendering a degenerate widget).
func (r Rect) IsZero() bool { return r.Size.W == 0 || r.Size.H == 0 }

// Context is what a widget lays out into: just the bounding box it was
// given by its parent. The original carries font metrics here too; this
// package is cell-based (one rune per cell), so no font metrics are
// needed until a renderer maps cells onto pixels (SPEC_FULL §4.K).
type Context struct {
	Bounds Rect
}

// WithBounds returns a copy of c with a new bounding box.
func (c Context) WithBounds(b Rect) Context {
	return Context{Bounds: b}
}

func along(axis Axis, s Size) int {
	if axis == AxisHorizontal {
		return s.W
	}
	return s.H
}

func across(axis Axis, s Size) int {
	return along(axis.Normal(), s)
}

func sizeFor(axis Axis, length, perp int) Size {
	if axis == AxisHorizontal {
		return Size{W: length, H: perp}
	}
	return Size{W: perp, H: length}
}

func stackSize(axis Axis, a, b Size) Size {
	total := along(axis, a) + along(axis, b)
	perp := across(axis, a)
	if p := across(axis, b); p > perp {
		perp = p
	}
	return sizeFor(axis, total, perp)
}

func advance(axis Axis, p Point, length int) Point {
	if axis == AxisHorizontal {
		p.X += length
	} else {
		p.Y += length
	}
	return p
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
