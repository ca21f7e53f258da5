package ui

// stackEntry pairs a child widget with its layout ratio and last computed
// minimum size (grounded on original_source's ui/view/widget/stack.rs
// Entry).
type stackEntry[W Widget] struct {
	widget    W
	minBounds Size
	ratio     int
}

// Stack distributes leftover space along one axis according to per-child
// integer ratios: zero-ratio children receive exactly their minimum size,
// and the remainder is divided among the rest proportional to ratio (spec
// §4.J). Grounded on original_source's ui/view/widget/stack.rs Stack<W>;
// Go's interface values let this be a plain homogeneous container of
// Widget without the Rust source's Component enum workaround for avoiding
// a trait object.
type Stack[W Widget] struct {
	Axis    Axis
	bounds  Rect
	entries []*stackEntry[W]
}

// NewStack builds an empty stack with the given orientation.
func NewStack[W Widget](axis Axis) *Stack[W] {
	return &Stack[W]{Axis: axis}
}

// Push appends a child widget with its ratio (0 = minimum size only).
func (s *Stack[W]) Push(w W, ratio int) {
	s.entries = append(s.entries, &stackEntry[W]{widget: w, ratio: ratio})
}

// Widgets returns the stack's children in display order, so a renderer can
// walk the tree without this package exposing its internal entry type.
func (s *Stack[W]) Widgets() []W {
	out := make([]W, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.widget
	}
	return out
}

// MinBounds is the stacked minimum size of every child along Axis, and the
// largest perpendicular extent across them.
func (s *Stack[W]) MinBounds(ctx Context) Size {
	var total Size
	for _, e := range s.entries {
		total = stackSize(s.Axis, total, e.widget.MinBounds(ctx))
	}
	return total
}

// Bounds returns the bounding box set by the last Layout call.
func (s *Stack[W]) Bounds() Rect { return s.bounds }

// Layout assigns ctx.Bounds to the stack, then lays out each child: every
// zero-ratio child gets its minimum size, and the remaining space is
// divided among ratio'd children proportional to their ratio, with the
// final child absorbing whatever is left over (so rounding never leaves a
// visible gap).
func (s *Stack[W]) Layout(ctx Context) {
	s.bounds = ctx.Bounds
	if len(s.entries) == 0 {
		return
	}

	ratioSum := 0
	occupied := 0
	for _, e := range s.entries {
		e.minBounds = e.widget.MinBounds(ctx)
		if e.ratio == 0 {
			occupied += along(s.Axis, e.minBounds)
		} else {
			ratioSum += e.ratio
		}
	}

	total := along(s.Axis, s.bounds.Size)
	gap := total - occupied
	if gap < 0 {
		gap = 0
	}
	perRatio := 0
	if ratioSum > 0 {
		perRatio = gap / ratioSum
	}

	perp := across(s.Axis, s.bounds.Size)
	pos := s.bounds.Pos
	remaining := total

	for i, e := range s.entries {
		last := i == len(s.entries)-1

		var length int
		switch {
		case last:
			length = remaining
		case e.ratio == 0:
			length = along(s.Axis, e.minBounds)
		default:
			length = e.ratio * perRatio
		}
		length = clamp(length, 0, remaining)

		e.widget.Layout(ctx.WithBounds(Rect{Pos: pos, Size: sizeFor(s.Axis, length, perp)}))
		pos = advance(s.Axis, pos, length)
		remaining -= length
	}
}
