package ui

// Widget is anything that can participate in two-pass layout (spec §4.J):
// first a minimum-size query relative to a parent context, then an actual
// bounds assignment. Rendering a Widget's content is entirely a renderer
// concern (SPEC_FULL §4.K) — this package only ever computes geometry.
type Widget interface {
	// MinBounds precalculates a minimal bounding size.
	MinBounds(ctx Context) Size
	// Layout calculates and stores this widget's actual bounds from ctx.
	Layout(ctx Context)
	// Bounds returns the bounding box set by the last call to Layout.
	Bounds() Rect
}
