package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackZeroRatioChildrenGetMinimumSize(t *testing.T) {
	s := NewStack[Widget](AxisVertical)
	s.Push(Widget(NewLabel("header", RoleHeader{})), 0)
	s.Push(Widget(NewLabel("body", RoleNormal{})), 1)
	s.Push(Widget(NewLabel("status", RoleStatus{})), 0)

	s.Layout(Context{Bounds: Rect{Size: Size{W: 20, H: 10}}})

	header := s.entries[0].widget.Bounds()
	body := s.entries[1].widget.Bounds()
	status := s.entries[2].widget.Bounds()

	assert.Equal(t, 1, header.Size.H)
	assert.Equal(t, 1, status.Size.H)
	assert.Equal(t, 8, body.Size.H, "the single ratio'd child absorbs the remainder")
	assert.Equal(t, 0, header.Pos.Y)
	assert.Equal(t, 1, body.Pos.Y)
	assert.Equal(t, 9, status.Pos.Y)
}

func TestStackDividesRemainderByRatioSum(t *testing.T) {
	s := NewStack[Widget](AxisHorizontal)
	a := NewLabel("", RoleNormal{})
	b := NewLabel("", RoleNormal{})
	s.Push(Widget(a), 1)
	s.Push(Widget(b), 3)

	s.Layout(Context{Bounds: Rect{Size: Size{W: 40, H: 1}}})

	assert.Equal(t, 10, a.Bounds().Size.W)
	assert.Equal(t, 30, b.Bounds().Size.W, "last child absorbs rounding remainder")
}

func TestStackMinBoundsIsMaxPerpendicularSumAlongAxis(t *testing.T) {
	s := NewStack[Widget](AxisVertical)
	s.Push(Widget(NewLabel("short", RoleNormal{})), 0)
	s.Push(Widget(NewLabel("a longer label", RoleNormal{})), 0)

	got := s.MinBounds(Context{})
	assert.Equal(t, 2, got.H)
	assert.Equal(t, len("a longer label"), got.W)
}

func TestStackEmptyLayoutDoesNotPanic(t *testing.T) {
	s := NewStack[Widget](AxisVertical)
	assert.NotPanics(t, func() {
		s.Layout(Context{Bounds: Rect{Size: Size{W: 10, H: 10}}})
	})
}
