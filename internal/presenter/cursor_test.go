package presenter

import "testing"

import "github.com/stretchr/testify/assert"

func TestCursorMoveClampsAtBounds(t *testing.T) {
	c := NewCursor(2)
	assert.Equal(t, 0, c.Position())

	assert.Equal(t, 1, c.MoveDown(1))
	assert.Equal(t, 1, c.Position())

	assert.Equal(t, 1, c.MoveDown(5), "move past max returns amount actually moved")
	assert.Equal(t, 2, c.Position())

	assert.Equal(t, 2, c.MoveUp(5), "move past 0 returns amount actually moved")
	assert.Equal(t, 0, c.Position())
}

func TestCursorSplitAt(t *testing.T) {
	c := NewCursor(3)
	c.MoveDown(1)
	assert.Equal(t, Done, c.SplitAt(0))
	assert.Equal(t, AtCursor, c.SplitAt(1))
	assert.Equal(t, Coming, c.SplitAt(2))
}

func TestCursorAtClamps(t *testing.T) {
	c := NewCursor(3)
	assert.Equal(t, 3, c.At(10).Position())
	assert.Equal(t, 0, c.At(-1).Position())
}
