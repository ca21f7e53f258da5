package gocui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/presenter"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/ui"
)

func sampleDump() session.Dump {
	return session.Dump{
		Target: attempt.Target{GameName: "Game", CategoryName: "Any%"},
		Info:   attempt.Info{Total: 1, Completed: 0},
		Splits: []session.DumpSplit{
			{Def: attempt.Definition{Short: attempt.Intern("a"), Display: "Split A"}},
			{Def: attempt.Definition{Short: attempt.Intern("b"), Display: "Split B"}},
		},
	}
}

func TestRenderLinesIncludesHeaderAndSplits(t *testing.T) {
	p := presenter.New(nil)
	p.OnDump(sampleDump())
	tree := p.Tree(nil)
	tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: 40, H: 10}}})

	lines := renderLines(tree)
	joined := strings.Join(lines, "\n")
	assert.True(t, strings.Contains(joined, "Game - Any%"))
	assert.True(t, strings.Contains(joined, "Split A"))
	assert.True(t, strings.Contains(joined, "Split B"))
	assert.True(t, strings.Contains(joined, "Nav 1/2"))
}

func TestRenderLinesOneLinePerWidgetRow(t *testing.T) {
	p := presenter.New(nil)
	p.OnDump(sampleDump())
	tree := p.Tree([]ui.FooterRowConfig{{Kind: ui.FooterTotal}})
	tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: 40, H: 10}}})

	lines := renderLines(tree)
	// header + 2 splits + 1 footer row + status
	assert.Len(t, lines, 5)
}
