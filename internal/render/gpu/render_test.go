package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func sampleTree(footerRows []ui.FooterRowConfig) *ui.Tree {
	p := presenter.New(nil)
	p.OnDump(sampleDump())
	tree := p.Tree(footerRows)
	tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: 80, H: 24}}})
	return tree
}

func TestTotalLabelFindsConfiguredRow(t *testing.T) {
	tree := sampleTree([]ui.FooterRowConfig{{Kind: ui.FooterTotal}})

	got, ok := totalLabel(tree)
	require.True(t, ok)
	assert.NotEmpty(t, got)
}

func TestTotalLabelMissingRowIsNotOk(t *testing.T) {
	tree := sampleTree([]ui.FooterRowConfig{{Kind: ui.FooterComparison}})

	_, ok := totalLabel(tree)
	assert.False(t, ok)
}
