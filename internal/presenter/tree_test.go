package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/ui"
)

func TestTreeBeforeDumpIsEmptyShell(t *testing.T) {
	p := New(nil)
	tree := p.Tree(nil)
	require.NotNil(t, tree)
	assert.Equal(t, "", tree.Header.Title.Text)
}

func TestTreeNavRowsCarryHeaderAndPositions(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	p.HandleKey("j")

	tree := p.Tree([]ui.FooterRowConfig{{Kind: ui.FooterTotal}})
	require.NotNil(t, tree)
	assert.Equal(t, "Game - Any%", tree.Header.Title.Text)
	assert.Equal(t, "Attempt 0/1", tree.Header.Counter.Text)
	require.Len(t, p.Mirror.Splits, 2)

	rows := tree.Splits.Widgets()
	require.Len(t, rows, 2)
	assert.Equal(t, ui.RoleName{Position: ui.RowDone}, rows[0].(*ui.SplitRow).Name.Role)
	assert.Equal(t, ui.RoleName{Position: ui.RowCursor}, rows[1].(*ui.SplitRow).Name.Role)
}

func TestTreeEditorRowShowsFieldOverlay(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	p.HandleKey("s")
	p.HandleKey("5")

	ed, ok := p.Mode.(Editor)
	require.True(t, ok)
	text, role := p.splitValue(ed.Index, p.Mirror.Splits[ed.Index], ed, true)
	assert.Contains(t, text, "[5]")
	_, isFieldRole := role.(ui.RoleFieldEditor)
	assert.True(t, isFieldRole)
}

func TestTreeFooterReportsDashWithNoTotalYet(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())

	text, _ := p.footerValue(ui.FooterTotal)
	assert.Equal(t, "-", text)
}

func TestStatusTextNamesModeAndPosition(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	assert.Equal(t, "Nav 1/2", p.statusText())
}
