package presenter

import (
	"fmt"

	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
	"github.com/nictuku/splitrun/internal/ui"
)

// Tree builds the widget tree for the presenter's current mode and mirror
// (spec §4.J; "the presenter emits a tree of layout-described widgets",
// SPEC_FULL §4.K "the presenter emits a ui.Tree"). footerRows names which
// quantities the footer displays, in display order — callers typically
// read this once from config at startup (internal/config).
func (p *Presenter) Tree(footerRows []ui.FooterRowConfig) *ui.Tree {
	if p.Mirror == nil {
		return ui.NewRoot(
			ui.NewHeader("", ""),
			ui.NewStack[ui.Widget](ui.AxisVertical),
			ui.NewFooter(nil),
			ui.NewStatusBar(""),
		)
	}
	return ui.NewRoot(
		ui.NewHeader(p.headerTitle(), p.headerCounter()),
		p.splitStack(),
		p.footer(footerRows),
		ui.NewStatusBar(p.statusText()),
	)
}

func (p *Presenter) headerTitle() string {
	return fmt.Sprintf("%s - %s", p.Mirror.Target.GameName, p.Mirror.Target.CategoryName)
}

func (p *Presenter) headerCounter() string {
	return fmt.Sprintf("Attempt %d/%d", p.Mirror.Info.Completed, p.Mirror.Info.Total)
}

// cursorFor returns the cursor of whichever mode currently holds one, so
// the tree builder and the status line agree on position without
// duplicating the mode switch.
func (p *Presenter) cursorFor() Cursor {
	switch m := p.Mode.(type) {
	case Nav:
		return m.Cursor
	case Editor:
		return m.Cur
	default:
		return NewCursor(len(p.Mirror.Splits) - 1)
	}
}

func rowPosition(split SplitPosition) ui.RowPosition {
	switch split {
	case AtCursor:
		return ui.RowCursor
	case Done:
		return ui.RowDone
	default:
		return ui.RowComing
	}
}

func (p *Presenter) splitStack() *ui.Stack[ui.Widget] {
	s := ui.NewStack[ui.Widget](ui.AxisVertical)
	cursor := p.cursorFor()
	ed, editing := p.Mode.(Editor)
	for i, split := range p.Mirror.Splits {
		pos := rowPosition(cursor.SplitAt(i))
		value, role := p.splitValue(i, split, ed, editing)
		s.Push(ui.Widget(ui.NewSplitRow(split.Def.Display, pos, value, role)), 0)
	}
	return s
}

func (p *Presenter) splitValue(i int, split session.DumpSplit, ed Editor, editing bool) (string, ui.ColorRole) {
	if editing && ed.Index == i {
		text := ed.Time.String()
		if ed.Field != nil {
			text = fmt.Sprintf("%s[%s]", text, ed.Field.String())
			return text, ui.RoleFieldEditor{}
		}
		return text, ui.RoleEditor{}
	}
	cumulative := timeval.Sum(split.Times)
	return cumulative.String(), ui.RoleSplitInRunPace{Pace: p.Mirror.Paces[split.Def.Short]}
}

func (p *Presenter) footer(rows []ui.FooterRowConfig) *ui.Footer {
	out := make([]*ui.FooterRow, 0, len(rows))
	for _, cfg := range rows {
		text, pace := p.footerValue(cfg.Kind)
		out = append(out, ui.NewFooterRow(cfg, text, ui.RolePace{Pace: pace}))
	}
	return ui.NewFooter(out)
}

func (p *Presenter) footerValue(kind ui.FooterRowKind) (string, comparison.Pace) {
	switch kind {
	case ui.FooterTotal:
		if p.Mirror.Total == nil {
			return "-", comparison.Inconclusive
		}
		return p.Mirror.Total.Time.String(), p.Mirror.Total.Delta.Pace
	case ui.FooterComparison:
		if !p.Mirror.Comparison.Run.HasTotal {
			return "-", comparison.Inconclusive
		}
		return p.Mirror.Comparison.Run.TotalInPbRun.String(), comparison.Inconclusive
	case ui.FooterSumOfBest:
		if !p.Mirror.Comparison.Run.HasSumOfBest {
			return "-", comparison.Inconclusive
		}
		return p.Mirror.Comparison.Run.SumOfBest.String(), comparison.Inconclusive
	case ui.FooterUpToCursor:
		return p.upToCursor()
	default:
		return "-", comparison.Inconclusive
	}
}

func (p *Presenter) upToCursor() (string, comparison.Pace) {
	idx := p.cursorFor().Position()
	if idx < 0 || idx >= len(p.Mirror.Splits) {
		return "-", comparison.Inconclusive
	}
	return timeval.Sum(p.Mirror.Splits[idx].Times).String(), comparison.Inconclusive
}

func (p *Presenter) statusText() string {
	cursor := p.cursorFor()
	return fmt.Sprintf("%s %d/%d", p.modeName(), cursor.Position()+1, cursor.Max()+1)
}

func (p *Presenter) modeName() string {
	switch p.Mode.(type) {
	case Inactive:
		return "Inactive"
	case Nav:
		return "Nav"
	case Editor:
		return "Editor"
	case Quitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}
