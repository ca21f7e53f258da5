package presenter

import (
	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Mirror is the client's local copy of session state, rebuilt from the
// initial DumpResponse and kept current by applying incoming session
// events (spec §4.I "Events received from the server are applied to a
// local mirror of session state; modal logic only reads this mirror").
type Mirror struct {
	Target     attempt.Target
	Info       attempt.Info
	Splits     []session.DumpSplit
	Comparison comparison.Comparison
	Notes      map[attempt.ShortName]session.Note
	Total      *session.RunTotal
	Paces      map[attempt.ShortName]comparison.SplitInRunPace

	indexOf map[attempt.ShortName]int
}

// NewMirror builds a Mirror from a full state dump.
func NewMirror(d session.Dump) *Mirror {
	idx := make(map[attempt.ShortName]int, len(d.Splits))
	for i, s := range d.Splits {
		idx[s.Def.Short] = i
	}
	return &Mirror{
		Target:     d.Target,
		Info:       d.Info,
		Splits:     d.Splits,
		Comparison: d.Comparison,
		Notes:      d.Notes,
		Total:      d.Total,
		Paces:      make(map[attempt.ShortName]comparison.SplitInRunPace, len(d.Splits)),
		indexOf:    idx,
	}
}

// SplitCount reports how many splits the mirror currently tracks.
func (m *Mirror) SplitCount() int { return len(m.Splits) }

// Apply folds one incoming session.Event into the mirror.
func (m *Mirror) Apply(ev session.Event) {
	switch e := ev.(type) {
	case session.TotalEvent:
		m.applyTotal(e)
	case session.ResetEvent:
		m.Info = e.Info
		for i := range m.Splits {
			m.Splits[i].Times = nil
		}
		m.Notes = map[attempt.ShortName]session.Note{}
		m.Total = nil
	case session.SplitEvent:
		m.applySplit(e)
	}
}

func (m *Mirror) applyTotal(e session.TotalEvent) {
	switch v := e.Variant.(type) {
	case session.TotalAttempt:
		if e.Time == nil {
			m.Total = nil
			return
		}
		m.Total = &session.RunTotal{Delta: v.Delta, Time: *e.Time}
	case session.TotalComparison:
		switch v.Kind {
		case session.TotalInPbRun:
			m.Comparison.Run.HasTotal = e.Time != nil
			if e.Time != nil {
				m.Comparison.Run.TotalInPbRun = *e.Time
			}
		case session.SumOfBest:
			m.Comparison.Run.HasSumOfBest = e.Time != nil
			if e.Time != nil {
				m.Comparison.Run.SumOfBest = *e.Time
			}
		}
	}
}

func (m *Mirror) applySplit(e session.SplitEvent) {
	i, ok := m.indexOf[e.Short]
	if !ok {
		return
	}
	switch p := e.Payload.(type) {
	case session.SplitTimeEvent:
		switch p.Kind {
		case session.Pushed:
			m.Splits[i].Times = append(m.Splits[i].Times, p.Time)
			note := m.Notes[e.Short]
			note.Attempt.Split = p.Time
			note.Attempt.Cumulative = timeval.Sum(m.Splits[i].Times)
			m.Notes[e.Short] = note
		case session.AggregateAttemptSplit:
			note := m.Notes[e.Short]
			note.Attempt.Split = p.Time
			m.Notes[e.Short] = note
		case session.AggregateAttemptCumulative:
			note := m.Notes[e.Short]
			note.Attempt.Cumulative = p.Time
			m.Notes[e.Short] = note
		case session.AggregateComparisonSplit, session.AggregateComparisonCumulative:
			// Comparison-sourced aggregate refresh; the comparison block
			// itself is only replaced wholesale via a fresh dump, so these
			// are no-ops against this mirror shape.
		}
	case session.SplitPaceEvent:
		m.Paces[e.Short] = p.Pace
	case session.SplitPoppedEvent:
		switch p.Kind {
		case session.PopAll:
			m.Splits[i].Times = nil
		case session.PopOne:
			if n := len(m.Splits[i].Times); n > 0 {
				m.Splits[i].Times = m.Splits[i].Times[:n-1]
			}
		}
		note := m.Notes[e.Short]
		note.Attempt = aggregate.Set{Cumulative: timeval.Sum(m.Splits[i].Times)}
		if len(m.Splits[i].Times) > 0 {
			note.Attempt.Split = m.Splits[i].Times[len(m.Splits[i].Times)-1]
		}
		m.Notes[e.Short] = note
	}
}
