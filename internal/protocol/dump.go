package protocol

import (
	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Version is the server's own major.minor.patch, carried in every dump
// (spec §6 "Server identifier and version").
type Version struct {
	Major, Minor, Patch uint16
}

// DumpResponse is the complete initial message a client receives on
// connect, or in answer to a Dump action (spec §4.G, §6). It wraps a
// session.Dump with the server identity the wire format additionally
// carries.
type DumpResponse struct {
	ServerIdent string
	Version     Version
	Dump        session.Dump
}

func attemptInfo(total, completed uint32) attempt.Info {
	return attempt.Info{Total: int(total), Completed: int(completed)}
}

func encodeAggregateSet(e *encoder, s aggregate.Set) {
	e.time(s.Split)
	e.time(s.Cumulative)
}

func decodeAggregateSet(d *decoder, field string) (aggregate.Set, error) {
	split, err := d.timeField(field + ".split")
	if err != nil {
		return aggregate.Set{}, err
	}
	cumulative, err := d.timeField(field + ".cumulative")
	if err != nil {
		return aggregate.Set{}, err
	}
	return aggregate.Set{Split: split, Cumulative: cumulative}, nil
}

func encodeSplitRecord(e *encoder, r comparison.SplitRecord) {
	e.bool(r.HasSplitPB)
	e.time(r.SplitPB)
	e.bool(r.HasInPbRun)
	encodeAggregateSet(e, r.InPbRun)
}

func decodeSplitRecord(d *decoder, field string) (comparison.SplitRecord, error) {
	hasSplitPB, err := d.boolField(field + ".has_split_pb")
	if err != nil {
		return comparison.SplitRecord{}, err
	}
	splitPB, err := d.timeField(field + ".split_pb")
	if err != nil {
		return comparison.SplitRecord{}, err
	}
	hasInPbRun, err := d.boolField(field + ".has_in_pb_run")
	if err != nil {
		return comparison.SplitRecord{}, err
	}
	inPbRun, err := decodeAggregateSet(d, field+".in_pb_run")
	if err != nil {
		return comparison.SplitRecord{}, err
	}
	return comparison.SplitRecord{HasSplitPB: hasSplitPB, SplitPB: splitPB, HasInPbRun: hasInPbRun, InPbRun: inPbRun}, nil
}

func encodeRunTotals(e *encoder, r comparison.RunTotals) {
	e.bool(r.HasTotal)
	e.time(r.TotalInPbRun)
	e.bool(r.HasSumOfBest)
	e.time(r.SumOfBest)
}

func decodeRunTotals(d *decoder, field string) (comparison.RunTotals, error) {
	hasTotal, err := d.boolField(field + ".has_total")
	if err != nil {
		return comparison.RunTotals{}, err
	}
	total, err := d.timeField(field + ".total_in_pb_run")
	if err != nil {
		return comparison.RunTotals{}, err
	}
	hasSumOfBest, err := d.boolField(field + ".has_sum_of_best")
	if err != nil {
		return comparison.RunTotals{}, err
	}
	sumOfBest, err := d.timeField(field + ".sum_of_best")
	if err != nil {
		return comparison.RunTotals{}, err
	}
	return comparison.RunTotals{HasTotal: hasTotal, TotalInPbRun: total, HasSumOfBest: hasSumOfBest, SumOfBest: sumOfBest}, nil
}

func encodeDeltaPair(e *encoder, dp comparison.DeltaPair) {
	encodeDelta(e, dp.Split)
	encodeDelta(e, dp.Cumulative)
}

func decodeDeltaPair(d *decoder, field string) (comparison.DeltaPair, error) {
	split, err := decodeDelta(d, field+".split")
	if err != nil {
		return comparison.DeltaPair{}, err
	}
	cumulative, err := decodeDelta(d, field+".cumulative")
	if err != nil {
		return comparison.DeltaPair{}, err
	}
	return comparison.DeltaPair{Split: split, Cumulative: cumulative}, nil
}

// EncodeDumpResponse encodes a full DumpResponse into a frame payload.
func EncodeDumpResponse(r DumpResponse) []byte {
	e := &encoder{}
	e.str(r.ServerIdent)
	e.u32(uint32(r.Version.Major))
	e.u32(uint32(r.Version.Minor))
	e.u32(uint32(r.Version.Patch))

	e.short(r.Dump.Target.GameShort)
	e.str(r.Dump.Target.GameName)
	e.short(r.Dump.Target.CategoryShort)
	e.str(r.Dump.Target.CategoryName)

	e.u32(uint32(r.Dump.Info.Total))
	e.u32(uint32(r.Dump.Info.Completed))

	e.u32(uint32(len(r.Dump.Splits)))
	for _, s := range r.Dump.Splits {
		e.short(s.Def.Short)
		e.str(s.Def.Display)
		e.str(s.Def.Nickname)
		e.u32(uint32(len(s.Times)))
		for _, t := range s.Times {
			e.time(t)
		}
	}

	encodeRunTotals(e, r.Dump.Comparison.Run)
	e.u32(uint32(len(r.Dump.Comparison.Splits)))
	for short, rec := range r.Dump.Comparison.Splits {
		e.short(short)
		encodeSplitRecord(e, rec)
	}

	e.u32(uint32(len(r.Dump.Notes)))
	for short, note := range r.Dump.Notes {
		e.short(short)
		encodeAggregateSet(e, note.Attempt)
		encodeDeltaPair(e, note.Delta)
	}

	e.bool(r.Dump.Total != nil)
	if r.Dump.Total != nil {
		encodeDelta(e, r.Dump.Total.Delta)
		e.time(r.Dump.Total.Time)
	}
	return e.bytes()
}

// DecodeDumpResponse decodes a frame payload into a DumpResponse.
func DecodeDumpResponse(body []byte) (DumpResponse, error) {
	d := newDecoder(body)
	var r DumpResponse

	ident, err := d.strField("server.ident")
	if err != nil {
		return r, err
	}
	major, err := d.u32Field("server.version.major")
	if err != nil {
		return r, err
	}
	minor, err := d.u32Field("server.version.minor")
	if err != nil {
		return r, err
	}
	patch, err := d.u32Field("server.version.patch")
	if err != nil {
		return r, err
	}
	r.ServerIdent = ident
	r.Version = Version{Major: uint16(major), Minor: uint16(minor), Patch: uint16(patch)}

	gameShort, err := d.shortField("target.game_short")
	if err != nil {
		return r, err
	}
	gameName, err := d.strField("target.game_name")
	if err != nil {
		return r, err
	}
	catShort, err := d.shortField("target.category_short")
	if err != nil {
		return r, err
	}
	catName, err := d.strField("target.category_name")
	if err != nil {
		return r, err
	}
	r.Dump.Target = attempt.Target{GameName: gameName, GameShort: gameShort, CategoryName: catName, CategoryShort: catShort}

	total, err := d.u32Field("attempt_info.total")
	if err != nil {
		return r, err
	}
	completed, err := d.u32Field("attempt_info.completed")
	if err != nil {
		return r, err
	}
	r.Dump.Info = attemptInfo(total, completed)

	splitCount, err := d.u32Field("splits.count")
	if err != nil {
		return r, err
	}
	r.Dump.Splits = make([]session.DumpSplit, splitCount)
	for i := range r.Dump.Splits {
		short, err := d.shortField("splits.short")
		if err != nil {
			return r, err
		}
		display, err := d.strField("splits.display")
		if err != nil {
			return r, err
		}
		nickname, err := d.strField("splits.nickname")
		if err != nil {
			return r, err
		}
		timeCount, err := d.u32Field("splits.times.count")
		if err != nil {
			return r, err
		}
		r.Dump.Splits[i] = session.DumpSplit{
			Def:   attempt.Definition{Short: short, Display: display, Nickname: nickname},
			Times: make([]timeval.Time, timeCount),
		}
		for j := range r.Dump.Splits[i].Times {
			t, err := d.timeField("splits.times.value")
			if err != nil {
				return r, err
			}
			r.Dump.Splits[i].Times[j] = t
		}
	}

	run, err := decodeRunTotals(d, "comparison.run")
	if err != nil {
		return r, err
	}
	cmpCount, err := d.u32Field("comparison.splits.count")
	if err != nil {
		return r, err
	}
	cmpSplits := make(map[attempt.ShortName]comparison.SplitRecord, cmpCount)
	for i := uint32(0); i < cmpCount; i++ {
		short, err := d.shortField("comparison.splits.short")
		if err != nil {
			return r, err
		}
		rec, err := decodeSplitRecord(d, "comparison.splits.record")
		if err != nil {
			return r, err
		}
		cmpSplits[short] = rec
	}
	r.Dump.Comparison = comparison.Comparison{Splits: cmpSplits, Run: run}

	noteCount, err := d.u32Field("notes.count")
	if err != nil {
		return r, err
	}
	notes := make(map[attempt.ShortName]session.Note, noteCount)
	for i := uint32(0); i < noteCount; i++ {
		short, err := d.shortField("notes.short")
		if err != nil {
			return r, err
		}
		agg, err := decodeAggregateSet(d, "notes.attempt")
		if err != nil {
			return r, err
		}
		delta, err := decodeDeltaPair(d, "notes.delta")
		if err != nil {
			return r, err
		}
		notes[short] = session.Note{Attempt: agg, Delta: delta}
	}
	r.Dump.Notes = notes

	hasTotal, err := d.boolField("total.has_total")
	if err != nil {
		return r, err
	}
	if hasTotal {
		delta, err := decodeDelta(d, "total.delta")
		if err != nil {
			return r, err
		}
		t, err := d.timeField("total.time")
		if err != nil {
			return r, err
		}
		r.Dump.Total = &session.RunTotal{Delta: delta, Time: t}
	}

	return r, nil
}
