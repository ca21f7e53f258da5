package protocol

import (
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
)

// Event tags, the first byte of an encoded event body (spec §6
// "Wire messages (server -> client)").
const (
	eventTotal byte = iota
	eventReset
	eventSplit
)

const (
	totalVariantAttempt byte = iota
	totalVariantComparison
)

const (
	totalKindInPbRun byte = iota
	totalKindSumOfBest
)

const (
	splitPayloadTime byte = iota
	splitPayloadPace
	splitPayloadPopped
)

func encodePace(p comparison.Pace) byte { return byte(p) }

func decodePace(field string, b byte) (comparison.Pace, error) {
	if b > byte(comparison.PersonalBest) {
		return 0, &UnknownEnumError{Field: field, Value: int(b)}
	}
	return comparison.Pace(b), nil
}

func encodeDelta(e *encoder, d comparison.Delta) {
	e.byte(encodePace(d.Pace))
	e.time(d.Magnitude)
}

func decodeDelta(d *decoder, field string) (comparison.Delta, error) {
	paceByte, err := d.byteField(field + ".pace")
	if err != nil {
		return comparison.Delta{}, err
	}
	pace, err := decodePace(field+".pace", paceByte)
	if err != nil {
		return comparison.Delta{}, err
	}
	magnitude, err := d.timeField(field + ".magnitude")
	if err != nil {
		return comparison.Delta{}, err
	}
	return comparison.Delta{Pace: pace, Magnitude: magnitude}, nil
}

// EncodeEvent encodes a session.Event into a frame payload.
func EncodeEvent(ev session.Event) []byte {
	e := &encoder{}
	switch v := ev.(type) {
	case session.TotalEvent:
		e.byte(eventTotal)
		switch variant := v.Variant.(type) {
		case session.TotalAttempt:
			e.byte(totalVariantAttempt)
			encodeDelta(e, variant.Delta)
		case session.TotalComparison:
			e.byte(totalVariantComparison)
			if variant.Kind == session.SumOfBest {
				e.byte(totalKindSumOfBest)
			} else {
				e.byte(totalKindInPbRun)
			}
		}
		e.bool(v.Time != nil)
		if v.Time != nil {
			e.time(*v.Time)
		}
	case session.ResetEvent:
		e.byte(eventReset)
		e.u32(uint32(v.Info.Total))
		e.u32(uint32(v.Info.Completed))
	case session.SplitEvent:
		e.byte(eventSplit)
		e.short(v.Short)
		switch p := v.Payload.(type) {
		case session.SplitTimeEvent:
			e.byte(splitPayloadTime)
			e.byte(byte(p.Kind))
			e.time(p.Time)
		case session.SplitPaceEvent:
			e.byte(splitPayloadPace)
			e.byte(encodePace(p.Pace.Split))
			e.byte(encodePace(p.Pace.Cumulative))
		case session.SplitPoppedEvent:
			e.byte(splitPayloadPopped)
			if p.Kind == session.PopAll {
				e.byte(popAllWire)
			} else {
				e.byte(popOneWire)
			}
		}
	}
	return e.bytes()
}

// DecodeEvent decodes a frame payload into a session.Event.
func DecodeEvent(body []byte) (session.Event, error) {
	d := newDecoder(body)
	tag, err := d.byteField("event.tag")
	if err != nil {
		return nil, err
	}
	switch tag {
	case eventTotal:
		return decodeTotalEvent(d)
	case eventReset:
		total, err := d.u32Field("reset.total")
		if err != nil {
			return nil, err
		}
		completed, err := d.u32Field("reset.completed")
		if err != nil {
			return nil, err
		}
		return session.ResetEvent{Info: attemptInfo(total, completed)}, nil
	case eventSplit:
		return decodeSplitEvent(d)
	default:
		return nil, &UnknownEnumError{Field: "event.tag", Value: int(tag)}
	}
}

func decodeTotalEvent(d *decoder) (session.Event, error) {
	variantByte, err := d.byteField("total.variant")
	if err != nil {
		return nil, err
	}
	var variant session.TotalVariant
	switch variantByte {
	case totalVariantAttempt:
		delta, err := decodeDelta(d, "total.delta")
		if err != nil {
			return nil, err
		}
		variant = session.TotalAttempt{Delta: delta}
	case totalVariantComparison:
		kindByte, err := d.byteField("total.kind")
		if err != nil {
			return nil, err
		}
		switch kindByte {
		case totalKindInPbRun:
			variant = session.TotalComparison{Kind: session.TotalInPbRun}
		case totalKindSumOfBest:
			variant = session.TotalComparison{Kind: session.SumOfBest}
		default:
			return nil, &UnknownEnumError{Field: "total.kind", Value: int(kindByte)}
		}
	default:
		return nil, &UnknownEnumError{Field: "total.variant", Value: int(variantByte)}
	}
	hasTime, err := d.boolField("total.has_time")
	if err != nil {
		return nil, err
	}
	if !hasTime {
		return session.TotalEvent{Variant: variant}, nil
	}
	t, err := d.timeField("total.time")
	if err != nil {
		return nil, err
	}
	return session.TotalEvent{Variant: variant, Time: &t}, nil
}

func decodeSplitEvent(d *decoder) (session.Event, error) {
	short, err := d.shortField("split.short")
	if err != nil {
		return nil, err
	}
	payloadByte, err := d.byteField("split.payload")
	if err != nil {
		return nil, err
	}
	switch payloadByte {
	case splitPayloadTime:
		kindByte, err := d.byteField("split.time.kind")
		if err != nil {
			return nil, err
		}
		if kindByte > byte(session.AggregateComparisonCumulative) {
			return nil, &UnknownEnumError{Field: "split.time.kind", Value: int(kindByte)}
		}
		t, err := d.timeField("split.time.value")
		if err != nil {
			return nil, err
		}
		return session.SplitEvent{Short: short, Payload: session.SplitTimeEvent{Time: t, Kind: session.TimeEventKind(kindByte)}}, nil
	case splitPayloadPace:
		splitByte, err := d.byteField("split.pace.split")
		if err != nil {
			return nil, err
		}
		split, err := decodePace("split.pace.split", splitByte)
		if err != nil {
			return nil, err
		}
		cumByte, err := d.byteField("split.pace.cumulative")
		if err != nil {
			return nil, err
		}
		cumulative, err := decodePace("split.pace.cumulative", cumByte)
		if err != nil {
			return nil, err
		}
		return session.SplitEvent{Short: short, Payload: session.SplitPaceEvent{Pace: comparison.SplitInRunPace{Split: split, Cumulative: cumulative}}}, nil
	case splitPayloadPopped:
		kindByte, err := d.byteField("split.popped.kind")
		if err != nil {
			return nil, err
		}
		switch kindByte {
		case popOneWire:
			return session.SplitEvent{Short: short, Payload: session.SplitPoppedEvent{Kind: session.PopOne}}, nil
		case popAllWire:
			return session.SplitEvent{Short: short, Payload: session.SplitPoppedEvent{Kind: session.PopAll}}, nil
		default:
			return nil, &UnknownEnumError{Field: "split.popped.kind", Value: int(kindByte)}
		}
	default:
		return nil, &UnknownEnumError{Field: "split.payload", Value: int(payloadByte)}
	}
}
