package protocol

import (
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/session"
)

// Action tags, the first byte of an encoded action body (spec §6
// "Wire messages (client -> server)").
const (
	actionDump byte = iota
	actionNewRun
	actionPush
	actionPop
)

const (
	destSave byte = iota
	destDiscard
)

const (
	popOneWire byte = iota
	popAllWire
)

// EncodeAction encodes a session.Action into a frame payload.
func EncodeAction(a session.Action) []byte {
	e := &encoder{}
	switch v := a.(type) {
	case session.DumpAction:
		e.byte(actionDump)
	case session.NewRunAction:
		e.byte(actionNewRun)
		if v.OldDestination == attempt.Discard {
			e.byte(destDiscard)
		} else {
			e.byte(destSave)
		}
	case session.PushAction:
		e.byte(actionPush)
		e.u64(uint64(v.Index))
		e.time(v.Time)
	case session.PopAction:
		e.byte(actionPop)
		e.u64(uint64(v.Index))
		if v.Kind == session.PopAll {
			e.byte(popAllWire)
		} else {
			e.byte(popOneWire)
		}
	}
	return e.bytes()
}

// DecodeAction decodes a frame payload into a session.Action. Index values
// are carried as 64-bit on the wire and narrowed to int here (spec §6:
// "narrowed to platform-native size on receipt"); an index too large for
// int reports *UnknownEnumError against "push.index" or "pop.index" to route it to
// out-of-range like the source's read_index does.
func DecodeAction(body []byte) (session.Action, error) {
	d := newDecoder(body)
	tag, err := d.byteField("action.tag")
	if err != nil {
		return nil, err
	}
	switch tag {
	case actionDump:
		return session.DumpAction{}, nil
	case actionNewRun:
		destByte, err := d.byteField("new_run.old_destination")
		if err != nil {
			return nil, err
		}
		switch destByte {
		case destSave:
			return session.NewRunAction{OldDestination: attempt.Save}, nil
		case destDiscard:
			return session.NewRunAction{OldDestination: attempt.Discard}, nil
		default:
			return nil, &UnknownEnumError{Field: "new_run.old_destination", Value: int(destByte)}
		}
	case actionPush:
		index, err := d.u64Field("push.index")
		if err != nil {
			return nil, err
		}
		idx, err := narrowIndex("push.index", index)
		if err != nil {
			return nil, err
		}
		t, err := d.timeField("push.time")
		if err != nil {
			return nil, err
		}
		return session.PushAction{Index: idx, Time: t}, nil
	case actionPop:
		index, err := d.u64Field("pop.index")
		if err != nil {
			return nil, err
		}
		idx, err := narrowIndex("pop.index", index)
		if err != nil {
			return nil, err
		}
		kindByte, err := d.byteField("pop.kind")
		if err != nil {
			return nil, err
		}
		switch kindByte {
		case popOneWire:
			return session.PopAction{Index: idx, Kind: session.PopOne}, nil
		case popAllWire:
			return session.PopAction{Index: idx, Kind: session.PopAll}, nil
		default:
			return nil, &UnknownEnumError{Field: "pop.kind", Value: int(kindByte)}
		}
	default:
		return nil, &UnknownEnumError{Field: "action.tag", Value: int(tag)}
	}
}

func narrowIndex(field string, v uint64) (int, error) {
	idx := int(v)
	if uint64(idx) != v || idx < 0 {
		return 0, &UnknownEnumError{Field: field, Value: int(v)}
	}
	return idx, nil
}
