package replay

type WireReplayTape struct {
	TapeVersion int               `json:"tapeVersion"`
	TapeID      string            `json:"tapeId"`
	Winner      int               `json:"winner"`
	Events      []WireReplayEvent `json:"events"`
}

type WireReplayEvent struct {
	Type        string `json:"type"`
	Seq         uint64 `json:"seq"`
	Step        int32  `json:"step"`
	Line        string `json:"line"`
	EnvelopeB64 string `json:"envelopeB64"`
}

func ToWireReplayTape(tape *ReplayTape) *WireReplayTape {
	if tape == nil {
		return nil
	}
	out := &WireReplayTape{
		TapeVersion: tape.TapeVersion,
		TapeID:      tape.TapeID,
		Winner:      tape.Winner,
		Events:      make([]WireReplayEvent, 0, len(tape.Events)),
	}
	for _, e := range tape.Events {
		out.Events = append(out.Events, WireReplayEvent{
			Type:        e.Type,
			Seq:         e.Seq,
			Step:        e.Step,
			Line:        e.Line,
			EnvelopeB64: e.EnvelopeB64,
		})
	}
	return out
}
