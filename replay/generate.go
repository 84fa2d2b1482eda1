package replay

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"ratscrew/ratscrew"
)

const tapeVersion = 1

// GenerateReplayTape seats the script's players, deals and feeds every input
// batch to the engine, recording each event. Identical scripts produce
// identical tapes.
func GenerateReplayTape(s Script) (*ReplayTape, error) {
	ns, err := normalizeScript(s)
	if err != nil {
		return nil, err
	}

	game, err := ratscrew.NewGame(ns.cfg)
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}
	for i, p := range ns.players {
		if _, err := game.AddPlayer(p.play, p.slap); err != nil {
			return nil, &ReplayError{
				StepIndex: -1,
				Reason:    "invalid_key",
				Message:   fmt.Sprintf("%s: %v", ns.players[i].name, err),
			}
		}
	}

	builder, err := newTapeBuilder(s)
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "tape_id_failed", Message: err.Error()}
	}
	if err := builder.addSnapshot(-1, game.Snapshot()); err != nil {
		return nil, err
	}

	events, err := game.Start()
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "start_failed", Message: err.Error()}
	}
	if err := builder.addEvents(-1, events); err != nil {
		return nil, err
	}

	for stepIdx, batch := range ns.inputs {
		step := int32(stepIdx)
		if game.Ended() {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "input_after_game_end",
				Message:   "game is already won; no further input is allowed",
				Expected:  expectedState(game),
			}
		}
		events, err := game.HandleInput(batch)
		if err != nil {
			reason := "action_apply_failed"
			var stateErr ratscrew.InvalidStateError
			if errors.As(err, &stateErr) {
				reason = "invalid_state"
			}
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    reason,
				Message:   err.Error(),
				Expected:  expectedState(game),
			}
		}
		if err := builder.addEvents(step, events); err != nil {
			return nil, err
		}
	}
	if err := builder.addSnapshot(int32(len(ns.inputs)), game.Snapshot()); err != nil {
		return nil, err
	}

	winner, _ := game.Winner()
	return &ReplayTape{
		TapeVersion: tapeVersion,
		TapeID:      builder.tapeID,
		Winner:      winner,
		Events:      builder.events,
	}, nil
}

func expectedState(g *ratscrew.Game) *ExpectedState {
	snap := g.Snapshot()
	return &ExpectedState{
		Phase:         snap.Phase.String(),
		Round:         snap.Round,
		CurrentPlayer: snap.CurrentPlayer,
		Winner:        snap.Winner,
	}
}

type tapeBuilder struct {
	tapeID string
	seq    uint64
	events []ReplayEvent
}

// newTapeBuilder derives the tape id from the script itself.
func newTapeBuilder(s Script) (*tapeBuilder, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return &tapeBuilder{
		tapeID: uuid.NewSHA1(uuid.NameSpaceOID, raw).String(),
		events: make([]ReplayEvent, 0, 64),
	}, nil
}

func (b *tapeBuilder) addSnapshot(step int32, snap ratscrew.Snapshot) error {
	payload, err := snapshotToStruct(snap)
	if err != nil {
		return &ReplayError{StepIndex: step, Reason: "encode_failed", Message: err.Error()}
	}
	line := fmt.Sprintf("Snapshot: phase %s, round %d, %d cards held.", snap.Phase, snap.Round, snap.TotalHeld())
	return b.push(step, "snapshot", line, payload)
}

func (b *tapeBuilder) addEvents(step int32, events []ratscrew.Event) error {
	for _, e := range events {
		payload, err := eventToStruct(e)
		if err != nil {
			return &ReplayError{StepIndex: step, Reason: "encode_failed", Message: err.Error()}
		}
		if err := b.push(step, e.Type.String(), e.String(), payload); err != nil {
			return err
		}
	}
	return nil
}

func (b *tapeBuilder) push(step int32, typ, line string, payload *structpb.Struct) error {
	b.seq++
	env, b64, err := envelope(b.tapeID, typ, b.seq, step, payload)
	if err != nil {
		return &ReplayError{StepIndex: step, Reason: "encode_failed", Message: err.Error()}
	}
	b.events = append(b.events, ReplayEvent{
		Type:        typ,
		Seq:         b.seq,
		Step:        step,
		Line:        line,
		Value:       env,
		EnvelopeB64: b64,
	})
	return nil
}
