package replay

import (
	"encoding/base64"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"ratscrew/card"
	"ratscrew/ratscrew"
)

var envelopeMarshal = proto.MarshalOptions{Deterministic: true}

// eventToStruct flattens an engine event into a structpb payload. Only the
// fields that mean something for the event type are set.
func eventToStruct(e ratscrew.Event) (*structpb.Struct, error) {
	fields := map[string]any{
		"round":  e.Round,
		"player": e.Player,
	}
	if e.Action != ratscrew.ActionNone {
		fields["action"] = e.Action.String()
	}
	switch e.Type {
	case ratscrew.EventGameStarted:
		fields["cards_each"] = e.Cards
		fields["penalty"] = e.Penalty
	case ratscrew.EventCardPlayed:
		fields["card"] = e.Card.Code()
		fields["need_face_card"] = e.NeedFaceCard
		fields["countdown"] = e.Countdown
	case ratscrew.EventSlapPenalty:
		fields["card"] = e.Card.Code()
	case ratscrew.EventRoundWon:
		fields["reason"] = e.Reason.String()
		fields["cards"] = e.Cards
	}
	return structpb.NewStruct(fields)
}

func snapshotToStruct(snap ratscrew.Snapshot) (*structpb.Struct, error) {
	players := make([]any, 0, len(snap.Players))
	for _, p := range snap.Players {
		players = append(players, map[string]any{
			"index":     p.Index,
			"play_key":  p.PlayKey,
			"slap_key":  p.SlapKey,
			"hand_size": p.HandSize,
		})
	}
	return structpb.NewStruct(map[string]any{
		"phase":          snap.Phase.String(),
		"round":          snap.Round,
		"current_player": snap.CurrentPlayer,
		"played":         cardsToAny(snap.PlayedCards),
		"penalty":        cardsToAny(snap.PenaltyCards),
		"players":        players,
		"winner":         snap.Winner,
	})
}

func cardsToAny(cards []card.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range card.Codes(cards) {
		out = append(out, c)
	}
	return out
}

// envelope wraps a payload with its sequencing fields and encodes it.
func envelope(tapeID, typ string, seq uint64, step int32, payload *structpb.Struct) (*structpb.Struct, string, error) {
	env, err := structpb.NewStruct(map[string]any{
		"tape_id": tapeID,
		"type":    typ,
		"seq":     seq,
		"step":    step,
	})
	if err != nil {
		return nil, "", err
	}
	env.Fields["payload"] = structpb.NewStructValue(payload)
	bin, err := envelopeMarshal.Marshal(env)
	if err != nil {
		return nil, "", err
	}
	return env, base64.StdEncoding.EncodeToString(bin), nil
}
