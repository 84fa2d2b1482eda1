package replay

import "google.golang.org/protobuf/types/known/structpb"

// Script describes one scripted game: the seats, an optional fixed deck and
// the raw input batches fed to the engine in order.
type Script struct {
	Seed    int64        `json:"seed,omitempty" yaml:"seed"`
	Decks   int          `json:"decks,omitempty" yaml:"decks"`
	Deck    []string     `json:"deck,omitempty" yaml:"deck"`
	Players []PlayerSpec `json:"players" yaml:"players"`
	Inputs  []string     `json:"inputs" yaml:"inputs"`
}

type PlayerSpec struct {
	Name string `json:"name,omitempty" yaml:"name"`
	Play string `json:"play" yaml:"play"`
	Slap string `json:"slap" yaml:"slap"`
}

type ReplayTape struct {
	TapeVersion int           `json:"tape_version"`
	TapeID      string        `json:"tape_id"`
	Winner      int           `json:"winner"`
	Events      []ReplayEvent `json:"events"`
}

type ReplayEvent struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
	// Step is the index of the input batch that produced the event, -1 for
	// events emitted by the deal.
	Step        int32            `json:"step"`
	Line        string           `json:"line"`
	Value       *structpb.Struct `json:"value,omitempty"`
	EnvelopeB64 string           `json:"envelope_b64,omitempty"`
}

// Lines returns the console status line of every event in order.
func (t *ReplayTape) Lines() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Events))
	for _, e := range t.Events {
		out = append(out, e.Line)
	}
	return out
}
