package table

import (
	"fmt"

	"ratscrew/ratscrew"
)

var Rules = []string{
	"Rules:",
	"  Players take turns putting the top card of their hand on the stack.",
	"  A face card must be answered: the next player gets 1 (jack), 2 (queen),",
	"  3 (king) or 4 (ace) tries to play a face card of their own. If they fail,",
	"  whoever played the last face card takes the stack.",
	"  Slap the stack when the top two cards match (double) or the top card",
	"  matches the card two below it (sandwich) to take it. A bad slap costs",
	"  one card. Collect every card to win.",
	"  Type one or more keys and press enter; keys count in the order typed.",
}

// Controls lists every seated player's keys.
func Controls(g *ratscrew.Game) []string {
	snap := g.Snapshot()
	out := make([]string, 0, len(snap.Players)+1)
	out = append(out, "Controls:")
	for _, p := range snap.Players {
		out = append(out, fmt.Sprintf("  player #%d: play %q, slap %q", p.Index, p.PlayKey, p.SlapKey))
	}
	return out
}
