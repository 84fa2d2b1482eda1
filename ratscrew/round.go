package ratscrew

// startRoundLocked resets the per-round state; the stack itself was
// emptied by the previous round winner (or holds the leftover deal).
func (g *Game) startRoundLocked(starter int) []Event {
	g.round++
	g.current = starter
	g.previous = NoPlayer
	g.turnOver = false
	g.endedByPlay = false
	g.roundWinner = NoPlayer
	g.winReason = WinNone
	return []Event{{Type: EventRoundStarted, Round: g.round, Player: starter}}
}

// processPlayerActionsLocked walks one input batch. Every key counts once.
// A play by the current player ends the batch, and so does a slap that
// wins the round; failed slaps let the scan go on.
func (g *Game) processPlayerActionsLocked(raw string) ([]Event, error) {
	var events []Event
	seen := make(map[rune]struct{}, len(raw))
	for _, r := range raw {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}

		if owner, ok := g.keys.playOwner(r); ok && owner == g.current && !g.turnOver {
			evs, err := g.processPlayingCardLocked()
			return append(events, evs...), err
		}
		if owner, ok := g.keys.slapOwner(r); ok {
			events = append(events, g.processSlappingStackLocked(owner)...)
			if g.roundWinner != NoPlayer {
				break
			}
		}
	}
	return events, nil
}

func (g *Game) processPlayingCardLocked() ([]Event, error) {
	p := g.players[g.current]
	c, err := p.PlayCard()
	if err != nil {
		// the current player always holds a card when a turn starts
		return nil, ErrInvalidState(err.Error())
	}
	g.stack.AddPlayedCard(c)
	events := []Event{{
		Type:         EventCardPlayed,
		Round:        g.round,
		Player:       p.Index,
		Action:       ActionPlay,
		Card:         c,
		NeedFaceCard: g.stack.NeedFaceCard(),
		Countdown:    g.stack.Countdown(),
	}}

	if c.IsFace() || !g.stack.NeedFaceCard() {
		g.turnOver = true
		g.endedByPlay = true
	}

	var reason WinReason
	switch {
	case g.stack.HasStackBeenWon():
		reason = WinFaceCard
	case !g.turnOver && p.HandSize() == 0:
		reason = WinEmptyHand
	default:
		return events, nil
	}
	if g.previous == NoPlayer {
		return events, ErrInvalidState("face card owed without a previous player")
	}
	g.turnOver = true
	g.setRoundWinnerLocked(g.previous, reason)
	return events, nil
}

func (g *Game) processSlappingStackLocked(slapper int) []Event {
	if g.stack.IsValidSlap() {
		g.turnOver = true
		g.setRoundWinnerLocked(slapper, WinSlap)
		return []Event{{Type: EventSlapValid, Round: g.round, Player: slapper, Action: ActionSlap}}
	}

	p := g.players[slapper]
	c, err := g.stack.ForfeitFrom(p.hand)
	if err != nil {
		return []Event{{Type: EventSlapNoCards, Round: g.round, Player: slapper, Action: ActionSlap}}
	}
	if slapper == g.current && p.HandSize() == 0 {
		g.turnOver = true
	}
	return []Event{{Type: EventSlapPenalty, Round: g.round, Player: slapper, Action: ActionSlap, Card: c}}
}

func (g *Game) setRoundWinnerLocked(idx int, reason WinReason) {
	g.roundWinner = idx
	g.winReason = reason
}

// advanceTurnLocked passes the turn to the next player holding cards. If
// nobody holds a card the whole deck is on the table and the last player to
// have played takes it.
func (g *Game) advanceTurnLocked() []Event {
	events := []Event{{Type: EventTurnOver, Round: g.round, Player: g.current}}
	// A turn cut short by a bad slap while owing a face card does not
	// take over the claim on the stack.
	if g.endedByPlay {
		g.previous = g.current
	}

	next := g.nextEligiblePlayerLocked(g.current)
	if g.players[next].HandSize() == 0 {
		winner := g.previous
		if winner == NoPlayer {
			winner = g.current
		}
		g.setRoundWinnerLocked(winner, WinNoPlayLeft)
		return events
	}

	g.current = next
	g.turnOver = false
	g.endedByPlay = false
	return append(events, Event{Type: EventPlayerUp, Round: g.round, Player: next})
}

// nextEligiblePlayerLocked returns the first player after current, in seat
// order, with cards in hand, or current itself when there is none.
func (g *Game) nextEligiblePlayerLocked(current int) int {
	n := len(g.players)
	for step := 1; step < n; step++ {
		idx := (current + step) % n
		if g.players[idx].HandSize() > 0 {
			return idx
		}
	}
	return current
}

func (g *Game) resolveRoundLocked() []Event {
	winner := g.roundWinner
	taken := g.stack.Size()
	g.players[winner].TakeRoundStack(g.stack)

	events := []Event{{
		Type:   EventRoundWon,
		Round:  g.round,
		Player: winner,
		Reason: g.winReason,
		Cards:  taken,
	}}

	if idx, ok := g.checkForWinnerLocked(); ok {
		g.winner = idx
		g.phase = PhaseGameWon
		g.current = NoPlayer
		return append(events, Event{Type: EventGameWon, Round: g.round, Player: idx})
	}
	return append(events, g.startRoundLocked(winner)...)
}
