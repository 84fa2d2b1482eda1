package ratscrew

import "unicode/utf8"

// keyRegistry maps action keys back to player indexes. It is filled while
// players join and only read once the game has started.
type keyRegistry struct {
	play map[rune]int
	slap map[rune]int
}

func newKeyRegistry() keyRegistry {
	return keyRegistry{
		play: make(map[rune]int),
		slap: make(map[rune]int),
	}
}

// claimed returns every key in use, play and slap alike.
func (k keyRegistry) claimed() map[rune]int {
	out := make(map[rune]int, len(k.play)+len(k.slap))
	for r, idx := range k.play {
		out[r] = idx
	}
	for r, idx := range k.slap {
		out[r] = idx
	}
	return out
}

func (k keyRegistry) validate(key string) error {
	return ValidateActionKey(key, k.claimed())
}

func (k keyRegistry) register(idx int, playKey, slapKey string) (rune, rune, error) {
	claimed := k.claimed()
	if err := ValidateActionKey(playKey, claimed); err != nil {
		return 0, 0, err
	}
	pr, _ := utf8.DecodeRuneInString(playKey)
	claimed[pr] = idx
	if err := ValidateActionKey(slapKey, claimed); err != nil {
		return 0, 0, err
	}
	sr, _ := utf8.DecodeRuneInString(slapKey)

	k.play[pr] = idx
	k.slap[sr] = idx
	return pr, sr, nil
}

func (k keyRegistry) playOwner(r rune) (int, bool) {
	idx, ok := k.play[r]
	return idx, ok
}

func (k keyRegistry) slapOwner(r rune) (int, bool) {
	idx, ok := k.slap[r]
	return idx, ok
}
