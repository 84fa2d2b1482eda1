package card

import (
	"errors"
	"fmt"
)

var ErrEmptyContainer = errors.New("no cards left in container")

// ValidationError reports text that does not name a rank, suit or card.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid card %s: %q", e.Field, e.Value)
}

type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("card index %d out of range (size %d)", e.Index, e.Size)
}
