package ratscrew

import (
	"errors"
	"fmt"
)

var (
	ErrGameEnded      = errors.New("game already ended")
	ErrGameStarted    = errors.New("game already started")
	ErrGameNotStarted = errors.New("game not started")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// ConfigurationError reports an out-of-range game setting, including a
// player count outside [MinPlayers, MaxPlayers].
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidKeyError rejects an action key at setup time.
type InvalidKeyError struct {
	Key    string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid action key %q: %s", e.Key, e.Reason)
}
