package replay

import "fmt"

type ReplayError struct {
	StepIndex int32          `json:"step_index"`
	Reason    string         `json:"reason"`
	Message   string         `json:"message"`
	Expected  *ExpectedState `json:"expected,omitempty"`
}

// ExpectedState tells a script author where the game stood when a step
// failed.
type ExpectedState struct {
	Phase         string `json:"phase"`
	Round         int    `json:"round"`
	CurrentPlayer int    `json:"current_player"`
	Winner        int    `json:"winner"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}
