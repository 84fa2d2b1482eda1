//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"ratscrew/replay"
)

// initRequest carries either a decoded script or the text of a YAML script
// file; ScriptYAML wins when both are set.
type initRequest struct {
	Script     replay.Script `json:"script"`
	ScriptYAML string        `json:"scriptYaml,omitempty"`
}

type initResponse struct {
	OK    bool                   `json:"ok"`
	Tape  *replay.WireReplayTape `json:"tape,omitempty"`
	Error *replay.ReplayError    `json:"error,omitempty"`
}

func main() {
	js.Global().Set("__replayInit", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return mustJSON(initResponse{
				OK:    false,
				Error: &replay.ReplayError{StepIndex: -1, Reason: "invalid_request", Message: "missing request payload"},
			})
		}
		return mustJSON(handleInit(args[0].String()))
	}))

	select {}
}

func handleInit(raw string) initResponse {
	var req initRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return initResponse{
			OK:    false,
			Error: &replay.ReplayError{StepIndex: -1, Reason: "invalid_json", Message: err.Error()},
		}
	}

	script := req.Script
	if req.ScriptYAML != "" {
		parsed, err := replay.ParseScript([]byte(req.ScriptYAML))
		if err != nil {
			return errorResponse(err, "invalid_script")
		}
		script = parsed
	}

	tape, err := replay.GenerateReplayTape(script)
	if err != nil {
		return errorResponse(err, "replay_generation_failed")
	}
	return initResponse{OK: true, Tape: replay.ToWireReplayTape(tape)}
}

func errorResponse(err error, fallbackReason string) initResponse {
	var replayErr *replay.ReplayError
	if errors.As(err, &replayErr) {
		return initResponse{OK: false, Error: replayErr}
	}
	return initResponse{
		OK:    false,
		Error: &replay.ReplayError{StepIndex: -1, Reason: fallbackReason, Message: err.Error()},
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		fallback := initResponse{
			OK:    false,
			Error: &replay.ReplayError{StepIndex: -1, Reason: "marshal_failed", Message: err.Error()},
		}
		b2, _ := json.Marshal(fallback)
		return string(b2)
	}
	return string(b)
}
