package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScript reads a YAML script file.
func LoadScript(path string) (Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(raw)
}

func ParseScript(raw []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Script{}, &ReplayError{StepIndex: -1, Reason: "invalid_script", Message: err.Error()}
	}
	return s, nil
}
