package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	// Script is a named sequence of Steps run against a fresh Timeline
	Script struct {
		Name  string `yaml:"name"`
		Steps []Step `yaml:"steps"`
	}

	// Step groups the operations performed under one title. Within a Step
	// they run in field order: clear, insert, remove, at, range, print,
	// then validate
	Step struct {
		Title    string  `yaml:"title,omitempty"`
		Clear    bool    `yaml:"clear,omitempty"`
		Insert   []Span  `yaml:"insert,omitempty"`
		Remove   string  `yaml:"remove,omitempty"`
		At       []int64 `yaml:"at,omitempty"`
		Range    *Span   `yaml:"range,omitempty"`
		Print    bool    `yaml:"print,omitempty"`
		Validate bool    `yaml:"validate,omitempty"`
	}

	// Span is a half-open [start, end) range with an optional label
	Span struct {
		Start int64  `yaml:"start"`
		End   int64  `yaml:"end"`
		Label string `yaml:"label,omitempty"`
	}
)

var (
	// ErrNoSteps is returned when a script contains nothing to run
	ErrNoSteps = errors.New("script has no steps")

	//go:embed scripts/default.yaml
	defaultScript []byte
)

// DefaultScript returns the built-in walkthrough of the engine
func DefaultScript() (*Script, error) {
	return ParseScript(defaultScript)
}

// LoadScript reads and parses a YAML script file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Steps) == 0 {
		return nil, ErrNoSteps
	}
	return &s, nil
}
