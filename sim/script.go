package sim

import (
	"errors"
	"fmt"
	"os"

	cfg "github.com/automoto/dobok/config"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is wrapped by every script validation failure.
var ErrInvalidScript = errors.New("invalid script")

// Script is a recorded input sequence.
//
//	name: triple combo
//	stage: 1
//	steps:
//	  - frames: 10
//	  - hold: [attack]
//	  - frames: 30
//	    hold: [right]
type Script struct {
	Name  string `yaml:"name"`
	Stage int    `yaml:"stage"` // 0 starts at stage 1
	Steps []Step `yaml:"steps"`
}

// Step holds a set of actions (and optionally an analog axis) for Frames
// frames. Actions pressed in consecutive steps stay held.
type Step struct {
	Frames int      `yaml:"frames"` // 0 means 1
	Hold   []string `yaml:"hold"`
	Axis   float64  `yaml:"axis"`
}

// Frame is one frame of resolved script input.
type Frame struct {
	Held []cfg.ActionID
	Axis float64
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if _, err := s.Frames(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("load script %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Frames expands the steps into per-frame input.
func (s Script) Frames() ([]Frame, error) {
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	if s.Stage < 0 || s.Stage > cfg.Stage.MaxStages {
		return nil, fmt.Errorf("%w: stage %d out of range", ErrInvalidScript, s.Stage)
	}

	var frames []Frame
	for i, step := range s.Steps {
		if step.Frames < 0 {
			return nil, fmt.Errorf("%w: step %d has negative frames", ErrInvalidScript, i+1)
		}
		if step.Axis < -1 || step.Axis > 1 {
			return nil, fmt.Errorf("%w: step %d axis %v outside [-1,1]", ErrInvalidScript, i+1, step.Axis)
		}

		held := make([]cfg.ActionID, 0, len(step.Hold))
		for _, name := range step.Hold {
			id, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i+1, name)
			}
			held = append(held, id)
		}

		n := max(step.Frames, 1)
		for range n {
			frames = append(frames, Frame{Held: held, Axis: step.Axis})
		}
	}
	return frames, nil
}
