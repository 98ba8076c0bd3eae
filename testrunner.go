package dnd

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a drag script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a drag script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer input across frames, for automated
// scenario tests and demos. Attach it to a Driver with SetScript.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 300, "toY": 40, "frames": 10},
//	  {"action": "wait", "frames": 5},
//	  {"action": "press", "x": 300, "y": 40},
//	  {"action": "move", "x": 20, "y": 20},
//	  {"action": "release", "x": 20, "y": 20}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var validActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true, "wait": true,
}

// LoadScript parses a JSON drag script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("dnd: parse drag script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("dnd: parse drag script: no steps")
	}
	for i, st := range f.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("dnd: parse drag script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its steps run from Update before input is
// processed. Pass nil to detach.
func (d *Driver) SetScript(s *Script) {
	d.script = s
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(d *Driver) {
	if s.done {
		return
	}
	// Let queued injections drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		d.InjectPress(st.X, st.Y)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "drag":
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(d.injectQueue) == 0 {
		s.done = true
	}
}
