package tapedeck

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	On     bool    `json:"on,omitempty"`
	Line   int     `json:"line,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// panelScript is the top-level JSON structure for an interaction script.
type panelScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON interaction script against a Panel, one step
// per frame: resizes, pointer presses, and render-state changes. Useful for
// automated end-to-end tests and demo walkthroughs.
//
// Supported actions:
//
//	{"action": "resize", "width": 1920, "height": 1080}
//	{"action": "press", "x": 132, "y": 861}
//	{"action": "mode", "mode": "playback_idle"}
//	{"action": "recorder", "on": true}
//	{"action": "line", "line": 12}
//	{"action": "wait", "frames": 30}
type ScriptRunner struct {
	panel     *Panel
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	state   RenderState
	handled int
}

// LoadScript parses a JSON interaction script targeting the given panel.
func LoadScript(jsonData []byte, panel *Panel) (*ScriptRunner, error) {
	var script panelScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse panel script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse panel script: no steps")
	}
	for _, st := range script.Steps {
		if st.Action == "mode" {
			if _, ok := ParsePlaybackMode(st.Mode); !ok {
				return nil, fmt.Errorf("parse panel script: unknown mode %q", st.Mode)
			}
		}
	}
	return &ScriptRunner{panel: panel, steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool { return r.done }

// State returns the render-state snapshot the script has built so far. Feed
// it to Panel.Draw each frame.
func (r *ScriptRunner) State() RenderState { return r.state }

// HandledCount returns how many press steps the panel reported as handled.
func (r *ScriptRunner) HandledCount() int { return r.handled }

// Step advances the runner by one frame, executing at most one script step.
func (r *ScriptRunner) Step() {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "resize":
		r.panel.Resize(st.Width, st.Height)
	case "press":
		if r.panel.HandlePointer(st.X, st.Y) {
			r.handled++
		}
	case "mode":
		// Validated at load time.
		mode, _ := ParsePlaybackMode(st.Mode)
		r.state.Mode = mode
	case "recorder":
		r.state.TotalRecorder = st.On
	case "line":
		r.state.Line = st.Line
		r.state.HasLine = true
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
