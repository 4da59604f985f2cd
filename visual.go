package tapedeck

import "image/color"

// ButtonVisual describes how one button region is drawn for one frame: an
// optional fill plus a closed outline.
type ButtonVisual struct {
	Fill    color.RGBA // valid only when HasFill is true
	HasFill bool
	Outline color.RGBA
	Width   float32
}

// VisualFor maps a button name and the per-frame state snapshot to its visual
// spec. Pure function of its inputs; the rule table is fixed:
//
//   - playback_mode is the only filled button. Its fill tracks the mode
//     (green / yellow / red) under a brown accent outline.
//   - record is disabled gray outside normal mode; in normal mode it shows
//     the total-recorder lamp — bright red and thick while recording, green
//     otherwise.
//   - the transport buttons carry fixed colors; anything unrecognized gets a
//     white outline.
func VisualFor(name string, state RenderState) ButtonVisual {
	switch name {
	case ButtonPlaybackMode:
		fill := colorModeActive
		switch state.Mode {
		case ModeNormal:
			fill = colorModeNormal
		case ModePlaybackIdle:
			fill = colorModeIdle
		}
		return ButtonVisual{Fill: fill, HasFill: true, Outline: colorAccentBrown, Width: 4}
	case ButtonForward:
		return ButtonVisual{Outline: colorPlayGreen, Width: 3}
	case ButtonPause:
		return ButtonVisual{Outline: colorPauseYellow, Width: 3}
	case ButtonStopEject:
		return ButtonVisual{Outline: colorStopRed, Width: 3}
	case ButtonFastRewind, ButtonFastForward:
		return ButtonVisual{Outline: colorSeekBlue, Width: 3}
	case ButtonRecord:
		if state.Mode != ModeNormal {
			return ButtonVisual{Outline: colorDisabledGray, Width: 3}
		}
		if state.TotalRecorder {
			return ButtonVisual{Outline: colorRecordOn, Width: 5}
		}
		return ButtonVisual{Outline: colorPlayGreen, Width: 3}
	default:
		return ButtonVisual{Outline: colorDefaultWhite, Width: 3}
	}
}
