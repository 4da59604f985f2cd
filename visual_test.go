package tapedeck

import "testing"

func TestVisualPlaybackModeFills(t *testing.T) {
	v := VisualFor(ButtonPlaybackMode, RenderState{Mode: ModeNormal})
	if !v.HasFill || v.Fill != colorModeNormal {
		t.Errorf("normal fill = %v (hasFill=%v), want %v", v.Fill, v.HasFill, colorModeNormal)
	}
	if v.Outline != colorAccentBrown || v.Width != 4 {
		t.Errorf("outline = %v width %v, want %v width 4", v.Outline, v.Width, colorAccentBrown)
	}

	v = VisualFor(ButtonPlaybackMode, RenderState{Mode: ModePlaybackIdle})
	if v.Fill != colorModeIdle {
		t.Errorf("idle fill = %v, want %v", v.Fill, colorModeIdle)
	}

	v = VisualFor(ButtonPlaybackMode, RenderState{Mode: ModePlaybackActive})
	if v.Fill != colorModeActive {
		t.Errorf("active fill = %v, want %v", v.Fill, colorModeActive)
	}

	// Any mode other than normal/idle takes the active fill.
	v = VisualFor(ButtonPlaybackMode, RenderState{Mode: PlaybackMode(9)})
	if v.Fill != colorModeActive {
		t.Errorf("unknown-mode fill = %v, want %v", v.Fill, colorModeActive)
	}
}

func TestVisualRecordStates(t *testing.T) {
	// Recording in normal mode: bright red, thickened.
	v := VisualFor(ButtonRecord, RenderState{Mode: ModeNormal, TotalRecorder: true})
	if v.Outline != colorRecordOn || v.Width != 5 {
		t.Errorf("recording visual = %v width %v, want %v width 5", v.Outline, v.Width, colorRecordOn)
	}

	// Idle recorder in normal mode: green, standard width.
	v = VisualFor(ButtonRecord, RenderState{Mode: ModeNormal})
	if v.Outline != colorPlayGreen || v.Width != 3 {
		t.Errorf("idle recorder visual = %v width %v, want %v width 3", v.Outline, v.Width, colorPlayGreen)
	}

	// Outside normal mode the button is disabled gray, recorder flag or not.
	for _, rec := range []bool{false, true} {
		v = VisualFor(ButtonRecord, RenderState{Mode: ModePlaybackIdle, TotalRecorder: rec})
		if v.Outline != colorDisabledGray {
			t.Errorf("playback-mode record visual (recorder=%v) = %v, want %v", rec, v.Outline, colorDisabledGray)
		}
	}
}

func TestVisualTransportButtons(t *testing.T) {
	state := RenderState{}
	if v := VisualFor(ButtonForward, state); v.Outline != colorPlayGreen || v.Width != 3 || v.HasFill {
		t.Errorf("forward visual = %+v", v)
	}
	if v := VisualFor(ButtonPause, state); v.Outline != colorPauseYellow || v.Width != 3 {
		t.Errorf("pause visual = %+v", v)
	}
	if v := VisualFor(ButtonStopEject, state); v.Outline != colorStopRed || v.Width != 3 {
		t.Errorf("stop_eject visual = %+v", v)
	}
	if v := VisualFor(ButtonFastRewind, state); v.Outline != colorSeekBlue {
		t.Errorf("fast_rewind visual = %+v", v)
	}
	if v := VisualFor(ButtonFastForward, state); v.Outline != colorSeekBlue {
		t.Errorf("fast_forward visual = %+v", v)
	}
	if v := VisualFor("mystery", state); v.Outline != colorDefaultWhite || v.Width != 3 {
		t.Errorf("unknown-button visual = %+v", v)
	}
}
