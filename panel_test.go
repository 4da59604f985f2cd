package tapedeck

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPanelEndToEndForwardPress(t *testing.T) {
	fired := 0
	p := NewPanel(PanelConfig{
		Callbacks: Callbacks{ButtonForward: func() { fired++ }},
	})
	p.Resize(1920, 1080)

	// Press the centroid of the scaled forward polygon.
	var forward ScaledButton
	for _, b := range p.Scaled() {
		if b.Name == ButtonForward {
			forward = b
		}
	}
	if len(forward.Points) == 0 {
		t.Fatal("forward button missing from scaled set")
	}
	var cx, cy float64
	for _, pt := range forward.Points {
		cx += pt.X
		cy += pt.Y
	}
	cx /= float64(len(forward.Points))
	cy /= float64(len(forward.Points))

	if !p.HandlePointer(cx, cy) {
		t.Fatalf("press at centroid (%v,%v) not handled", cx, cy)
	}
	if fired != 1 {
		t.Errorf("forward callback fired %d times, want 1", fired)
	}
}

func TestPanelDefaultsToDeckGeometry(t *testing.T) {
	p := NewPanel(PanelConfig{})
	p.Resize(1920, 1080)

	want := ComputePlacement(DeckFrame, 1920, 1080)
	if p.Placement() != want {
		t.Errorf("placement = %+v, want %+v", p.Placement(), want)
	}
	if got := len(p.Scaled()); got != len(DeckButtons()) {
		t.Errorf("scaled button count = %d, want %d", got, len(DeckButtons()))
	}
}

func TestPanelResizeIdempotent(t *testing.T) {
	p := NewPanel(PanelConfig{})
	p.Resize(1366, 768)
	first := p.Scaled()
	p.Resize(1366, 768)
	if !reflect.DeepEqual(first, p.Scaled()) {
		t.Error("scaled set differs across identical resizes")
	}
}

func TestPanelArtworkCompletionOneShot(t *testing.T) {
	p := NewPanel(PanelConfig{})
	if p.Ready() {
		t.Fatal("panel ready before artwork delivered")
	}

	p.CompleteArtwork(nil, errors.New("missing file"))
	if !p.Failed() || p.Ready() {
		t.Errorf("after failure: failed=%v ready=%v, want true false", p.Failed(), p.Ready())
	}

	// The completion is delivered once; a late success changes nothing.
	p.CompleteArtwork(ebiten.NewImage(8, 8), nil)
	if p.Ready() {
		t.Error("late success after failure should be ignored")
	}
}

func TestPanelArtworkSuccess(t *testing.T) {
	p := NewPanel(PanelConfig{})
	p.Resize(1920, 1080)
	before := p.Scaled()

	p.CompleteArtwork(ebiten.NewImage(8, 8), nil)
	if !p.Ready() {
		t.Fatal("panel not ready after successful completion")
	}

	// Completion triggers a recompute; same size, so identical geometry.
	if !reflect.DeepEqual(before, p.Scaled()) {
		t.Error("completion recompute changed geometry for an unchanged size")
	}

	// Later deliveries are ignored.
	p.CompleteArtwork(nil, errors.New("late failure"))
	if !p.Ready() || p.Failed() {
		t.Error("late failure after success should be ignored")
	}
}

func TestPanelDrawNoOpUntilReady(t *testing.T) {
	p := NewPanel(PanelConfig{})
	p.Resize(1920, 1080)
	// Not ready: Draw must return before touching the destination.
	p.Draw(nil, RenderState{Mode: ModeNormal})
}

func TestPanelHoverHasNoSideEffects(t *testing.T) {
	fired := 0
	p := NewPanel(PanelConfig{
		Callbacks: Callbacks{ButtonPlaybackMode: func() { fired++ }},
	})
	p.Resize(1920, 1080)

	var mode ScaledButton
	for _, b := range p.Scaled() {
		if b.Name == ButtonPlaybackMode {
			mode = b
		}
	}
	cx := (mode.Points[0].X + mode.Points[2].X) / 2
	cy := (mode.Points[0].Y + mode.Points[2].Y) / 2

	name, ok := p.Hover(cx, cy)
	if !ok || name != ButtonPlaybackMode {
		t.Errorf("hover = %q (ok=%v), want %q", name, ok, ButtonPlaybackMode)
	}
	if fired != 0 {
		t.Errorf("hover fired %d callbacks, want 0", fired)
	}
}

func TestPanelPointerMissFallsThrough(t *testing.T) {
	fired := 0
	p := NewPanel(PanelConfig{
		Callbacks: Callbacks{ButtonForward: func() { fired++ }},
	})
	p.Resize(1920, 1080)

	// Top-right corner is far from the bottom-left panel.
	if p.HandlePointer(1900, 20) {
		t.Error("handled = true for a miss, want false")
	}
	if fired != 0 {
		t.Errorf("miss fired %d callbacks, want 0", fired)
	}
}
