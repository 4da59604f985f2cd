package tapedeck

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// PanelConfig configures a Panel. Zero values select the stock deck artwork
// geometry.
type PanelConfig struct {
	Frame     Vec2        // reference frame; zero means DeckFrame
	Buttons   []ButtonDef // authored polygons; nil means DeckButtons()
	Callbacks Callbacks   // optional; buttons without entries are inert
	Debug     bool        // log recomputes and hits to stderr
}

// Panel is the control panel's owned mutable context: the cached layout
// geometry, the artwork handle and its readiness, and the callback table.
// It is the single writer of the scaled polygon set (via Resize); everything
// else only reads it.
//
// All methods are synchronous and must be called from the game loop's
// goroutine; the panel has no locking because resize, draw, and pointer
// handling never interleave.
type Panel struct {
	layout    *Layout
	callbacks Callbacks

	artwork *ebiten.Image
	artW    float64
	artH    float64
	ready   bool
	failed  bool

	displayW float64
	displayH float64

	debug bool
}

// NewPanel creates a Panel. Call Resize before the first draw or pointer
// event to establish the scaled geometry.
func NewPanel(cfg PanelConfig) *Panel {
	frame := cfg.Frame
	if frame.X == 0 && frame.Y == 0 {
		frame = DeckFrame
	}
	defs := cfg.Buttons
	if defs == nil {
		defs = DeckButtons()
	}
	cb := cfg.Callbacks
	if cb == nil {
		cb = Callbacks{}
	}
	return &Panel{
		layout:    NewLayout(frame, defs),
		callbacks: cb,
		debug:     cfg.Debug,
	}
}

// Resize recomputes the placement and every scaled button polygon for a new
// display-surface size. Idempotent for identical sizes.
func (p *Panel) Resize(displayW, displayH float64) {
	p.displayW = displayW
	p.displayH = displayH
	p.layout.UpdateSize(displayW, displayH)
	if p.debug {
		pl := p.layout.Placement()
		p.debugLogf("resize %gx%g -> placement (%g,%g) %gx%g",
			displayW, displayH, pl.X, pl.Y, pl.Width, pl.Height)
	}
}

// CompleteArtwork delivers the one-shot outcome of the external artwork load:
// either a loaded image (err == nil) or a failure. Only the first delivery
// counts; later calls are ignored. On success the layout is recomputed so a
// load that races a resize still settles on current geometry. On failure the
// panel stays not-ready and Draw remains a no-op — fallback artwork is the
// caller's concern.
func (p *Panel) CompleteArtwork(img *ebiten.Image, err error) {
	if p.ready || p.failed {
		return
	}
	if err != nil || img == nil {
		p.failed = true
		p.debugLogf("artwork failed: %v", err)
		return
	}
	b := img.Bounds()
	p.artwork = img
	p.artW = float64(b.Dx())
	p.artH = float64(b.Dy())
	p.ready = true
	if p.displayW > 0 || p.displayH > 0 {
		p.Resize(p.displayW, p.displayH)
	}
}

// Ready reports whether the artwork has loaded and the panel will draw.
func (p *Panel) Ready() bool { return p.ready }

// Failed reports whether the artwork load was delivered as a failure.
func (p *Panel) Failed() bool { return p.failed }

// Placement returns the current artwork placement, for layout coordination
// with sibling UI.
func (p *Panel) Placement() Rect { return p.layout.Placement() }

// Scaled returns the current scaled polygon set in definition order.
// Read-only; replaced wholesale by Resize.
func (p *Panel) Scaled() []ScaledButton { return p.layout.Scaled() }

// HandlePointer resolves a display-space pointer press against the current
// button polygons, invoking the matching callback when one is registered.
// Returns false when the press missed every button (or hit an inert one) so
// the caller can fall through to other hit targets.
func (p *Panel) HandlePointer(x, y float64) bool {
	handled := HandlePointer(x, y, p.layout.Scaled(), p.callbacks)
	if p.debug {
		if name, ok := ResolveButton(x, y, p.layout.Scaled()); ok {
			p.debugLogf("pointer (%g,%g) -> %s (handled=%v)", x, y, name, handled)
		}
	}
	return handled
}

// Hover returns the button name under a display-space pointer position, for
// hover feedback. Same containment walk and tie-break as HandlePointer, with
// no side effects.
func (p *Panel) Hover(x, y float64) (string, bool) {
	return ResolveButton(x, y, p.layout.Scaled())
}

// SetDebug toggles stderr diagnostics.
func (p *Panel) SetDebug(enabled bool) { p.debug = enabled }

// Draw renders the artwork and the per-button overlays onto dst using the
// frame's state snapshot. No-op until the artwork completion has delivered
// an image. Draws nothing persistent: every frame is a pure function of the
// cached geometry and the snapshot.
func (p *Panel) Draw(dst *ebiten.Image, state RenderState) {
	if !p.ready {
		return
	}

	pl := p.layout.Placement()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pl.Width/p.artW, pl.Height/p.artH)
	op.GeoM.Translate(pl.X, pl.Y)
	dst.DrawImage(p.artwork, op)

	for _, b := range p.layout.Scaled() {
		if len(b.Points) < 3 {
			continue
		}
		vis := VisualFor(b.Name, state)
		if vis.HasFill {
			fillPolygon(dst, b.Points, vis.Fill)
		}
		strokePolygon(dst, b.Points, vis.Width, vis.Outline)
	}

	if state.HasLine {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("LINE %d", state.Line),
			int(pl.X), int(pl.Y)-16)
	}
}
