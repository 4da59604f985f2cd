package tapedeck

import "math"

// Panel placement within the display surface. The artwork is anchored to the
// bottom-left corner with fixed margins, and its height tracks a third of the
// display height plus a fixed bias. These constants reproduce the layout of
// the deck artwork exactly; changing them shifts every hit region.
const (
	marginLeft    = 20
	marginBottom  = 20
	heightDivisor = 3
	heightBias    = 72
)

// Layout owns the reference-to-viewport transform: it knows the reference
// frame the button polygons were authored in, and converts them into
// display-surface coordinates for the current display size.
//
// The scaled polygon set is replaced wholesale on every UpdateSize call,
// never patched incrementally.
type Layout struct {
	frame     Vec2
	defs      []ButtonDef
	placement Rect
	scaled    []ScaledButton
}

// NewLayout creates a Layout for polygons authored against the given
// reference frame. The definition slice is retained, not copied; callers must
// not mutate it afterwards.
func NewLayout(frame Vec2, defs []ButtonDef) *Layout {
	return &Layout{frame: frame, defs: defs}
}

// ComputePlacement returns the artwork placement for a display surface of the
// given size. Heights at or below roughly 220 produce degenerate (zero or
// negative) placements; these are not guarded — degenerate geometry simply
// never matches a pointer.
func ComputePlacement(frame Vec2, displayW, displayH float64) Rect {
	artH := math.Floor(displayH/heightDivisor) + heightBias
	artW := math.Floor(artH * (frame.X / frame.Y))
	return Rect{
		X:      marginLeft,
		Y:      displayH - artH - marginBottom,
		Width:  artW,
		Height: artH,
	}
}

// rescaleButtons maps every button polygon from the reference frame into
// display coordinates: scale per axis, truncate toward zero to a whole pixel,
// then offset by the placement origin. Truncation before the offset matches
// the pixel placement of the blitted artwork and must not be reordered or
// replaced with rounding.
func rescaleButtons(defs []ButtonDef, frame Vec2, placement Rect) []ScaledButton {
	sx := placement.Width / frame.X
	sy := placement.Height / frame.Y

	scaled := make([]ScaledButton, len(defs))
	for i, def := range defs {
		pts := make([]Vec2, len(def.Points))
		for j, p := range def.Points {
			pts[j] = Vec2{
				X: math.Trunc(p.X*sx) + placement.X,
				Y: math.Trunc(p.Y*sy) + placement.Y,
			}
		}
		scaled[i] = ScaledButton{Name: def.Name, Points: pts}
	}
	return scaled
}

// UpdateSize recomputes the placement and the full scaled polygon set for a
// new display size. Idempotent: the same size always yields bit-identical
// output.
func (l *Layout) UpdateSize(displayW, displayH float64) {
	l.placement = ComputePlacement(l.frame, displayW, displayH)
	l.scaled = rescaleButtons(l.defs, l.frame, l.placement)
}

// Placement returns the current artwork placement.
func (l *Layout) Placement() Rect { return l.placement }

// Scaled returns the current scaled polygon set in definition order. The
// slice is owned by the Layout and is only replaced, never mutated; callers
// must treat it as read-only.
func (l *Layout) Scaled() []ScaledButton { return l.scaled }

// Frame returns the reference frame the polygons were authored in.
func (l *Layout) Frame() Vec2 { return l.frame }
