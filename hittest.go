package tapedeck

// HitPolygon is a polygon hit area. Unlike an axis-aligned bounds check it
// follows the traced outline exactly, so photographed, slanted button shapes
// resolve correctly. The polygon may be non-convex.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon, using the
// ray-casting parity test: a horizontal ray from the point toggles a parity
// flag at each edge crossing.
//
// The `(yi > y) != (yj > y)` comparison is deliberately asymmetric: an edge's
// lower endpoint is included in its y-span and its upper endpoint excluded,
// so a ray through a shared vertex counts one crossing, not two. Which
// vertices test as inside falls out of this rule (see the package tests);
// keep it bit-for-bit as is.
//
// Polygons with fewer than 3 vertices never contain anything.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := p.Points[i].X, p.Points[i].Y
		xj, yj := p.Points[j].X, p.Points[j].Y

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ResolveButton walks the scaled buttons in definition order and returns the
// name of the first one whose polygon contains (x, y). Overlaps resolve to
// whichever button was defined first; area and draw order play no part.
func ResolveButton(x, y float64, scaled []ScaledButton) (string, bool) {
	for _, b := range scaled {
		if (HitPolygon{Points: b.Points}).Contains(x, y) {
			return b.Name, true
		}
	}
	return "", false
}

// Callbacks maps button names to press handlers. Missing entries are legal;
// a button without a callback is inert.
type Callbacks map[string]func()

// HandlePointer resolves (x, y) against the scaled buttons and invokes the
// matching callback if one is registered. It reports whether the press was
// handled, so the caller can fall through to other hit targets when it
// wasn't. No callback runs for an unresolved or uncallbacked button.
func HandlePointer(x, y float64, scaled []ScaledButton, callbacks Callbacks) bool {
	name, ok := ResolveButton(x, y, scaled)
	if !ok {
		return false
	}
	fn, ok := callbacks[name]
	if !ok {
		return false
	}
	fn()
	return true
}
