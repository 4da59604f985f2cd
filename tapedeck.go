package tapedeck

import "image/color"

// Vec2 is a 2D vector used for positions, sizes, and polygon vertices
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PlaybackMode is the application's transport mode, supplied each frame as
// part of the RenderState snapshot.
type PlaybackMode uint8

const (
	ModeNormal         PlaybackMode = iota // live transport control
	ModePlaybackIdle                       // playback armed but not running
	ModePlaybackActive                     // playback running
)

// String returns the canonical lowercase name for the mode.
func (m PlaybackMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePlaybackIdle:
		return "playback_idle"
	case ModePlaybackActive:
		return "playback_active"
	default:
		return "unknown"
	}
}

// ParsePlaybackMode converts a canonical mode name back to a PlaybackMode.
// The second return value is false for unrecognized names.
func ParsePlaybackMode(s string) (PlaybackMode, bool) {
	switch s {
	case "normal":
		return ModeNormal, true
	case "playback_idle":
		return ModePlaybackIdle, true
	case "playback_active":
		return ModePlaybackActive, true
	default:
		return ModeNormal, false
	}
}

// RenderState is the read-only per-frame application snapshot consumed when
// drawing button overlays. It has no lifecycle of its own; the owning
// application builds one per draw call.
type RenderState struct {
	Line          int // current line counter; valid only when HasLine is true
	HasLine       bool
	Mode          PlaybackMode
	TotalRecorder bool // the "total recorder" lamp; only meaningful in ModeNormal
}

// ButtonDef is a named polygon authored in reference-frame coordinates.
// Polygons need at least 3 vertices and may be non-convex; definition order
// across a set of buttons is significant (draw order and hit tie-break).
type ButtonDef struct {
	Name   string
	Points []Vec2
}

// ScaledButton is a button polygon transformed into display-surface
// coordinates. Produced only by Layout recomputes; never edited in place.
type ScaledButton struct {
	Name   string
	Points []Vec2
}

// Well-known button names for the stock deck artwork.
const (
	ButtonPlaybackMode = "playback_mode"
	ButtonForward      = "forward"
	ButtonFastRewind   = "fast_rewind"
	ButtonFastForward  = "fast_forward"
	ButtonPause        = "pause"
	ButtonStopEject    = "stop_eject"
	ButtonRecord       = "record"
)

// Overlay palette. colorModeNormal/Idle/Active are the playback_mode fills
// (dark green, yellow, red); colorAccentBrown is its wood-grain outline;
// colorRecordOn is the bright recording red.
var (
	colorModeNormal   = color.RGBA{0, 180, 0, 255}
	colorModeIdle     = color.RGBA{255, 255, 0, 255}
	colorModeActive   = color.RGBA{255, 0, 0, 255}
	colorAccentBrown  = color.RGBA{139, 69, 19, 255}
	colorPlayGreen    = color.RGBA{0, 255, 0, 255}
	colorPauseYellow  = color.RGBA{255, 255, 0, 255}
	colorStopRed      = color.RGBA{255, 0, 0, 255}
	colorSeekBlue     = color.RGBA{0, 150, 255, 255}
	colorRecordOn     = color.RGBA{255, 50, 50, 255}
	colorDisabledGray = color.RGBA{100, 100, 100, 255}
	colorDefaultWhite = color.RGBA{255, 255, 255, 255}
)
