// Package tapedeck renders a responsive, image-backed playback control panel
// for [Ebitengine]: a photographed deck artwork anchored to the bottom-left
// of the display, with interactive button regions traced as polygons over
// the photo.
//
// Button geometry is authored once against a fixed reference frame (the
// source photograph's pixel grid) and rescaled to the current display size on
// every resize. Pointer input resolves to a button name by exact
// point-in-polygon containment, so the slanted, non-rectangular photographed
// shapes hit precisely — not their bounding boxes.
//
// # Quick start
//
//	panel := tapedeck.NewPanel(tapedeck.PanelConfig{
//		Callbacks: tapedeck.Callbacks{
//			tapedeck.ButtonForward: func() { player.TogglePause() },
//			tapedeck.ButtonRecord:  func() { player.ToggleRecorder() },
//		},
//	})
//	panel.Resize(1920, 1080)
//
//	img, _, err := tapedeck.LoadArtwork("assets/controls.png")
//	panel.CompleteArtwork(img, err)
//
// Then, inside an [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
//			x, y := ebiten.CursorPosition()
//			g.panel.HandlePointer(float64(x), float64(y))
//		}
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.panel.Draw(screen, tapedeck.RenderState{Mode: g.mode})
//	}
//
// The panel draws nothing until the artwork completion delivers an image;
// layout and hit testing work regardless, so sibling UI can coordinate with
// [Panel.Placement] before the asset arrives.
//
// [Ebitengine]: https://ebitengine.org
package tapedeck
