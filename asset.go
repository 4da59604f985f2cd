package tapedeck

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadArtwork loads the panel artwork from a file and returns the image with
// its natural pixel size. Pair it with Panel.CompleteArtwork:
//
//	img, _, err := tapedeck.LoadArtwork("assets/controls.png")
//	panel.CompleteArtwork(img, err)
func LoadArtwork(path string) (*ebiten.Image, Vec2, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, Vec2{}, fmt.Errorf("load artwork %s: %w", path, err)
	}
	b := img.Bounds()
	return img, Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}, nil
}
