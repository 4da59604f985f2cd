package tapedeck

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a shared 1x1 white image used as the texture for solid fills.
// Created lazily so importing the package does not touch the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// strokePolygon draws the closed outline of a polygon. No-op for fewer than
// 3 vertices.
func strokePolygon(dst *ebiten.Image, pts []Vec2, width float32, clr color.Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	j := n - 1
	for i := 0; i < n; i++ {
		vector.StrokeLine(dst,
			float32(pts[j].X), float32(pts[j].Y),
			float32(pts[i].X), float32(pts[i].Y),
			width, clr, false)
		j = i
	}
}

// fillPolygon fills a polygon with a solid color using fan triangulation,
// textured with the shared white pixel. No-op for fewer than 3 vertices.
func fillPolygon(dst *ebiten.Image, pts []Vec2, clr color.RGBA) {
	verts, inds := polygonFan(pts, clr)
	if verts == nil {
		return
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), nil)
}

// polygonFan generates vertices and indices for a fan-triangulated polygon:
// N vertices, 3*(N-2) indices, vertex 0 as the hub. Returns nil for fewer
// than 3 points.
func polygonFan(pts []Vec2, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 3 {
		return nil, nil
	}

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	verts := make([]ebiten.Vertex, n)
	for i, p := range pts {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Sample the center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}

	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}
