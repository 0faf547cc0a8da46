//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a w*h grid of cell values into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit colors cells with palette and draws them onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette Palette, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
