package render

// fillRGBA converts cell values into RGBA pixels using a palette. When the
// palette is empty the buffer is cleared to transparent black.
func fillRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
