package video

const (
	fgTilesAcross = 32
	fgTilesDown   = 32
	fgTileSize    = 8
	fgAttrOffset  = 0x400
	fgAttrBank    = 0x80
)

func (vid *Video) drawForegroundTile(o int, tile uint8, attr uint8) {
	index := (int(tile) | int(attr&fgAttrBank)<<1) * 16
	data := vid.chars[index:]
	colour := int(attr<<2) & 0xff

	for y := range fgTileSize {
		dest := vid.Frame[o+y*ScreenWidth:]
		for half := range 2 {
			b := data[y*2+half]
			for x := 3; x >= 0; x-- {
				pixel := (b >> (x + 4)) & 0x01
				pixel |= ((b >> x) & 0x01) << 1

				// pixel value zero is transparent
				if pixel != 0 {
					dest[(3-x)+half*4] = vid.lookup.Char[int(pixel)|colour]
				}
			}
		}
	}
}

func (vid *Video) renderForeground() {
	for y := range fgTilesDown {
		for x := range fgTilesAcross {
			n := y*fgTilesAcross + x
			o := x*fgTileSize + y*fgTileSize*ScreenWidth
			vid.drawForegroundTile(o, vid.vram.Foreground[n], vid.vram.Foreground[n+fgAttrOffset])
		}
	}
}
