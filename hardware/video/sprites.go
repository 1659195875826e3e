package video

const (
	numSprites     = 32
	spriteSize     = 16
	spritePairSize = 0x8000
	spriteTiles    = 0x200
)

// sprite colours with a low nibble of 0xf are transparent
const spriteTransparent = 0x0f

func (vid *Video) drawSpriteTile(tile int, colour int, sx int, sy int) {
	index := (tile & (spriteTiles - 1)) * 64
	plane0 := vid.sprites[index:]
	plane1 := vid.sprites[index+spritePairSize:]

	var line [spriteSize]uint8

	for y := range spriteSize {
		// each row is made of four groups of four pixels
		for group, o := range [4]int{0, 1, 32, 33} {
			d0 := plane0[y*2+o]
			d1 := plane1[y*2+o]
			for x := 3; x >= 0; x-- {
				pixel := (d0 >> (x + 4)) & 0x01
				pixel |= ((d0 >> x) & 0x01) << 1
				pixel |= ((d1 >> (x + 4)) & 0x01) << 2
				pixel |= ((d1 >> x) & 0x01) << 3
				line[(3-x)+group*4] = vid.lookup.Sprite[int(pixel)|colour]
			}
		}

		py := sy + y
		if py >= ScreenHeight {
			break // for loop
		}

		for x := range spriteSize {
			px := sx + x
			if px >= ScreenWidth {
				break // for loop
			}
			if px < 0 {
				continue // for loop
			}
			if line[x]&spriteTransparent != spriteTransparent {
				vid.Frame[px+py*ScreenWidth] = line[x]
			}
		}
	}
}

// Sprite is the decoded form of a sprite slot
type Sprite struct {
	Code   int
	Colour uint8
	X      int
	Y      int

	// number of additional tiles drawn below the first tile
	Height int
}

// DecodeSprite decodes the four bytes of a sprite slot
func DecodeSprite(s [4]uint8) Sprite {
	spr := Sprite{
		Code:   int(s[0]&0x7f) | int(s[0]&0x80)<<1 | int(s[1]&0x20)<<2,
		Colour: s[1] & 0x0f,
		X:      int(s[3]) - int(s[1]&0x10)<<4,
		Y:      int(s[2]),
		Height: int(s[1]&0xc0) >> 6,
	}

	// a height value of two is treated the same as a value of three
	if spr.Height == 2 {
		spr.Height = 3
	}

	return spr
}

func (vid *Video) renderSprites() {
	// sprite slot 0 is drawn last and therefore has the highest priority
	for offs := (numSprites - 1) * 4; offs >= 0; offs -= 4 {
		spr := DecodeSprite([4]uint8(vid.vram.Sprites[offs : offs+4]))
		for i := spr.Height; i >= 0; i-- {
			vid.drawSpriteTile(spr.Code+i, int(spr.Colour)<<4, spr.X, spr.Y+spriteSize*i)
		}
	}
}
