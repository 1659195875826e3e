package debugger

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// screenshot saves the most recent frame as a PNG file. the image is scaled
// by the specified amount without any filtering
func (m *debugger) screenshot(filename string, scale int) (rerr error) {
	if scale < 1 {
		return fmt.Errorf("screenshot: scale must be one or more")
	}

	src := m.console.Video.Image()
	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*scale, sr.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
	}()

	err = png.Encode(f, dst)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}
