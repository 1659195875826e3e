package ebiten

import (
	"fmt"

	"github.com/jetsetilly/test1942/resources"
)

const windowResource = "window"

func onWindowOpen() (windowGeometry, error) {
	var geom windowGeometry

	s, err := resources.Read(windowResource)
	if err != nil {
		return geom, err
	}
	if s == "" {
		return geom, nil
	}

	_, err = fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return geom, fmt.Errorf("%s: %w", windowResource, err)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(windowResource, s)
}
