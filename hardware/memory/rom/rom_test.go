package rom_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/memory/rom"
	"github.com/jetsetilly/test1942/test"
)

func TestWindow(t *testing.T) {
	tbl := region.NewTable()
	d := tbl.MustResolve(region.MainProgram)
	for i := range d {
		d[i] = uint8(i >> 14)
	}

	w, err := rom.NewWindow(tbl, "bank", region.MainProgram, 0x10000, 0x4000)
	test.DemandSuccess(t, err)

	v, err := w.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x04)

	test.DemandSuccess(t, w.Set(region.MainProgram, 0x1c000, 0x4000))
	v, err = w.Read(0x3fff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x07)
	test.ExpectEquality(t, w.Base, 0x1c000)

	_, err = w.Read(0x4000)
	test.ExpectFailure(t, err)
}

func TestWindowBounds(t *testing.T) {
	tbl := region.NewTable()
	_, err := rom.NewWindow(tbl, "bank", region.MainProgram, 0x1e000, 0x4000)
	test.ExpectFailure(t, err)

	_, err = rom.NewWindow(tbl, "bank", region.ID(20), 0, 0x4000)
	test.ExpectSuccess(t, errors.Is(err, region.UnknownRegion))
}

func TestReadOnly(t *testing.T) {
	tbl := region.NewTable()
	w, err := rom.NewWindow(tbl, "sound rom", region.SoundProgram, 0, 0x4000)
	test.DemandSuccess(t, err)
	err = w.Write(0x0010, 0xff)
	test.ExpectSuccess(t, errors.Is(err, rom.ReadOnly))
}
