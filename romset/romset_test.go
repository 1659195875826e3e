package romset_test

import (
	"archive/zip"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/logger"
	"github.com/jetsetilly/test1942/romset"
	"github.com/jetsetilly/test1942/test"
)

// testSet is a small romset with data that can be generated by the test
func testSet() ([]romset.Entry, map[string][]uint8) {
	data := map[string][]uint8{
		"a.bin": make([]uint8, 0x10),
		"b.bin": make([]uint8, 0x20),
		"c.bin": make([]uint8, 0x08),
	}
	for n, d := range data {
		for i := range d {
			d[i] = uint8(i) ^ n[0]
		}
	}

	set := []romset.Entry{
		{Filename: "a.bin", Region: region.MainProgram, Offset: 0x0000, Size: 0x10, CRC: crc32.ChecksumIEEE(data["a.bin"])},
		{Filename: "b.bin", Region: region.MainProgram, Offset: 0x4000, Size: 0x20, CRC: crc32.ChecksumIEEE(data["b.bin"])},
		{Filename: "c.bin", Region: region.ColorPROM, Offset: 0x0100, Size: 0x08, CRC: crc32.ChecksumIEEE(data["c.bin"])},
	}

	return set, data
}

func writeDir(t *testing.T, data map[string][]uint8) string {
	t.Helper()
	dir := t.TempDir()
	for n, d := range data {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, n), d, 0o600))
	}
	return dir
}

func checkLoaded(t *testing.T, tbl *region.Table, data map[string][]uint8) {
	t.Helper()
	main := tbl.MustResolve(region.MainProgram)
	prom := tbl.MustResolve(region.ColorPROM)
	test.ExpectEquality(t, string(main[0x0000:0x0010]), string(data["a.bin"]))
	test.ExpectEquality(t, string(main[0x4000:0x4020]), string(data["b.bin"]))
	test.ExpectEquality(t, string(prom[0x0100:0x0108]), string(data["c.bin"]))
	test.ExpectEquality(t, main[0x0010], 0x00)
	test.ExpectSuccess(t, tbl.Loaded(region.MainProgram))
	test.ExpectSuccess(t, tbl.Loaded(region.ColorPROM))
	test.ExpectFailure(t, tbl.Loaded(region.SpriteGfx))
}

func TestDirectory(t *testing.T) {
	set, data := testSet()
	dir := writeDir(t, data)

	tbl := region.NewTable()
	test.DemandSuccess(t, romset.LoadSet(dir, set, tbl))
	checkLoaded(t, tbl, data)
}

func TestZip(t *testing.T) {
	set, data := testSet()

	pth := filepath.Join(t.TempDir(), "1942.zip")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	for n, d := range data {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = w.Write(d)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	tbl := region.NewTable()
	test.DemandSuccess(t, romset.LoadSet(pth, set, tbl))
	checkLoaded(t, tbl, data)
}

func TestMissingFile(t *testing.T) {
	set, data := testSet()
	delete(data, "b.bin")
	dir := writeDir(t, data)

	tbl := region.NewTable()
	err := romset.LoadSet(dir, set, tbl)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, romset.StartupFailure))
	test.ExpectFailure(t, tbl.Loaded(region.MainProgram))

	err = romset.Load(filepath.Join(dir, "missing"), tbl)
	test.ExpectSuccess(t, errors.Is(err, romset.StartupFailure))
}

func TestShortFile(t *testing.T) {
	set, data := testSet()
	data["c.bin"] = data["c.bin"][:4]
	dir := writeDir(t, data)

	err := romset.LoadSet(dir, set, region.NewTable())
	test.ExpectSuccess(t, errors.Is(err, romset.StartupFailure))
}

func TestCRCMismatch(t *testing.T) {
	set, data := testSet()
	set[0].CRC ^= 0xffffffff
	dir := writeDir(t, data)

	logger.Clear()
	tbl := region.NewTable()
	test.DemandSuccess(t, romset.LoadSet(dir, set, tbl))
	checkLoaded(t, tbl, data)

	var s strings.Builder
	logger.Write(&s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "a.bin: crc mismatch"))
}

func TestSet1942(t *testing.T) {
	// every entry must fit into its region and no two entries can overlap
	used := make(map[region.ID][]bool)
	for _, e := range romset.Set1942 {
		if _, ok := used[e.Region]; !ok {
			used[e.Region] = make([]bool, region.Size(e.Region))
		}
		u := used[e.Region]
		if !test.ExpectSuccess(t, e.Offset+e.Size <= len(u), e.Filename) {
			continue
		}
		for i := e.Offset; i < e.Offset+e.Size; i++ {
			if u[i] {
				t.Fatalf("%s overlaps another entry", e.Filename)
			}
			u[i] = true
		}
	}
	test.ExpectEquality(t, len(romset.Set1942), 27)
}
