// Package romset loads the ROM images of the board into the region table.
//
// A romset can be a directory or a zip archive. The contents of every file
// are checked against a CRC32 value. A mismatch is logged but is not an
// error because bootleg and hacked romsets are common. A missing file is
// always an error.
package romset

import (
	"archive/zip"
	"errors"
	"fmt"
	"hash/crc32"
	"io/fs"
	"os"

	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/logger"
)

// StartupFailure is returned by Load() when the romset can not be used
var StartupFailure = errors.New("startup failure")

// Entry describes a single file in a romset
type Entry struct {
	Filename string
	Region   region.ID
	Offset   int
	Size     int
	CRC      uint32
}

// Set1942 is the list of files for the 1942 board
var Set1942 = []Entry{
	{Filename: "srb-03.m3", Region: region.MainProgram, Offset: 0x00000, Size: 0x4000, CRC: 0xd9dafcc3},
	{Filename: "srb-04.m4", Region: region.MainProgram, Offset: 0x04000, Size: 0x4000, CRC: 0xda0cf924},
	{Filename: "srb-05.m5", Region: region.MainProgram, Offset: 0x10000, Size: 0x4000, CRC: 0xd102911c},
	{Filename: "srb-06.m6", Region: region.MainProgram, Offset: 0x14000, Size: 0x2000, CRC: 0x466f8248},
	{Filename: "srb-07.m7", Region: region.MainProgram, Offset: 0x18000, Size: 0x4000, CRC: 0x0d31038c},

	{Filename: "sr-01.c11", Region: region.SoundProgram, Offset: 0x0000, Size: 0x4000, CRC: 0xbd87f06b},

	{Filename: "sr-02.f2", Region: region.CharGfx, Offset: 0x0000, Size: 0x2000, CRC: 0x6ebca191},

	{Filename: "sr-08.a1", Region: region.TileGfx, Offset: 0x0000, Size: 0x2000, CRC: 0x3884d9eb},
	{Filename: "sr-10.a3", Region: region.TileGfx, Offset: 0x2000, Size: 0x2000, CRC: 0x8edb273a},
	{Filename: "sr-12.a5", Region: region.TileGfx, Offset: 0x4000, Size: 0x2000, CRC: 0x1bd3d8bb},
	{Filename: "sr-09.a2", Region: region.TileGfx, Offset: 0x6000, Size: 0x2000, CRC: 0x999cf6e0},
	{Filename: "sr-11.a4", Region: region.TileGfx, Offset: 0x8000, Size: 0x2000, CRC: 0x3a2726c3},
	{Filename: "sr-13.a6", Region: region.TileGfx, Offset: 0xa000, Size: 0x2000, CRC: 0x658f02c4},

	{Filename: "sr-14.l1", Region: region.SpriteGfx, Offset: 0x0000, Size: 0x4000, CRC: 0x2528bec6},
	{Filename: "sr-15.l2", Region: region.SpriteGfx, Offset: 0x4000, Size: 0x4000, CRC: 0xf89287aa},
	{Filename: "sr-16.n1", Region: region.SpriteGfx, Offset: 0x8000, Size: 0x4000, CRC: 0x024418f8},
	{Filename: "sr-17.n2", Region: region.SpriteGfx, Offset: 0xc000, Size: 0x4000, CRC: 0xe2c7e489},

	{Filename: "sb-5.e8", Region: region.ColorPROM, Offset: 0x000, Size: 0x100, CRC: 0x93ab8153},
	{Filename: "sb-6.e9", Region: region.ColorPROM, Offset: 0x100, Size: 0x100, CRC: 0x8ab44f7d},
	{Filename: "sb-7.e10", Region: region.ColorPROM, Offset: 0x200, Size: 0x100, CRC: 0xf4ade9a4},
	{Filename: "sb-0.f1", Region: region.ColorPROM, Offset: 0x300, Size: 0x100, CRC: 0x6047d91b},
	{Filename: "sb-4.d6", Region: region.ColorPROM, Offset: 0x400, Size: 0x100, CRC: 0x4858968d},
	{Filename: "sb-8.k3", Region: region.ColorPROM, Offset: 0x500, Size: 0x100, CRC: 0xf6fad943},
	{Filename: "sb-2.d1", Region: region.ColorPROM, Offset: 0x600, Size: 0x100, CRC: 0x8bb8b3df},
	{Filename: "sb-3.d2", Region: region.ColorPROM, Offset: 0x700, Size: 0x100, CRC: 0x3b0c99af},
	{Filename: "sb-1.k6", Region: region.ColorPROM, Offset: 0x800, Size: 0x100, CRC: 0x712ac508},
	{Filename: "sb-9.m11", Region: region.ColorPROM, Offset: 0x900, Size: 0x100, CRC: 0x4921635c},
}

// open the path as a file system. the path can be a directory or a zip file
func open(path string) (fs.FS, func(), error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	if fi.IsDir() {
		return os.DirFS(path), func() {}, nil
	}

	zf, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, err
	}
	return zf, func() { zf.Close() }, nil
}

// Load the standard romset from path into the region table
func Load(path string, tbl *region.Table) error {
	return LoadSet(path, Set1942, tbl)
}

// LoadSet loads every entry in the set from path into the region table. Every
// region mentioned in the set is marked as loaded on success
func LoadSet(path string, set []Entry, tbl *region.Table) error {
	fsys, done, err := open(path)
	if err != nil {
		return fmt.Errorf("%w: romset: %w", StartupFailure, err)
	}
	defer done()

	var loaded []region.ID

	for _, e := range set {
		dest, err := tbl.Resolve(e.Region)
		if err != nil {
			return fmt.Errorf("%w: romset: %s: %w", StartupFailure, e.Filename, err)
		}

		if e.Offset < 0 || e.Offset+e.Size > len(dest) {
			return fmt.Errorf("%w: romset: %s: does not fit in %s", StartupFailure, e.Filename, e.Region)
		}

		data, err := fs.ReadFile(fsys, e.Filename)
		if err != nil {
			return fmt.Errorf("%w: romset: %w", StartupFailure, err)
		}

		if len(data) < e.Size {
			return fmt.Errorf("%w: romset: %s: short file (%d bytes, expected %d)",
				StartupFailure, e.Filename, len(data), e.Size)
		}

		if len(data) > e.Size {
			logger.Logf(logger.Allow, "romset", "%s: ignoring %d bytes at end of file", e.Filename, len(data)-e.Size)
			data = data[:e.Size]
		}

		crc := crc32.ChecksumIEEE(data)
		if crc != e.CRC {
			logger.Logf(logger.Allow, "romset", "%s: crc mismatch (%08x, expected %08x)", e.Filename, crc, e.CRC)
		}

		copy(dest[e.Offset:], data)

		if len(loaded) == 0 || loaded[len(loaded)-1] != e.Region {
			loaded = append(loaded, e.Region)
		}
	}

	for _, id := range loaded {
		tbl.MarkLoaded(id)
	}

	logger.Logf(logger.Allow, "romset", "loaded %d files from %s", len(set), path)

	return nil
}
