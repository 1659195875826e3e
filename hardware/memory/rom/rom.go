// Package rom provides read-only memory areas over region data. A Window is a
// view of part of a region and is used for both the fixed program areas and
// the banked area of the main processor's address space.
package rom

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/test1942/hardware/memory/region"
)

// ReadOnly is returned by Write() for all ROM areas
var ReadOnly = errors.New("read only")

// Window is a read-only view onto a region. the view starts at Base and is
// Size bytes long
type Window struct {
	label string
	tbl   *region.Table

	Region region.ID
	Base   int
	Size   int

	data []uint8
}

// NewWindow creates a view of the region. an error is returned if the view
// does not fit inside the region
func NewWindow(tbl *region.Table, label string, id region.ID, base int, size int) (*Window, error) {
	w := &Window{
		label: label,
		tbl:   tbl,
	}
	err := w.Set(id, base, size)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Set changes the view of the window
func (w *Window) Set(id region.ID, base int, size int) error {
	d, err := w.tbl.Resolve(id)
	if err != nil {
		return fmt.Errorf("%s: %w", w.label, err)
	}
	if base < 0 || size < 0 || base+size > len(d) {
		return fmt.Errorf("%s: window %#05x+%#04x outside of %s", w.label, base, size, id)
	}
	w.Region = id
	w.Base = base
	w.Size = size
	w.data = d[base : base+size]
	return nil
}

func (w *Window) Label() string {
	return w.label
}

func (w *Window) Status() string {
	return fmt.Sprintf("%s: %s %#05x-%#05x", w.label, w.Region, w.Base, w.Base+w.Size-1)
}

func (w *Window) Read(idx uint16) (uint8, error) {
	if int(idx) >= len(w.data) {
		return 0, fmt.Errorf("%s: index out of range: %04x", w.label, idx)
	}
	return w.data[idx], nil
}

func (w *Window) Write(idx uint16, data uint8) error {
	return fmt.Errorf("%s: %w: %04x", w.label, ReadOnly, idx)
}
