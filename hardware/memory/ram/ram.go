package ram

import (
	"fmt"
	"strings"
)

// RAM is a writable memory area of fixed size
type RAM struct {
	ctx   Context
	label string
	data  []uint8
}

type Context interface {
	Rand8Bit() uint8
}

func Create(ctx Context, label string, size int) *RAM {
	return &RAM{
		ctx:   ctx,
		label: label,
		data:  make([]uint8, size),
	}
}

// Reset clears RAM or fills it with random values
func (r *RAM) Reset(random bool) {
	if random && r.ctx != nil {
		for i := range len(r.data) {
			r.data[i] = r.ctx.Rand8Bit()
		}
	} else {
		clear(r.data)
	}
}

func (r *RAM) String() string {
	var s strings.Builder
	for i := 0; i <= (len(r.data)-1)/16; i++ {
		j := i * 16
		s.WriteString(fmt.Sprintf("%04x : % 02x\n", j, r.data[j:min(j+16, len(r.data))]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r *RAM) Label() string {
	return r.label
}

// Bytes returns the underlying storage. used by the video circuitry which
// reads RAM directly rather than through the bus
func (r *RAM) Bytes() []uint8 {
	return r.data
}

func (r *RAM) Read(idx uint16) (uint8, error) {
	if int(idx) >= len(r.data) {
		return 0, fmt.Errorf("%s: index out of range: %04x", r.label, idx)
	}
	return r.data[idx], nil
}

func (r *RAM) Write(idx uint16, data uint8) error {
	if int(idx) >= len(r.data) {
		return fmt.Errorf("%s: index out of range: %04x", r.label, idx)
	}
	r.data[idx] = data
	return nil
}
