package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/test1942/hardware/memory"
)

type mappedAddress struct {
	address uint16
	area    memory.Area
	idx     uint16
}

// bus is implemented by both address decoders
type bus interface {
	MapAddress(address uint16, read bool) (uint16, memory.Area)
	Label() string
}

// selectBus returns the address decoder for the processor named in the
// argument. the main processor is the default
func (m *debugger) selectBus(cmd []string) bus {
	if len(cmd) > 0 && strings.ToUpper(cmd[len(cmd)-1]) == "SOUND" {
		return m.console.Sound
	}
	return m.console.Main
}

func parseValue(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}
	return strconv.ParseUint(s, 0, bits)
}

func (m *debugger) parseAddress(b bus, address string, read bool) (mappedAddress, error) {
	var ma mappedAddress

	addr, err := parseValue(address, 16)
	if err != nil {
		return ma, fmt.Errorf("address is not valid: %s", address)
	}
	ma.address = uint16(addr)

	ma.idx, ma.area = b.MapAddress(ma.address, read)
	if ma.area == nil {
		return ma, fmt.Errorf("address is not mapped in %s memory: %s", b.Label(), address)
	}

	return ma, nil
}
