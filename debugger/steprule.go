package debugger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// lastSlice returns the number of the slice that has just been executed
func (m *debugger) lastSlice() int {
	n := m.ctx.Spec().Slices
	return (m.console.Coords.Slice + n - 1) % n
}

func (m *debugger) parseStepRule(cmd []string) bool {
	// rough support for step rule definition

	rule := strings.ToUpper(cmd[0])
	if rule == "FRAME" || rule == "FR" {
		var tgt int
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				return false
			}
			if tgt <= m.console.Coords.Frame {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("FRAME %d is in the past", tgt)))
				return false
			}
		} else {
			tgt = m.console.Coords.Frame + 1
		}
		m.stepRule = func() bool {
			return m.console.Coords.Frame == tgt && m.console.Coords.Slice == 0
		}
	} else if rule == "SLICE" || rule == "SL" {
		var tgt int
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				return false
			}
			if tgt < 0 || tgt >= m.ctx.Spec().Slices {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("SLICE %d is out of range", tgt)))
				return false
			}
		} else {
			tgt = (m.console.Coords.Slice + 1) % m.ctx.Spec().Slices
		}
		m.stepRule = func() bool {
			return m.console.Coords.Slice == tgt
		}
	} else if rule == "INTERRUPT" || rule == "INTR" {
		// steps until a slice in which an interrupt was asserted on either
		// processor
		sp := m.ctx.Spec()
		m.stepRule = func() bool {
			s := m.lastSlice()
			for _, irq := range sp.MainIRQ {
				if irq.Slice == s {
					return true
				}
			}
			return slices.Contains(sp.SoundIRQ, s)
		}
	} else {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("STEP %s is unsupported", rule),
		))
		return false
	}
	return true
}
