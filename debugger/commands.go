package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/test1942/logger"
	"github.com/jetsetilly/test1942/wavwriter"
)

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "R", "RUN":
		return m.run()

	case "ST", "STEP":
		if len(cmd) > 1 {
			if !m.parseStepRule(cmd[1:]) {
				break // switch
			}
		}
		return m.step()

	case "FRAME", "FR":
		n := 1
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil || n < 1 {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("cannot use FRAME %s", cmd[1]),
				))
				break // switch
			}
		}
		tgt := m.console.Coords.Frame + n
		m.stepRule = func() bool {
			return m.console.Coords.Frame >= tgt
		}
		m.postStep = func() {
			fmt.Println(m.styles.video.Render(m.console.Coords.String()))
		}
		return m.step()

	case "RESET":
		m.reset()

	case "REGS", "CPU":
		fmt.Println(m.styles.cpu.Render(
			m.console.String(),
		))

	case "REGIONS":
		fmt.Println(m.styles.mem.Render(
			m.console.Regions.String(),
		))

	case "MAP":
		fmt.Println(m.styles.mem.Render(m.console.Main.ROM.Status()))
		fmt.Println(m.styles.mem.Render(m.console.Main.Bank.Status()))
		fmt.Println(m.styles.mem.Render(m.console.Sound.ROM.Status()))

	case "VIDEO":
		fmt.Println(m.styles.video.Render(
			m.console.Video.Status(),
		))

	case "PALETTE":
		l := m.console.Video.Lookup()
		if len(cmd) > 1 {
			n, err := parseValue(cmd[1], 8)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("palette: %s", err.Error()),
				))
				break // switch
			}
			c := l.RGBA(uint8(n))
			fmt.Println(m.styles.video.Render(
				fmt.Sprintf("%02x: r=%02x g=%02x b=%02x", n, c.R, c.G, c.B),
			))
			break // switch
		}
		var s strings.Builder
		for i := range l.Palette {
			if i%8 == 0 {
				if i > 0 {
					s.WriteString("\n")
				}
				s.WriteString(fmt.Sprintf("%02x:", i))
			}
			s.WriteString(fmt.Sprintf(" %06x", l.Palette[i]))
		}
		fmt.Println(m.styles.video.Render(s.String()))

	case "PSG":
		for _, p := range m.console.PSG {
			fmt.Println(m.styles.audio.Render(p.String()))
		}

	case "DUMP":
		if len(cmd) < 3 {
			fmt.Println(m.styles.err.Render(
				"DUMP requires a 'from' and a 'to' address",
			))
			break // switch
		}

		b := m.selectBus(cmd)

		from, err := m.parseAddress(b, cmd[1], true)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("dump: %s", err.Error()),
			))
			break // switch
		}

		to, err := m.parseAddress(b, cmd[2], true)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("dump: %s", err.Error()),
			))
			break // switch
		}

		if to.address < from.address {
			fmt.Println(m.styles.err.Render(
				"dump: the 'to' address is less than the 'from' address",
			))
			break // switch
		}

		if from.area != to.area {
			fmt.Println(m.styles.err.Render(
				"dump: the 'from' and 'to' addresses are in different memory areas",
			))
			break // switch
		}

		var column int
		for i := from.idx; i <= to.idx; i++ {
			address := from.address + i - from.idx

			if column == 0 {
				fmt.Printf("%04x", address)
			}

			data, err := from.area.Read(i)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("dump address is not readable: %04x", address),
				))
				break // for loop
			}
			fmt.Printf(" %02x", data)

			column++
			if column > 15 {
				fmt.Printf("\n")
				column = 0
			}
		}
		if column != 0 {
			fmt.Printf("\n")
		}

	case "PEEK":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"PEEK requires an address",
			))
			break // switch
		}

		ma, err := m.parseAddress(m.selectBus(cmd), cmd[1], true)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("peek: %s", err.Error()),
			))
			break // switch
		}

		data, err := ma.area.Read(ma.idx)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("peek address is not readable: %s", cmd[1]),
			))
			break // switch
		}

		fmt.Println(m.styles.mem.Render(
			fmt.Sprintf("$%04x = %02x (%s)", ma.address, data, ma.area.Label()),
		))

	case "POKE":
		if len(cmd) < 3 {
			fmt.Println(m.styles.err.Render(
				"POKE requires an address and a value",
			))
			break // switch
		}

		ma, err := m.parseAddress(m.selectBus(cmd), cmd[1], false)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("poke: %s", err.Error()),
			))
			break // switch
		}

		v, err := parseValue(cmd[2], 8)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("poke: value is not valid: %s", cmd[2]),
			))
			break // switch
		}

		err = ma.area.Write(ma.idx, uint8(v))
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("poke: %s", err.Error()),
			))
			break // switch
		}

		fmt.Println(m.styles.mem.Render(
			fmt.Sprintf("$%04x <- %02x (%s)", ma.address, v, ma.area.Label()),
		))

	case "WATCH":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"WATCH requires an address",
			))
			break // switch
		}

		// we check the first argument for special keywords before assuming
		// it is an address. the keywords are case insensitive
		arg := strings.ToUpper(cmd[1])

		if arg == "DROP" {
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render(
					"WATCH DROP requires an address",
				))
				break // switch
			}

			if strings.ToUpper(cmd[2]) == "ALL" {
				clear(m.watches)
			} else {
				ma, err := m.parseAddress(m.selectBus(cmd), cmd[2], true)
				if err != nil {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("watch: %s", err.Error()),
					))
					break // switch
				}
				if _, ok := m.watches[ma.address]; !ok {
					fmt.Println(m.styles.debugger.Render(
						fmt.Sprintf("watch for $%04x not present", ma.address),
					))
					break // switch
				}
				delete(m.watches, ma.address)
				fmt.Println(m.styles.debugger.Render(
					fmt.Sprintf("watch %04x has been removed", ma.address),
				))
			}
			break // switch
		}

		ma, err := m.parseAddress(m.selectBus(cmd), cmd[1], true)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("watch: %s", err.Error()),
			))
			break // switch
		}

		if _, ok := m.watches[ma.address]; ok {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("watch for %s already present", cmd[1]),
			))
			break // switch
		}

		d, err := ma.area.Read(ma.idx)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("watch address is not readable: %s", cmd[1]),
			))
			break // switch
		}

		m.watches[ma.address] = watch{
			ma:   ma,
			data: d,
		}

	case "LIST":
		fmt.Println(m.styles.debugger.Render("watches"))
		if len(m.watches) == 0 {
			fmt.Println("none")
		} else {
			for a, w := range m.watches {
				fmt.Printf("%#04x (%s)\n", a, w.ma.area.Label())
			}
		}

	case "SCREENSHOT":
		filename := fmt.Sprintf("test1942_%d.png", m.console.Coords.Frame)
		scale := 2
		if len(cmd) > 1 {
			filename = cmd[1]
		}
		if len(cmd) > 2 {
			var err error
			scale, err = strconv.Atoi(cmd[2])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("cannot use scale %s", cmd[2]),
				))
				break // switch
			}
		}
		err := m.screenshot(filename, scale)
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("screenshot saved to %s", filename),
		))

	case "RECORD":
		if len(cmd) < 2 {
			if m.recording == nil {
				fmt.Println(m.styles.audio.Render("not recording"))
			} else {
				fmt.Println(m.styles.audio.Render(
					fmt.Sprintf("recording to %s (%d samples)", m.recording.Filename(), m.recording.Samples()),
				))
			}
			break // switch
		}

		if strings.ToUpper(cmd[1]) == "STOP" {
			err := m.endRecording()
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}
			break // switch
		}

		err := m.startRecording(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
		}

	case "LOG":
		if len(cmd) > 1 {
			switch strings.ToUpper(cmd[1]) {
			case "CLEAR":
				logger.Clear()
			case "ECHO":
				logger.SetEcho(os.Stdout)
			case "NOECHO":
				logger.SetEcho(nil)
			default:
				n, err := strconv.Atoi(cmd[1])
				if err != nil {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("unrecognised argument for LOG command: %s", cmd[1]),
					))
					break // switch
				}
				logger.Tail(os.Stdout, n)
			}
			break // switch
		}
		logger.Tail(os.Stdout, -1)

	case "HELP":
		fmt.Println(m.styles.debugger.Render(help))

	case "QUIT":
		return true

	default:
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
		))
	}

	return false
}

const help = `RUN                          run until interrupted
STEP [FRAME|SLICE|INTERRUPT] step one slice or until the condition is met
FRAME [n]                    run for n frames
RESET                        reset the board
REGS                         processor and device register state
REGIONS                      ROM regions
MAP                          ROM windows
VIDEO                        video state
PALETTE [n]                  palette entries
PSG                          sound generator state
PEEK addr [SOUND]            read memory
POKE addr value [SOUND]      write memory
DUMP from to [SOUND]         read a range of memory
WATCH [DROP] addr [SOUND]    stop when memory changes
LIST                         list watches
SCREENSHOT [file] [scale]    save the most recent frame
RECORD [file|STOP]           record audio to a WAV file
LOG [n|CLEAR|ECHO|NOECHO]    show or control the log
QUIT                         quit the program`

// startRecording begins recording audio to the named WAV file. any existing
// recording is ended first
func (m *debugger) startRecording(filename string) error {
	if m.recording != nil {
		err := m.endRecording()
		if err != nil {
			return err
		}
	}

	w, err := wavwriter.New(filename, m.ctx.Spec().SampleRate)
	if err != nil {
		return err
	}
	m.recording = w
	m.console.AddAudioRecorder(w)

	fmt.Println(m.styles.audio.Render(
		fmt.Sprintf("recording audio to %s", filename),
	))

	return nil
}

func (m *debugger) endRecording() error {
	if m.recording == nil {
		return nil
	}
	m.console.AddAudioRecorder(nil)
	w := m.recording
	m.recording = nil

	err := w.EndMixing()
	if err != nil {
		return err
	}

	fmt.Println(m.styles.audio.Render(
		fmt.Sprintf("audio saved to %s", w.Filename()),
	))

	return nil
}
