package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/hardware"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/spec"
	"github.com/jetsetilly/test1942/logger"
	"github.com/jetsetilly/test1942/romset"
	"github.com/jetsetilly/test1942/statsview"
	"github.com/jetsetilly/test1942/wavwriter"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	ctx context

	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	g *gui.GUI

	console *hardware.Console
	watches map[uint16]watch

	// rule for stepping. by default (the field is nil) the step will move
	// forward one slice
	stepRule func() bool
	postStep func()

	// randomise RAM on reset
	random bool

	// current audio recording. nil if there is no recording
	recording *wavwriter.WavWriter

	// printing styles
	styles styles
}

func (m *debugger) reset() {
	m.ctx.Reset()
	m.console.Reset(m.random)
	fmt.Println(m.styles.debugger.Render("board reset"))
	fmt.Println(m.styles.cpu.Render(
		m.console.String(),
	))
}

// step advances the emulation by one slice or until the step rule is
// satisfied. the step rule will be reset after the step has completed
//
// returns true if quit signal has been received
func (m *debugger) step() bool {
	// the number of slices stepped over
	var ct int

	// loop until the step rule returns true
	var done bool
	for !done {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		m.console.Step()

		// apply step rule
		if m.stepRule == nil {
			done = true
		} else {
			done = m.stepRule()
		}

		ct++
	}

	m.console.PushRender()

	// report how many slices were stepped if it is more than one
	if ct > 1 {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d slices stepped", ct),
		))
	}

	if m.postStep == nil {
		// by default we print the general status of the emulation
		fmt.Println(m.styles.cpu.Render(
			m.console.String(),
		))
		if s := m.console.LastAreaStatus(); len(s) > 0 {
			fmt.Println(m.styles.mem.Render(s))
		}
	} else {
		m.postStep()
	}

	m.stepRule = nil
	m.postStep = nil

	return false
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	fmt.Println(m.styles.debugger.Render("emulation running"))

	// we measure the number of frames in the time period of the running emulation
	startFrame := m.console.Coords.Frame
	startTime := time.Now()

	// sentinel errors returned by the hook
	var (
		watchErr   = errors.New("watch")
		contextErr = errors.New("context")
		endRunErr  = errors.New("end run")
		quitErr    = errors.New("quit")
	)

	// commands from the GUI that arrive while the emulation is running
	var pending [][]string

	// hook is called after every slice
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		case cmd := <-m.g.Commands:
			pending = append(pending, cmd)
			return endRunErr
		default:
		}

		w, err := m.checkWatches()
		if err != nil {
			return fmt.Errorf("%w%w", contextErr, err)
		}
		if w != nil {
			return fmt.Errorf("%w: %04x = %02x -> %02x", watchErr, w.ma.address, w.prev, w.data)
		}

		return nil
	}

	m.setState(gui.StateRunning)
	err := m.console.Run(hook)
	m.setState(gui.StatePaused)

	if errors.Is(err, quitErr) {
		return true
	}

	m.console.PushRender()

	if errors.Is(err, endRunErr) || errors.Is(err, hardware.Paused) {
		frames := m.console.Coords.Frame - startFrame
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d frames in %.02f seconds", frames, time.Since(startTime).Seconds())),
		)
	} else if errors.Is(err, watchErr) {
		fmt.Println(m.styles.watch.Render(err.Error()))
	} else if errors.Is(err, contextErr) {
		s := strings.TrimPrefix(err.Error(), contextErr.Error())
		fmt.Println(m.styles.err.Render(s))
	} else if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	// it's useful to see the state of the board at the end of the run
	fmt.Println(m.styles.video.Render(m.console.Coords.String()))

	// consume last memory access information
	_ = m.console.LastAreaStatus()

	// commands from the GUI. a RUN command is ignored because the emulation
	// has only just stopped running
	for _, cmd := range pending {
		if len(cmd) == 0 || strings.ToUpper(cmd[0]) == "RUN" {
			continue
		}
		if m.commands(cmd) {
			return true
		}
	}

	// the run was interrupted only to service the GUI so continue running
	if len(pending) > 0 && errors.Is(err, endRunErr) {
		return m.run()
	}

	return false
}

// setState replaces any state that the GUI has not yet received
func (m *debugger) setState(state gui.State) {
	select {
	case <-m.g.State:
	default:
	}
	m.g.State <- state
}

func (m *debugger) loop() {
	for {
		fmt.Printf("%s> ", m.console.Coords.ShortString())

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				fmt.Println(m.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case cmd = <-m.g.Commands:
			fmt.Println(strings.Join(cmd, " "))
		case <-m.sig:
			fmt.Print("\r")
			return
		case <-m.guiQuit:
			fmt.Print("\n")
			return
		}

		if len(cmd) == 0 {
			continue
		}

		if m.commands(cmd) {
			return
		}
	}
}

const programName = "test1942"

// Launch the debugger. the function returns when the user quits the
// debugger or when the guiQuit channel receives a value
func Launch(guiQuit chan bool, g *gui.GUI, args []string) error {
	var romsetPath string
	var specID string
	var profile bool
	var random bool
	var run bool
	var audio bool
	var record string
	var stats bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&romsetPath, "romset", "1942.zip", "directory or zip file containing the ROM images")
	flgs.StringVar(&specID, "spec", spec.Standard.ID, "frame rate of the board: 60HZ or 57HZ")
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for emulator")
	flgs.BoolVar(&random, "random", false, "randomise RAM on reset")
	flgs.BoolVar(&run, "run", false, "start emulation immediately")
	flgs.BoolVar(&audio, "audio", true, "play audio")
	flgs.StringVar(&record, "record", "", "record audio to WAV file")
	if statsview.Available() {
		flgs.BoolVar(&stats, "statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) == 1 {
		romsetPath = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to debugger")
	}

	specID = strings.ToUpper(specID)
	if specID != spec.Standard.ID && specID != spec.Original.ID {
		return fmt.Errorf("unsupported specification: %s", specID)
	}

	if stats {
		statsview.Launch(os.Stdout)
	}

	ctx := context{
		requestedSpec: specID,
		audio:         audio,
	}
	ctx.Reset()

	tbl := region.NewTable()
	err = romset.Load(romsetPath, tbl)
	if err != nil {
		return err
	}

	m := &debugger{
		ctx:     ctx,
		guiQuit: guiQuit,
		g:       g,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		styles:  newStyles(),
		watches: make(map[uint16]watch),
		random:  random,
	}

	m.console, err = hardware.Create(&m.ctx, g, tbl, nil)
	if err != nil {
		return err
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			s, err := r.ReadString('\n')
			select {
			case m.input <- input{
				s:   strings.TrimSpace(s),
				err: err,
			}:
			default:
			}
			if err != nil {
				return
			}
		}
	}()

	m.reset()

	// the GUI waits for the first state before opening the window
	m.setState(gui.StatePaused)

	if record != "" {
		err = m.startRecording(record)
		if err != nil {
			return err
		}
	}

	defer func() {
		err := m.endRecording()
		if err != nil {
			logger.Log(logger.Allow, "debugger", err.Error())
		}
	}()

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err.Error())
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if run {
		if m.run() {
			return nil
		}
	}

	m.loop()

	return nil
}
