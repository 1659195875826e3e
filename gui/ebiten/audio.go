package ebiten

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/test1942/gui"
)

type audioPlayer struct {
	p *oto.Player
	r gui.AudioReader

	// the state field is accessed by the Read() function via the audio
	// engine, and by the GUI which is in another goroutine. access to the state
	// field therefore, is protected by a mutex
	crit  sync.Mutex
	state gui.State
}

func (a *audioPlayer) setState(state gui.State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = state
}

func (a *audioPlayer) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state != gui.StateRunning {
		return 0, nil
	}

	const prefetch = 2048

	sz := a.p.BufferedSize()
	if sz < prefetch {
		a.r.Nudge()
	}

	n, err := a.r.Read(buf)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// setup creates the oto context and player. the oto context can only be
// created once per process so subsequent calls reuse the context
func (a *audioPlayer) setup(s gui.AudioSetup, endGui chan bool) (bool, error) {
	if a.p != nil {
		err := a.p.Close()
		if err != nil {
			return false, err
		}
		a.p = nil
	}

	if s.Read == nil {
		return false, nil
	}

	if otoContext == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   s.Freq,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return false, err
		}

		select {
		case <-ready:
		case <-endGui:
			return true, nil
		}

		otoContext = ctx
	}

	a.crit.Lock()
	a.r = s.Read
	a.p = otoContext.NewPlayer(a)
	a.crit.Unlock()

	a.p.Play()

	return false, nil
}

var otoContext *oto.Context
