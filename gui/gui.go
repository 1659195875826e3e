// Package gui defines the communication between the emulation and the
// graphical front end. The front end runs in its own goroutine and all
// communication is through the channels of the GUI type.
package gui

import (
	"image/color"
	"io"
)

// State of the emulation as seen by the front end
type State int

// List of valid states
const (
	StateInitialising State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateInitialising:
		return "initialising"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// AudioReader is read by the audio player of the front end. Nudge() is
// called when the player is running short of data
type AudioReader interface {
	io.Reader
	Nudge()
}

// AudioSetup is sent to the front end when audio should be played. a nil
// Read field stops any existing audio
type AudioSetup struct {
	Freq int
	Read AudioReader
}

// GUI is the collection of channels used by the emulation and front end
type GUI struct {
	// dimensions of every frame sent over the SetFrame channel
	Width  int
	Height int

	// the palette is sent once, before the first frame
	SetPalette chan color.Palette

	// each frame is a slice of palette indexes
	SetFrame chan []uint8

	UserInput  chan Input
	State      chan State
	AudioSetup chan AudioSetup

	// commands for the debugger that originate from the front end
	Commands chan []string

	// optional function run once per front end update
	UpdateGUI func() error
}

// NewGUI creates a new GUI for frames of the specified size
func NewGUI(width int, height int) *GUI {
	return &GUI{
		Width:      width,
		Height:     height,
		SetPalette: make(chan color.Palette, 1),
		SetFrame:   make(chan []uint8, 1),
		UserInput:  make(chan Input, 10),
		State:      make(chan State, 1),
		AudioSetup: make(chan AudioSetup, 1),
		Commands:   make(chan []string, 1),
	}
}
