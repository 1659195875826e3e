package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/test1942/debugger"
	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/gui/ebiten"
	"github.com/jetsetilly/test1942/hardware/spec"
)

func main() {
	var endGui chan bool
	var endDebugger chan bool
	var resultDebugger chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the debugger and vice versa
	endGui = make(chan bool, 1)
	endDebugger = make(chan bool, 1)

	// the result channel is buffered because we don't know the order in which
	// the gui and debugger will end
	resultDebugger = make(chan error, 1)

	// frames are rotated before being sent to the gui so the width and height
	// are swapped
	g := gui.NewGUI(spec.ScreenHeight, spec.ScreenWidth)

	go func() {
		resultDebugger <- debugger.Launch(endDebugger, g, os.Args[1:])
		endGui <- true
	}()

	// the gui must run on the main goroutine
	if err := ebiten.Launch(endGui, g); err != nil {
		fmt.Printf("*** %s\n", err)
	}
	endDebugger <- true

	if err := <-resultDebugger; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
