// Package psg emulates the AY-3-8910 programmable sound generator. The board
// has two of them, both connected to the sound processor.
//
// Each PSG has three square wave tone channels, a single noise generator that
// can be mixed into any of the channels, and a single envelope generator that
// can control the amplitude of any of the channels.
//
// The chip is accessed through two ports. Writing to port zero selects a
// register and writing to port one writes to the selected register. Register
// reads are not supported because the board never reads from the PSGs.
//
// Output is generated in blocks with the Render() function. Each channel is
// output separately and mixing is left to the caller.
package psg
