// Package audio mixes the output of the sound generators and buffers the
// result for playback.
package audio

import "github.com/jetsetilly/test1942/hardware/psg"

// Mix the channels of any number of PSGs into a single mono stream. every
// channel contributes equally and the result is the integer average of all
// the channels. every channel must be the same length
func Mix(chips ...[psg.NumChannels][]int16) []int16 {
	if len(chips) == 0 {
		return nil
	}

	n := len(chips[0][0])
	div := len(chips) * psg.NumChannels

	out := make([]int16, n)
	for i := range n {
		var sum int
		for _, c := range chips {
			for _, ch := range c {
				sum += int(ch[i])
			}
		}
		out[i] = int16(sum / div)
	}

	return out
}
