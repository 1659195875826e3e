package audio_test

import (
	"testing"

	"github.com/jetsetilly/test1942/hardware/audio"
	"github.com/jetsetilly/test1942/hardware/psg"
	"github.com/jetsetilly/test1942/test"
)

func TestMix(t *testing.T) {
	var a, b [psg.NumChannels][]int16
	for i := range a {
		a[i] = []int16{600, 0, -6}
		b[i] = []int16{0, 7, -6}
	}
	b[2] = []int16{0, 0, -6}

	out := audio.Mix(a, b)
	test.ExpectEquality(t, len(out), 3)
	test.ExpectEquality(t, out[0], 300)
	test.ExpectEquality(t, out[1], 2)
	test.ExpectEquality(t, out[2], -6)

	test.ExpectEquality(t, len(audio.Mix()), 0)
}

func TestStream(t *testing.T) {
	var nudged int
	s := audio.NewStream(func() { nudged++ })

	s.Push([]int16{0x0102, -2})
	test.ExpectEquality(t, s.Buffered(), 4)

	// odd length buffers are rounded down to keep samples aligned
	buf := make([]uint8, 3)
	n, err := s.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, buf[0], 0x02)
	test.ExpectEquality(t, buf[1], 0x01)

	n, err = s.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, buf[0], 0xfe)
	test.ExpectEquality(t, buf[1], 0xff)

	n, _ = s.Read(buf)
	test.ExpectEquality(t, n, 0)

	s.Nudge()
	test.ExpectEquality(t, nudged, 1)
}

func TestStreamOverflow(t *testing.T) {
	s := audio.NewStream(nil)
	s.Push(make([]int16, 44100*2))
	test.ExpectEquality(t, s.Buffered(), 44100*2)
	s.Nudge()
}
