package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/test1942/test"
	"github.com/jetsetilly/test1942/wavwriter"
)

func TestWavWriter(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(pth, 44100)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]int16{0, 100, -100, 32767}))
	test.ExpectSuccess(t, aw.SetAudio([]int16{-32768}))
	test.ExpectEquality(t, aw.Samples(), 5)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.SampleRate, uint32(44100))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.DemandEquality(t, len(buf.Data), 5)
	test.ExpectEquality(t, buf.Data[1], 100)
	test.ExpectEquality(t, buf.Data[2], -100)
	test.ExpectEquality(t, buf.Data[4], -32768)
}

func TestBadParameters(t *testing.T) {
	_, err := wavwriter.New("", 44100)
	test.ExpectFailure(t, err)
	_, err = wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}
