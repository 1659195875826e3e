// Package wavwriter records the mixed audio output of the emulation to a WAV
// file. The audio is buffered in memory and written when EndMixing() is
// called.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/test1942/logger"
)

const bitDepth = 16

// WavWriter buffers mono 16bit samples until EndMixing() is called
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New creates a WavWriter for the named file. the file is not created until
// EndMixing() is called
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
	}

	return aw, nil
}

// Filename returns the name of the file that will be written
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// Samples returns the number of samples buffered so far
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// SetAudio adds samples to the end of the recording
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, v := range samples {
		aw.buffer = append(aw.buffer, int(v))
	}
	return nil
}

// EndMixing writes the buffered samples to the file
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
