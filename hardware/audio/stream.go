package audio

import "sync"

// the maximum number of bytes held by the stream. older data is discarded if
// the stream is not being read quickly enough
const maxBuffered = 44100 * 2

// Stream is an io.Reader implementation that forwards mixed audio to
// something that can play it back. Samples are output as mono 16bit
// little-endian
type Stream struct {
	crit sync.Mutex
	data []uint8

	// nudge is called when the reader is running short of data
	nudge func()
}

// NewStream creates a new Stream. the nudge function can be nil
func NewStream(nudge func()) *Stream {
	return &Stream{
		nudge: nudge,
	}
}

// Push samples onto the end of the stream
func (s *Stream) Push(samples []int16) {
	s.crit.Lock()
	defer s.crit.Unlock()

	for _, v := range samples {
		s.data = append(s.data, uint8(v), uint8(v>>8))
	}

	if len(s.data) > maxBuffered {
		s.data = s.data[len(s.data)-maxBuffered:]
	}
}

// Buffered returns the number of bytes waiting to be read
func (s *Stream) Buffered() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return len(s.data)
}

// Nudge indicates that the consumer of the stream would like more data
func (s *Stream) Nudge() {
	if s.nudge != nil {
		s.nudge()
	}
}

func (s *Stream) Read(buf []uint8) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	// the number of bytes returned must be a multiple of two so that the
	// sample data stays aligned
	n := min(len(s.data), len(buf)) &^ 0x01
	copy(buf, s.data[:n])
	s.data = s.data[n:]

	return n, nil
}
