package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/test1942/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestRepeatedEntries(t *testing.T) {
	l := newLogger(10)

	l.log("memory", "unmapped read: c900")
	l.log("memory", "unmapped read: c900")
	l.log("memory", "unmapped read: c900")
	test.ExpectEquality(t, len(l.entries), 1)

	var s strings.Builder
	l.write(&s)
	test.ExpectEquality(t, s.String(), "memory: unmapped read: c900 (repeat x3)\n")

	l.log("memory", "unmapped read: c901")
	test.ExpectEquality(t, len(l.entries), 2)
}

func TestMaximumEntries(t *testing.T) {
	l := newLogger(4)
	for _, d := range []string{"a", "b", "c", "d", "e", "f"} {
		l.log("tag", d)
	}
	test.ExpectEquality(t, len(l.entries), 4)

	var s strings.Builder
	l.tail(&s, 2)
	test.ExpectEquality(t, s.String(), "tag: e\ntag: f\n")

	s.Reset()
	l.tail(&s, -1)
	test.ExpectEquality(t, s.String(), "tag: c\ntag: d\ntag: e\ntag: f\n")
}

func TestNewlinesRemoved(t *testing.T) {
	l := newLogger(4)
	l.log("ta\ng", "det\nail")

	var s strings.Builder
	l.write(&s)
	test.ExpectEquality(t, s.String(), "tag: detail\n")
}

func TestPermission(t *testing.T) {
	Clear()
	Log(deny{}, "test", "not logged")
	var s strings.Builder
	test.ExpectFailure(t, Write(&s))

	Logf(Allow, "test", "logged %02x", 0x10)
	test.ExpectSuccess(t, Write(&s))
	test.ExpectEquality(t, s.String(), "test: logged 10\n")
	Clear()
}

func TestEcho(t *testing.T) {
	l := newLogger(4)
	var s strings.Builder
	l.setEcho(&s)
	l.log("romset", "loaded")
	l.log("romset", "loaded")
	test.ExpectEquality(t, s.String(), "romset: loaded\nromset: loaded (repeat x2)\n")
}
