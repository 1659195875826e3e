package logger

import (
	"io"
)

// the central logger is the only logger in the program
var central *logger

const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear all entries from central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer. Returns false if there was
// nothing to write
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the last N entries to io.Writer. A negative value writes every
// entry
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints entries to io.Writer as they are added. A nil value stops
// the echo
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
