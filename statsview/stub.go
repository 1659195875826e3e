//go:build !statsview

package statsview

import "io"

const Address = ""

// Launch does nothing without the statsview build tag
func Launch(_ io.Writer) {
}

// Available returns true if the package has been included in the build
func Available() bool {
	return false
}
