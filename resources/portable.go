package resources

import (
	"os"
	"path/filepath"
)

// the name of the file that indicates a portable installation
const portableIndicator = "portable.txt"

// the path used for resources in a portable installation. empty if there is
// no portable installation
var portablePath string

func init() {
	ex, err := os.Executable()
	if err != nil {
		return
	}
	dir := filepath.Dir(ex)
	if _, err := os.Stat(filepath.Join(dir, portableIndicator)); err == nil {
		portablePath = filepath.Join(dir, "test1942_UserData")
	}
}

func checkPortable() bool {
	return portablePath != ""
}
