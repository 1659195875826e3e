//go:build !release

package resources

// the resource directory for development builds is in the current working
// directory
const configDir = ".test1942"

func resourcePath() (string, error) {
	return configDir, nil
}
