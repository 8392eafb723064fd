// Package resources resolves logical resource names to file paths.
package resources

import (
	"os"
	"path/filepath"
)

// EnvDir overrides the resource directory when set.
const EnvDir = "HUNGRY_PIXEL_RESOURCES"

// dirName is the resource directory name in both layouts.
const dirName = "resources"

// Dir returns the resource root.
// Search order: $HUNGRY_PIXEL_RESOURCES -> <executable dir>/resources -> ./resources
func Dir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}

	// Installed layout: resources next to the binary
	if exe, err := os.Executable(); err == nil {
		installed := filepath.Join(filepath.Dir(exe), dirName)
		if isDir(installed) {
			return installed
		}
	}

	// Development layout: run from the repository root
	return dirName
}

// Path returns the path of a resource file. The file may not exist.
func Path(name string) string {
	return filepath.Join(Dir(), name)
}

// Exists reports whether the named resource is a regular file.
func Exists(name string) bool {
	info, err := os.Stat(Path(name))
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
