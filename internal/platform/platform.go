// Package platform identifies the operating system path conventions that
// workspace path handling has to honor: slash direction, drive letters,
// and default filename casing rules.
package platform

import "runtime"

// OS identifies an operating system path convention.
type OS int

const (
	// Linux uses forward slashes and case-sensitive paths.
	Linux OS = iota

	// MacOS uses forward slashes and case-insensitive paths.
	MacOS

	// Windows uses backslashes, drive letters, and case-insensitive paths.
	Windows
)

// Current returns the OS convention of the running process.
func Current() OS {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// String returns the conventional name of the OS.
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	default:
		return "linux"
	}
}

// CaseInsensitivePaths reports whether filesystem paths compare
// case-insensitively by default on this OS.
func (o OS) CaseInsensitivePaths() bool {
	return o == Windows || o == MacOS
}

// BackslashPaths reports whether native filesystem paths use backslash
// separators on this OS.
func (o OS) BackslashPaths() bool {
	return o == Windows
}
