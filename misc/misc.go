// Package misc keeps small helpers describing the program itself.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// version could be overwritten at build time with -ldflags.
var version = ""

// GetVersion returns program version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetGitHash returns the source revision the binary was built from.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}

// GetAppName returns the name the program was started under, extension
// stripped so it is stable across platforms.
func GetAppName() string {
	exe, err := os.Executable()
	if err != nil {
		return "cssc"
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
