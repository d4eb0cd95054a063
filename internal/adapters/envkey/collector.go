// Package envkey assembles the build-environment key.
package envkey

import (
	"os"
	"runtime"

	"github.com/stampkit/stamp/internal/build"
	"github.com/stampkit/stamp/internal/core/domain"
)

// Collector builds domain.EnvironmentKey values from the process environment.
//
// The key is collected once per call and threaded explicitly through the
// fingerprint and stamp paths; nothing downstream reads ambient process
// state, so a key captured at validation time describes exactly what was
// hashed.
type Collector struct {
	toolVersion    string
	runtimeVersion string
	installPrefix  string
}

// NewCollector creates a Collector bound to the current tool build and
// runtime.
func NewCollector() *Collector {
	prefix, err := os.Executable()
	if err != nil {
		// A tool that cannot locate itself still has a stable key; the empty
		// prefix simply stops distinguishing installations.
		prefix = ""
	}
	return &Collector{
		toolVersion:    build.Version,
		runtimeVersion: runtime.Version(),
		installPrefix:  prefix,
	}
}

// Collect returns the environment key for one build: the tool identity plus
// the compiler, the configuration base identifier and the compiler-flag
// environment variables that affect compilation output.
func (c *Collector) Collect(compiler, configBase string) domain.EnvironmentKey {
	return domain.EnvironmentKey{
		ToolVersion:    c.toolVersion,
		RuntimeVersion: c.runtimeVersion,
		Compiler:       compiler,
		InstallPrefix:  c.installPrefix,
		ConfigBase:     configBase,
		CFlags:         os.Getenv("CFLAGS"),
		CPPFlags:       os.Getenv("CPPFLAGS"),
		CXXFlags:       os.Getenv("CXXFLAGS"),
	}
}
