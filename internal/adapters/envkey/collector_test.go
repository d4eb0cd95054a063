package envkey_test

import (
	"runtime"
	"testing"

	"github.com/stampkit/stamp/internal/adapters/envkey"
	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	t.Setenv("CFLAGS", "-O2")
	t.Setenv("CPPFLAGS", "-DNDEBUG")
	t.Setenv("CXXFLAGS", "-std=c++17")

	key := envkey.NewCollector().Collect("/usr/bin/c++", "release")

	assert.Equal(t, runtime.Version(), key.RuntimeVersion)
	assert.Equal(t, "/usr/bin/c++", key.Compiler)
	assert.Equal(t, "release", key.ConfigBase)
	assert.Equal(t, "-O2", key.CFlags)
	assert.Equal(t, "-DNDEBUG", key.CPPFlags)
	assert.Equal(t, "-std=c++17", key.CXXFlags)
}

func TestCollect_FlagChangesKey(t *testing.T) {
	c := envkey.NewCollector()

	t.Setenv("CXXFLAGS", "-O0")
	before := c.Collect("c++", "")

	t.Setenv("CXXFLAGS", "-O3")
	after := c.Collect("c++", "")

	assert.NotEqual(t, before, after)
}
