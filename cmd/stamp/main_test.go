package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Equal(t, 1, run([]string{"definitely-not-a-command"}))
}

func TestRun_CheckInvalidExitsNonZero(t *testing.T) {
	src := filepath.Join(t.TempDir(), "mod.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int f();\n"), 0o600))

	assert.Equal(t, 1, run([]string{"check", "--quiet", src}))
}
