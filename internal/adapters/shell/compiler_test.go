package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stampkit/stamp/internal/adapters/shell"
	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompiler(buf *bytes.Buffer) *shell.Compiler {
	log := logger.New()
	log.SetOutput(buf)
	return shell.NewCompiler(log)
}

func TestCompile_CommandSucceeds(t *testing.T) {
	// "true" ignores the compiler-shaped arguments and exits zero; the
	// adapter only cares about process plumbing, not real compilation.
	var buf bytes.Buffer
	c := newCompiler(&buf)

	extras, err := c.Compile(context.Background(), "/src/mod.cpp", "/src/mod.so", domain.BuildConfig{
		Compiler: "true",
		Sources:  []string{"extra.cpp", "/abs/other.cpp"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/extra.cpp", "/abs/other.cpp"}, extras,
		"relative extra sources are absolutized against the source dir")
}

func TestCompile_CommandFails(t *testing.T) {
	var buf bytes.Buffer
	c := newCompiler(&buf)

	_, err := c.Compile(context.Background(), "/src/mod.cpp", "/src/mod.so", domain.BuildConfig{
		Compiler: "false",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))
}

func TestCompile_CompilerNotFound(t *testing.T) {
	var buf bytes.Buffer
	c := newCompiler(&buf)

	_, err := c.Compile(context.Background(), "/src/mod.cpp", "/src/mod.so", domain.BuildConfig{
		Compiler: filepath.Join(t.TempDir(), "no-such-compiler"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))
}

func TestCompile_OutputReachesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newCompiler(&buf)

	_, err := c.Compile(context.Background(), "hello from compiler", "/dev/null", domain.BuildConfig{
		Compiler: "echo",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello from compiler")
}
