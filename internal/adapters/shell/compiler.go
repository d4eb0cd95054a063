// Package shell provides the compiler process adapter.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by invoking the system compiler.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile builds the source into a shared object at artifactPath. Extra
// sources from the config are compiled into the same artifact and returned
// absolutized, so the caller can fold them into the fingerprint.
func (c *Compiler) Compile(ctx context.Context, sourcePath, artifactPath string, cfg domain.BuildConfig) ([]string, error) {
	compiler := cfg.Compiler
	if compiler == "" {
		compiler = domain.DefaultCompiler
	}

	dir := filepath.Dir(sourcePath)
	extras := make([]string, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		if !filepath.IsAbs(src) {
			src = filepath.Join(dir, src)
		}
		extras = append(extras, src)
	}

	args := []string{"-shared", "-fPIC"}
	args = append(args, cfg.Flags...)
	args = append(args, sourcePath)
	args = append(args, extras...)
	args = append(args, "-o", artifactPath)

	cmd := exec.CommandContext(ctx, compiler, args...) //nolint:gosec // Compiler and flags come from the user's config
	cmd.Stdout = &logWriter{logger: c.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: c.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrCompileFailed, err.Error()), "source", sourcePath),
			"exit_code", exitCode,
		)
	}

	return extras, nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write forwards compiler output to the logger line by line. Partial lines
// are logged as-is; compiler diagnostics are line-oriented enough that
// buffering is not worth the complexity here.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
