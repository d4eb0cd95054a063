package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stampkit/stamp/cmd/stamp/commands"
	"github.com/stampkit/stamp/internal/adapters/config"
	"github.com/stampkit/stamp/internal/adapters/envkey"
	"github.com/stampkit/stamp/internal/adapters/fingerprint"
	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stampkit/stamp/internal/adapters/telemetry"
	"github.com/stampkit/stamp/internal/adapters/trailer"
	"github.com/stampkit/stamp/internal/app"
	"github.com/stampkit/stamp/internal/build"
	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/engine/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoCompiler creates the artifact without invoking a real compiler.
type echoCompiler struct{}

func (echoCompiler) Compile(_ context.Context, _, artifactPath string, _ domain.BuildConfig) ([]string, error) {
	return nil, os.WriteFile(artifactPath, []byte("obj"), 0o600)
}

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	log := logger.New()
	log.SetOutput(io.Discard)

	fp := fingerprint.NewComputer()
	codec := trailer.NewCodec()
	a := app.New(
		config.NewLoader(log),
		envkey.NewCollector(),
		cache.NewValidator(fp, codec, log),
		cache.NewWriter(fp, codec),
		echoCompiler{},
		log,
		telemetry.NewNoop(),
	)

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOut(&out)
	return cli, &out
}

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "mod.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int f();\n"), 0o600))
	return src
}

func TestVersionCommand(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), build.Version)
}

func TestBuildThenCheck(t *testing.T) {
	cli, out := newCLI(t)
	src := writeSource(t, t.TempDir())

	cli.SetArgs([]string{"build", src})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "mod.so")

	out.Reset()
	cli.SetArgs([]string{"check", src})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "valid")
}

func TestCheckUnbuiltSource(t *testing.T) {
	cli, out := newCLI(t)
	src := writeSource(t, t.TempDir())

	cli.SetArgs([]string{"check", src})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, commands.ErrArtifactsInvalid)
	assert.Contains(t, out.String(), "invalid")
}

func TestCheckWithoutArgs(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"check"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSourcesSpecified)
}

func TestBuildQuiet(t *testing.T) {
	cli, out := newCLI(t)
	src := writeSource(t, t.TempDir())

	cli.SetArgs([]string{"build", "--quiet", src})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "mod.so", "quiet silences logs, not the result")
}

func TestBuildWithConfigBase(t *testing.T) {
	cli, out := newCLI(t)
	src := writeSource(t, t.TempDir())

	cli.SetArgs([]string{"build", "--config-base", "debug", src})
	require.NoError(t, cli.Execute(context.Background()))
	assert.NotContains(t, out.String(), filepath.Dir(src)+"/mod.so",
		"a config base gets its own artifact name")
}
