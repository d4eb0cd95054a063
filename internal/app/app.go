// Package app implements the application layer for stamp.
package app

import (
	"context"
	"io"

	"github.com/stampkit/stamp/internal/adapters/envkey"
	"github.com/stampkit/stamp/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
	"github.com/stampkit/stamp/internal/engine/cache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates the check -> build -> stamp flow.
type App struct {
	configs   ports.ConfigLoader
	collector *envkey.Collector
	validator *cache.Validator
	writer    *cache.Writer
	compiler  ports.Compiler
	logger    ports.Logger
	tracer    ports.Tracer

	configBase string
}

// New creates a new App instance.
func New(
	configs ports.ConfigLoader,
	collector *envkey.Collector,
	validator *cache.Validator,
	writer *cache.Writer,
	compiler ports.Compiler,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configs:   configs,
		collector: collector,
		validator: validator,
		writer:    writer,
		compiler:  compiler,
		logger:    logger,
		tracer:    tracer,
	}
}

// SetConfigBase sets the build-configuration base identifier. It becomes part
// of every environment key, so artifacts built under different bases never
// validate against each other.
func (a *App) SetConfigBase(base string) {
	a.configBase = base
}

// SetQuiet silences log output and progress recording.
func (a *App) SetQuiet() {
	a.logger.SetOutput(io.Discard)
	a.tracer = telemetry.NewNoop()
}

// CheckResult pairs a source file with its artifact's validity verdict.
type CheckResult struct {
	Source   string
	Artifact string
	Verdict  domain.Verdict
}

// Check reports whether the artifact for the given source is still valid.
// Purely a read-only query; the artifact is never touched.
func (a *App) Check(_ context.Context, sourcePath string) (CheckResult, error) {
	target, err := a.resolve(sourcePath)
	if err != nil {
		return CheckResult{Source: sourcePath}, err
	}

	verdict := a.validator.Check(target.artifact, target.key)
	return CheckResult{Source: target.source, Artifact: target.artifact, Verdict: verdict}, nil
}

// CheckAll validates the artifacts of several sources concurrently.
// Validation is read-only, so the checks are independent; results come back
// in input order regardless of completion order.
func (a *App) CheckAll(ctx context.Context, sourcePaths []string) ([]CheckResult, error) {
	if len(sourcePaths) == 0 {
		return nil, domain.ErrNoSourcesSpecified
	}

	results := make([]CheckResult, len(sourcePaths))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sourcePaths {
		g.Go(func() error {
			res, err := a.Check(ctx, src)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Build ensures a valid artifact exists for the source: it validates first,
// and on a cache miss rebuilds under the advisory lock and stamps the result.
// A stamp failure is downgraded to a warning - the artifact stands, it is
// just unverifiable until the next run rebuilds it.
func (a *App) Build(ctx context.Context, sourcePath string, force bool) (string, error) {
	target, err := a.resolve(sourcePath)
	if err != nil {
		return "", err
	}

	if !force {
		if verdict := a.validator.Check(target.artifact, target.key); verdict.Valid {
			a.logger.Info("artifact up to date", "artifact", target.artifact)
			return target.artifact, nil
		}
	}

	lock := NewLock(target.artifact + LockSuffix)
	if err := lock.Acquire(ctx); err != nil {
		return "", err
	}
	defer lock.Release()

	// Another process may have finished the same build while we waited.
	if !force {
		if verdict := a.validator.Check(target.artifact, target.key); verdict.Valid {
			a.logger.Info("artifact built concurrently, reusing", "artifact", target.artifact)
			return target.artifact, nil
		}
	}

	if err := a.buildAndStamp(ctx, target); err != nil {
		return "", err
	}
	return target.artifact, nil
}

func (a *App) buildAndStamp(ctx context.Context, t buildTarget) error {
	ctx, vertex := a.tracer.Record(ctx, "compile "+t.source)
	extras, err := a.compiler.Compile(ctx, t.source, t.artifact, t.cfg)
	vertex.Complete(err)
	if err != nil {
		return zerr.With(err, "artifact", t.artifact)
	}

	_, stampVertex := a.tracer.Record(ctx, "stamp "+t.artifact)
	err = a.writer.Stamp(t.artifact, t.source, t.cfg, extras, t.key)
	stampVertex.Complete(err)
	if err != nil {
		// Build succeeded, cache is cold. The next run rebuilds.
		a.logger.Warn("failed to stamp artifact, it will rebuild next run", "artifact", t.artifact, "error", err.Error())
	}
	return nil
}

type buildTarget struct {
	source   string
	artifact string
	cfg      domain.BuildConfig
	key      domain.EnvironmentKey
}

func (a *App) resolve(sourcePath string) (buildTarget, error) {
	source, err := absSource(sourcePath)
	if err != nil {
		return buildTarget{}, err
	}

	cfg, err := a.configs.Load(source)
	if err != nil {
		return buildTarget{}, err
	}

	compiler := cfg.Compiler
	if compiler == "" {
		compiler = domain.DefaultCompiler
	}

	return buildTarget{
		source:   source,
		artifact: ArtifactPath(source, cfg, a.configBase),
		cfg:      cfg,
		key:      a.collector.Collect(compiler, a.configBase),
	}, nil
}
