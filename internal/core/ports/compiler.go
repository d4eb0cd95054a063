package ports

import (
	"context"

	"github.com/stampkit/stamp/internal/core/domain"
)

// Compiler produces the artifact from a source file. The compilation itself
// is an external collaborator; only this boundary is part of the core.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile builds sourcePath (plus any extra sources from cfg) into
	// artifactPath. Returns the paths of generated intermediate sources that
	// participated in the build, so they can be folded into the fingerprint.
	Compile(ctx context.Context, sourcePath, artifactPath string, cfg domain.BuildConfig) (extraSources []string, err error)
}
