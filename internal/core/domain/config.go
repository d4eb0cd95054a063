package domain

// DefaultCompiler is the compiler used when a source's config names none.
const DefaultCompiler = "c++"

// BuildConfig is the per-source build configuration loaded from the optional
// sidecar file next to the source. All fields have usable zero values: a
// source without a sidecar compiles with defaults and no extra dependencies.
type BuildConfig struct {
	// Compiler is the compiler executable to invoke. Empty means the default.
	Compiler string
	// Flags are extra compiler arguments.
	Flags []string
	// Dependencies are header or data files the source depends on, relative
	// to the source's directory unless absolute.
	Dependencies []string
	// Sources are additional source files compiled into the same artifact.
	Sources []string
	// Suffix is the artifact filename suffix. Empty means the default.
	Suffix string
}
