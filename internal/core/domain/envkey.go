package domain

// EnvironmentKey captures the non-file inputs that affect compilation output:
// toolchain and runtime versions, the compiler, installation prefix, the
// build-configuration base identifier and the compiler-flag environment
// variables.
//
// The field order below is the canonical encoding order used by the
// fingerprint computation and must not be rearranged: reordering fields
// changes every digest ever computed.
type EnvironmentKey struct {
	ToolVersion    string
	RuntimeVersion string
	Compiler       string
	InstallPrefix  string
	ConfigBase     string
	CFlags         string
	CPPFlags       string
	CXXFlags       string
}

// Fields returns the key's fields in canonical encoding order.
func (k EnvironmentKey) Fields() []string {
	return []string{
		k.ToolVersion,
		k.RuntimeVersion,
		k.Compiler,
		k.InstallPrefix,
		k.ConfigBase,
		k.CFlags,
		k.CPPFlags,
		k.CXXFlags,
	}
}
