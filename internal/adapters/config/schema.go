package config

// sidecarDTO is the YAML shape of a source's sidecar build config.
type sidecarDTO struct {
	Compiler     string   `yaml:"compiler"`
	Flags        []string `yaml:"flags"`
	Dependencies []string `yaml:"dependencies"`
	Sources      []string `yaml:"sources"`
	Suffix       string   `yaml:"suffix"`
}
