package config

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ConfigFS embed.FS

// DefaultFile is the embedded config loaded when no path is given.
const DefaultFile = "world.yaml"

// LoadEmbedded returns an embedded config file by name.
func LoadEmbedded(name string) ([]byte, error) {
	return ConfigFS.ReadFile(cleanConfigPath(name))
}

func cleanConfigPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}
