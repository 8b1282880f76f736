package main

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/milk9111/crossroads/script"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// loadFilter compiles the filter at path, falling back to the embedded
// script of the same name when the file is missing.
func loadFilter(path string, log *zap.Logger) (*script.SpawnFilter, error) {
	f, err := script.Load(path, log)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return f, err
	}

	src, embErr := scriptsFS.ReadFile("scripts/" + filepath.Base(path))
	if embErr != nil {
		return nil, err
	}
	log.Info("using embedded spawn filter", zap.String("script", filepath.Base(path)))
	return script.Compile(filepath.Base(path), src, log)
}
