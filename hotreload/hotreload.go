// Package hotreload applies config and spawn filter edits to a running
// world between frames.
package hotreload

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/script"
	"github.com/milk9111/crossroads/world"
)

// Target is the part of a world that can change while it runs.
type Target interface {
	Retune(cfg config.SpawnConfig)
	SetSpawnFilter(f world.SpawnFilter)
}

type Reloader struct {
	watcher    *config.Watcher
	configPath string
	scriptPath string
	target     Target
	log        *zap.Logger
}

// New watches the directories holding configPath and scriptPath. Either
// path may be empty. Directories that do not exist are skipped.
func New(configPath, scriptPath string, target Target, log *zap.Logger) (*Reloader, error) {
	if target == nil {
		return nil, errors.New("hotreload: nil target")
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &Reloader{
		configPath: absPath(configPath),
		scriptPath: absPath(scriptPath),
		target:     target,
		log:        log,
	}

	var dirs []string
	seen := make(map[string]bool)
	for _, p := range []string{r.configPath, r.scriptPath} {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			log.Debug("not watching missing directory", zap.String("dir", dir))
			continue
		}
		dirs = append(dirs, dir)
	}

	w, err := config.NewWatcher(dirs...)
	if err != nil {
		return nil, err
	}
	r.watcher = w
	return r, nil
}

// Poll applies every pending change and returns how many were applied.
func (r *Reloader) Poll() int {
	if r == nil || r.watcher == nil {
		return 0
	}

	select {
	case err := <-r.watcher.Errors:
		r.log.Warn("watcher error", zap.Error(err))
	default:
	}

	applied := 0
	for {
		name, ok := r.watcher.Poll()
		if !ok {
			return applied
		}
		ok, err := r.Apply(name)
		if err != nil {
			r.log.Warn("reload failed", zap.String("file", name), zap.Error(err))
			continue
		}
		if ok {
			applied++
		}
	}
}

// Apply reloads name if it is the watched config or script. It reports
// whether anything changed. On error the world keeps its current state.
func (r *Reloader) Apply(name string) (bool, error) {
	path := absPath(name)
	switch {
	case path == "":
		return false, nil
	case path == r.configPath:
		cfg, err := config.Load(path)
		if err != nil {
			return false, err
		}
		r.target.Retune(cfg.Spawn)
		r.log.Info("config reloaded", zap.String("file", path))
		return true, nil
	case path == r.scriptPath:
		f, err := script.Load(path, r.log)
		if err != nil {
			return false, err
		}
		r.target.SetSpawnFilter(f)
		r.log.Info("spawn filter reloaded", zap.String("file", path))
		return true, nil
	}
	return false, nil
}

func (r *Reloader) Close() error {
	if r == nil || r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
