// Package script runs tengo spawn filters. A filter sees each NPC the
// world is about to add and may veto it or change its variant.
//
// Globals visible to the script:
//
//	kind    string  "walker", "standing" or "crossing"
//	variant int     sprite variant, writable
//	x, y    float   spawn position in world pixels
//	tick    int     world tick of the spawn
//	allow   bool    set to false to veto, defaults to true
package script

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/crossroads/entity"
)

// SpawnFilter is a compiled tengo filter. It is not safe for concurrent use.
type SpawnFilter struct {
	name     string
	compiled *tengo.Compiled
	log      *zap.Logger
}

// Load compiles the filter at path.
func Load(path string, log *zap.Logger) (*SpawnFilter, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Compile(path, src, log)
}

// Compile compiles src. name is used in errors and logs.
func Compile(name string, src []byte, log *zap.Logger) (*SpawnFilter, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := tengo.NewScript(src)
	globals := map[string]any{
		"kind":    "",
		"variant": 0,
		"x":       0.0,
		"y":       0.0,
		"tick":    0,
		"allow":   true,
	}
	for k, v := range globals {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("script: %s: add %s: %w", name, k, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &SpawnFilter{name: name, compiled: compiled, log: log}, nil
}

// Name is the path or label the filter was compiled from.
func (f *SpawnFilter) Name() string {
	return f.name
}

// Filter runs the script for n. Runtime errors let the spawn through.
func (f *SpawnFilter) Filter(n *entity.NPC, tick int) bool {
	if f == nil || f.compiled == nil || n == nil {
		return true
	}

	if err := f.bind(n, tick); err != nil {
		f.log.Warn("spawn filter bind failed", zap.String("script", f.name), zap.Error(err))
		return true
	}
	if err := f.compiled.Run(); err != nil {
		f.log.Warn("spawn filter failed", zap.String("script", f.name), zap.Int("tick", tick), zap.Error(err))
		return true
	}

	if v := f.compiled.Get("variant"); v != nil && v.ValueType() == "int" {
		n.Variant = v.Int()
	}
	allow := f.compiled.Get("allow")
	if allow == nil || allow.IsUndefined() {
		return true
	}
	return allow.Bool()
}

func (f *SpawnFilter) bind(n *entity.NPC, tick int) error {
	pos := n.Position()
	values := []struct {
		name  string
		value any
	}{
		{"kind", n.Kind.String()},
		{"variant", n.Variant},
		{"x", pos.X},
		{"y", pos.Y},
		{"tick", tick},
		{"allow", true},
	}
	for _, v := range values {
		if err := f.compiled.Set(v.name, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.name, err)
		}
	}
	return nil
}
