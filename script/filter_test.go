package script

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/milk9111/crossroads/entity"
)

func TestSpawnFilter(t *testing.T) {
	cases := []struct {
		name        string
		src         string
		npc         *entity.NPC
		tick        int
		wantAllow   bool
		wantVariant int
	}{
		{
			name:        "empty_allows",
			src:         ``,
			npc:         entity.NewNPC(entity.KindWalker, 1, 10, 20, 0.5, 0),
			tick:        10,
			wantAllow:   true,
			wantVariant: 1,
		},
		{
			name:        "veto_standing",
			src:         `if kind == "standing" { allow = false }`,
			npc:         entity.NewNPC(entity.KindStanding, 2, 700, 30, 0, 0),
			tick:        20,
			wantAllow:   false,
			wantVariant: 2,
		},
		{
			name:        "keeps_other_kinds",
			src:         `if kind == "standing" { allow = false }`,
			npc:         entity.NewNPC(entity.KindCrossing, 1, 700, -20, 0, 0.4),
			tick:        50,
			wantAllow:   true,
			wantVariant: 1,
		},
		{
			name:        "retype_by_tick",
			src:         `if tick % 100 == 0 { variant = 2 }`,
			npc:         entity.NewNPC(entity.KindWalker, 1, 0, 0, 0, 0),
			tick:        200,
			wantAllow:   true,
			wantVariant: 2,
		},
		{
			name:        "position_gate",
			src:         `allow = y > 100.0`,
			npc:         entity.NewNPC(entity.KindWalker, 1, 0, 50, 0, 0),
			tick:        10,
			wantAllow:   false,
			wantVariant: 1,
		},
		{
			name:        "runtime_error_allows",
			src:         `allow = kind - 1`,
			npc:         entity.NewNPC(entity.KindWalker, 1, 0, 0, 0, 0),
			tick:        10,
			wantAllow:   true,
			wantVariant: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Compile(c.name, []byte(c.src), zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := f.Filter(c.npc, c.tick); got != c.wantAllow {
				t.Fatalf("expected allow=%v, got %v", c.wantAllow, got)
			}
			if c.npc.Variant != c.wantVariant {
				t.Fatalf("expected variant %d, got %d", c.wantVariant, c.npc.Variant)
			}
		})
	}
}

func TestSpawnFilterResetsBetweenCalls(t *testing.T) {
	f, err := Compile("toggle", []byte(`if kind == "walker" { allow = false }`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Filter(entity.NewNPC(entity.KindWalker, 1, 0, 0, 0, 0), 1) {
		t.Fatal("walker should be vetoed")
	}
	if !f.Filter(entity.NewNPC(entity.KindCrossing, 1, 0, 0, 0, 0), 2) {
		t.Fatal("allow must reset to true for the next spawn")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("broken", []byte(`if {`), nil); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.tengo")
	if err := os.WriteFile(path, []byte(`allow = kind != "crossing"`), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Name() != path {
		t.Fatalf("unexpected name %s", f.Name())
	}
	if f.Filter(entity.NewNPC(entity.KindCrossing, 1, 0, 0, 0, 0), 50) {
		t.Fatal("crossing should be vetoed")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.tengo"), nil); err == nil {
		t.Fatal("expected read error")
	}
}

func TestNilFilterAllows(t *testing.T) {
	var f *SpawnFilter
	if !f.Filter(entity.NewNPC(entity.KindWalker, 1, 0, 0, 0, 0), 1) {
		t.Fatal("nil filter should allow")
	}
}
