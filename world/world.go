// Package world builds a procedurally generated side-scrolling level and
// runs it frame by frame: spawning NPCs, pruning and depth-sorting them,
// and scrolling the camera after the player.
package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/rng"
)

var ErrNoFocus = errors.New("world: focus entity is nil")

// Stats counts spawn outcomes since the world was built.
type Stats struct {
	Spawned  int
	Dropped  int
	Filtered int
	Pruned   int
}

// World is the level aggregate. It owns the entity collection and holds
// the focus entity for camera math.
type World struct {
	id  string
	cfg config.Config

	widthInTiles  int
	heightInTiles int
	tileSize      int
	pixelW        float64
	pixelH        float64

	tileMap    TileMap
	crossroads []*Crossroad
	engine     TileEngine

	camera   *Camera
	spawner  *Spawner
	entities *entity.Collection
	focus    entity.Entity

	src     rng.Source
	filter  SpawnFilter
	painter entity.Painter
	log     *zap.Logger
	stats   Stats
}

type Option func(*World)

// WithSource replaces the seeded stream, e.g. with a scripted one in tests.
func WithSource(src rng.Source) Option {
	return func(w *World) {
		if src != nil {
			w.src = src
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

func WithSpawnFilter(f SpawnFilter) Option {
	return func(w *World) {
		w.filter = f
	}
}

func WithPainter(p entity.Painter) Option {
	return func(w *World) {
		w.painter = p
	}
}

// New generates the level for cfg and places focus in it. The tile engine
// is built from the generated map by newEngine.
func New(ctx context.Context, cfg config.Config, focus entity.Entity, newEngine TileEngineFactory, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if focus == nil {
		return nil, ErrNoFocus
	}
	if newEngine == nil {
		return nil, errors.New("world: tile engine factory is nil")
	}

	w := &World{
		id:            uuid.NewString(),
		cfg:           cfg,
		widthInTiles:  cfg.Level.WidthInTiles,
		heightInTiles: cfg.HeightInTiles(),
		tileSize:      cfg.Level.TileSize,
		focus:         focus,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.src == nil {
		w.src = rng.New(cfg.Seed)
	}
	w.log = w.log.With(zap.String("world", w.id))

	w.pixelW = float64(w.widthInTiles * w.tileSize)
	w.pixelH = float64(w.heightInTiles * w.tileSize)

	w.tileMap, w.crossroads = GenerateTiles(ctx, w.src, cfg)
	engine, err := newEngine(w.tileMap)
	if err != nil {
		return nil, fmt.Errorf("world: build tile engine: %w", err)
	}
	w.engine = engine

	w.camera = NewCamera(float64(cfg.Camera.ViewWidth), float64(cfg.Camera.BorderSize), w.pixelW)
	w.spawner = NewSpawner(w.src, cfg.Spawn)
	w.entities = entity.NewCollection(cfg.Spawn.Capacity, w)
	if !w.entities.Add(focus) {
		return nil, errors.New("world: focus entity is bound to another world")
	}
	w.refocus()

	w.log.Info("level generated",
		zap.String("seed", cfg.Seed),
		zap.Int("width_tiles", w.widthInTiles),
		zap.Int("height_tiles", w.heightInTiles),
		zap.Int("crossroads", len(w.crossroads)),
	)
	return w, nil
}

// ID identifies this world instance in logs.
func (w *World) ID() string {
	return w.id
}

func (w *World) ScrollX() float64 {
	return w.camera.ScrollX()
}

func (w *World) ViewWidth() float64 {
	return w.camera.ViewWidth()
}

// PixelSize is the level size in pixels.
func (w *World) PixelSize() (float64, float64) {
	return w.pixelW, w.pixelH
}

// TileSize is the tile edge length in pixels.
func (w *World) TileSize() int {
	return w.tileSize
}

// Tiles is the generated tile map. Its layers must not be modified.
func (w *World) Tiles() TileMap {
	return w.tileMap
}

// Crossroads returns the crossroads in level order.
func (w *World) Crossroads() []*Crossroad {
	out := make([]*Crossroad, len(w.crossroads))
	copy(out, w.crossroads)
	return out
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) Focus() entity.Entity {
	return w.focus
}

func (w *World) Tick() int {
	return w.spawner.Tick()
}

func (w *World) Stats() Stats {
	return w.stats
}

// Entities returns the live entities in draw order.
func (w *World) Entities() []entity.Entity {
	return w.entities.All()
}

func (w *World) EntityCount() int {
	return w.entities.Len()
}

// AddEntity inserts e, dropping it when the world is full.
func (w *World) AddEntity(e entity.Entity) bool {
	return w.entities.Add(e)
}

// SetSpawnFilter replaces the spawn filter; nil removes it.
func (w *World) SetSpawnFilter(f SpawnFilter) {
	w.filter = f
}

func (w *World) SetPainter(p entity.Painter) {
	w.painter = p
}

// Retune applies new spawn cadences. Capacity is fixed at construction.
func (w *World) Retune(cfg config.SpawnConfig) {
	cfg.Capacity = w.cfg.Spawn.Capacity
	w.cfg.Spawn = cfg
	w.spawner.SetConfig(cfg)
	for _, cr := range w.crossroads {
		cr.Cadence = cfg.CrossroadCadence
	}
	w.log.Info("spawn retuned",
		zap.Int("interval", cfg.Interval),
		zap.Int("crossroad_cadence", cfg.CrossroadCadence),
		zap.Float64("lookahead", cfg.Lookahead),
	)
}

// Update advances one frame: spawn, prune, sort, update, refocus.
func (w *World) Update() {
	view := View{Left: w.camera.Left(), Right: w.camera.Right(), Height: w.pixelH}
	for _, npc := range w.spawner.Advance(view, w.crossroads) {
		w.spawn(npc)
	}

	w.stats.Pruned += w.entities.Prune()
	w.entities.SortByDepth()
	w.entities.UpdateAll()

	w.refocus()
}

// Render draws the tile layer, then every entity in depth order.
func (w *World) Render() {
	w.engine.Render()
	w.entities.RenderAll(w.painter)
}

func (w *World) spawn(npc *entity.NPC) {
	tick := w.spawner.Tick()
	if w.filter != nil && !w.filter.Filter(npc, tick) {
		w.stats.Filtered++
		return
	}
	if !w.entities.Add(npc) {
		w.stats.Dropped++
		w.log.Debug("spawn dropped",
			zap.Int("tick", tick),
			zap.Stringer("kind", npc.Kind),
			zap.Int("entities", w.entities.Len()),
		)
		return
	}
	w.stats.Spawned++
}

func (w *World) refocus() {
	w.camera.Focus(w.focus.Position().X)
	w.engine.SetScrollX(w.camera.ScrollX())
}
