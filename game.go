package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/hotreload"
	"github.com/milk9111/crossroads/render"
	"github.com/milk9111/crossroads/world"
)

type GameOptions struct {
	ConfigPath string
	FilterPath string
	Debug      bool
	Log        *zap.Logger
}

type Game struct {
	frames int
	debug  bool

	input  *Input
	player *entity.Player
	world  *world.World
	engine *render.Ebiten
	reload *hotreload.Reloader
	log    *zap.Logger

	width, height float64
}

func NewGame(ctx context.Context, cfg config.Config, opts GameOptions) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	input := NewInput()
	player := entity.NewPlayer(playerStartX, float64(cfg.Camera.ViewHeight)/2, input)

	g := &Game{
		debug:  opts.Debug,
		input:  input,
		player: player,
		log:    log,
		width:  float64(cfg.Camera.ViewWidth),
		height: float64(cfg.Camera.ViewHeight),
	}

	worldOpts := []world.Option{world.WithLogger(log)}
	if opts.FilterPath != "" {
		f, err := loadFilter(opts.FilterPath, log)
		if err != nil {
			return nil, err
		}
		worldOpts = append(worldOpts, world.WithSpawnFilter(f))
	}

	w, err := world.New(ctx, cfg, player, render.EbitenFactory(&g.engine), worldOpts...)
	if err != nil {
		return nil, err
	}
	w.SetPainter(g.engine)
	g.world = w

	r, err := hotreload.New(opts.ConfigPath, opts.FilterPath, w, log)
	if err != nil {
		log.Warn("hot reload disabled", zap.Error(err))
	} else {
		g.reload = r
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.reload.Poll()
	if err := g.input.Update(); err != nil {
		return err
	}
	g.world.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Begin(screen)
	g.world.Render()

	if g.debug {
		s := g.world.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Tick: %d    FPS: %.2f\nEntities: %d    Scroll: %.0f\nSpawned: %d  Dropped: %d  Filtered: %d  Pruned: %d",
			g.world.Tick(), ebiten.ActualFPS(), g.world.EntityCount(), g.world.ScrollX(),
			s.Spawned, s.Dropped, s.Filtered, s.Pruned))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if err := g.reload.Close(); err != nil {
		g.log.Warn("closing watcher", zap.Error(err))
	}
}
