package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/milk9111/crossroads/config"
	"github.com/milk9111/crossroads/entity"
	"github.com/milk9111/crossroads/hotreload"
	"github.com/milk9111/crossroads/render"
	"github.com/milk9111/crossroads/script"
	"github.com/milk9111/crossroads/world"
)

const frameTime = time.Second / 60

// Game drives a World from a ticker and draws it into a tcell screen.
type Game struct {
	screen tcell.Screen
	input  *KeyInput
	world  *world.World
	term   *render.Terminal
	reload *hotreload.Reloader
	log    *zap.Logger

	running bool
}

func NewGame(ctx context.Context, cfg config.Config, configPath, filterPath string, log *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	g, err := newGame(ctx, screen, cfg, filterPath, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	r, err := hotreload.New(configPath, filterPath, g.world, log)
	if err != nil {
		log.Warn("hot reload disabled", zap.Error(err))
	} else {
		g.reload = r
	}
	return g, nil
}

func newGame(ctx context.Context, screen tcell.Screen, cfg config.Config, filterPath string, log *zap.Logger) (*Game, error) {
	g := &Game{
		screen:  screen,
		input:   NewKeyInput(),
		log:     log,
		running: true,
	}

	opts := []world.Option{world.WithLogger(log)}
	if filterPath != "" {
		f, err := script.Load(filterPath, log)
		if err != nil {
			return nil, err
		}
		opts = append(opts, world.WithSpawnFilter(f))
	}

	player := entity.NewPlayer(40, float64(cfg.Camera.ViewHeight)/2, g.input)
	factory := render.TerminalFactory(screen, float64(cfg.Camera.ViewWidth), &g.term)
	w, err := world.New(ctx, cfg, player, factory, opts...)
	if err != nil {
		return nil, err
	}
	w.SetPainter(g.term)
	g.world = w
	return g, nil
}

// Run loops until the player quits.
func (g *Game) Run() error {
	defer g.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for g.running {
		select {
		case ev := <-events:
			g.handleEvent(ev)
		case <-ticker.C:
			g.step()
		}
	}
	return nil
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !g.input.HandleKey(ev) {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) step() {
	g.reload.Poll()
	g.input.Update()
	g.world.Update()

	g.screen.Clear()
	g.world.Render()
	g.drawStatus()
	g.screen.Show()
}

func (g *Game) drawStatus() {
	_, rows := g.screen.Size()
	s := g.world.Stats()
	line := fmt.Sprintf("tick %d  entities %d  scroll %.0f  spawned %d dropped %d filtered %d",
		g.world.Tick(), g.world.EntityCount(), g.world.ScrollX(), s.Spawned, s.Dropped, s.Filtered)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range line {
		g.screen.SetContent(i, rows-1, r, nil, style)
	}
}

// Close restores the terminal and stops the watcher.
func (g *Game) Close() {
	if err := g.reload.Close(); err != nil {
		g.log.Warn("closing watcher", zap.Error(err))
	}
	if g.screen != nil {
		g.screen.Fini()
		g.screen = nil
	}
}
