package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/entity"
	"github.com/milk9111/maskbound/ecs/system"
	"github.com/milk9111/maskbound/logger"
	"github.com/milk9111/maskbound/prefabs"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Config struct {
	ArenaName string
	Debug     bool
	Seed      int64
}

type Game struct {
	cfg    Config
	frames int

	world    *ecs.World
	pipeline *system.Pipeline
	input    *system.InputSystem
	render   *system.RenderSystem

	watcher       *prefabs.Watcher
	pendingReload bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	playerHits int
	freed      int

	log *logrus.Entry
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		input:  system.NewInputSystem(),
		render: system.NewRenderSystem(cfg.Debug),
		log:    logger.For("game"),
	}

	tuning, arena, err := loadPrefabs(cfg.ArenaName)
	if err != nil {
		return nil, err
	}
	if err := g.build(tuning, arena); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func loadPrefabs(arenaName string) (*prefabs.TuningSpec, *prefabs.ArenaSpec, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, nil, fmt.Errorf("game: %w", err)
	}
	arena, err := prefabs.LoadArena(arenaName, tuning)
	if err != nil {
		return nil, nil, fmt.Errorf("game: %w", err)
	}
	return tuning, arena, nil
}

// build replaces the running world with a fresh one for arena.
func (g *Game) build(tuning *prefabs.TuningSpec, arena *prefabs.ArenaSpec) error {
	w := ecs.NewWorld()
	mask, err := entity.BuildArena(w, tuning, arena)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	pipeline, err := system.NewPipeline(w, mask, g.input, g.cfg.Seed)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.world = w
	g.pipeline = pipeline
	g.playerHits = 0
	g.freed = 0
	g.log.WithFields(logrus.Fields{
		"arena":   arena.Name,
		"enemies": len(arena.Enemies),
		"walls":   len(arena.Walls),
	}).Info("arena built")
	return nil
}

// Watch enables hot reload from w. The arena is rebuilt after an edit once
// no possession is in progress.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.watcher = w
}

func (g *Game) Restart() {
	tuning, arena, err := loadPrefabs(g.cfg.ArenaName)
	if err == nil {
		err = g.build(tuning, arena)
	}
	if err != nil {
		g.log.WithError(err).Warn("restart failed, keeping current arena")
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.pollReload()

	g.pipeline.Step(g.world, 1/float64(ebiten.TPS()))
	g.drainEvents()

	if g.cfg.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.logSnapshot()
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	if changed := g.watcher.Poll(); len(changed) > 0 {
		g.log.WithField("files", changed).Info("prefabs changed")
		g.pendingReload = true
	}
	if g.pendingReload && !g.pipeline.Arbiter.IsPossessing() {
		g.pendingReload = false
		g.Restart()
	}
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventPlayerHit:
			g.playerHits++
		case ecs.EventHostFreed:
			g.freed++
		}
		g.log.WithFields(logrus.Fields{
			"event":  evt.Kind,
			"entity": evt.Entity,
		}).Debug("event")
	}
}

func (g *Game) logSnapshot() {
	out, err := system.Snapshot(g.world, g.pipeline.Arbiter)
	if err != nil {
		g.log.WithError(err).Warn("snapshot failed")
		return
	}
	g.log.WithField("frame", g.frames).Info("snapshot\n" + string(out))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.cfg.Debug {
		system.DrawPhysicsDebug(g.pipeline.Physics.Space(), g.world, screen)
	}

	status := "mask"
	if g.pipeline.Arbiter.IsPossessing() {
		status = fmt.Sprintf("possessing %v", g.pipeline.Arbiter.Host())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  %s  hits: %d  freed: %d\nWASD move  E possess  Space eject  J/click fire  Esc pause",
		ebiten.ActualFPS(), status, g.playerHits, g.freed))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
