package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/maskbound/logger"
	"github.com/milk9111/maskbound/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	arenaName := flag.String("arena", "", "arena file in prefabs/ (default arena.yaml)")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml on change")
	seed := flag.Int64("seed", 1, "seed for possessed drift noise")
	flag.Parse()

	logger.Init()

	game, err := NewGame(Config{
		ArenaName: *arenaName,
		Debug:     *debug,
		Seed:      *seed,
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start")
	}

	if *watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Log.WithError(err).Warn("prefab watch disabled")
		} else {
			defer watcher.Close()
			game.Watch(watcher)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("maskbound")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
