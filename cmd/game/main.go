package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/dohyunkim/fadegate/internal/application/director"
	"github.com/dohyunkim/fadegate/internal/application/loader"
	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/scene/menu"
	"github.com/dohyunkim/fadegate/internal/application/scene/options"
	"github.com/dohyunkim/fadegate/internal/application/scene/stage"
	"github.com/dohyunkim/fadegate/internal/application/settings"
	"github.com/dohyunkim/fadegate/internal/application/transition"
	"github.com/dohyunkim/fadegate/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configsDir := flag.String("configs", "", "Load configs from this directory and live-reload on change")
	journeyFlag := flag.String("journey", "", "Record scene flow to file; empty value picks a timestamped name")
	flag.Parse()

	journeySet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "journey" {
			journeySet = true
		}
	})

	// Load configurations, from disk when requested, otherwise embedded
	var cfgLoader *config.Loader
	if *configsDir != "" {
		cfgLoader = config.NewLoader(*configsDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		cfgLoader = config.NewFSLoader(fsys)
	}
	cfg, err := cfgLoader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Settings storage; a failed open degrades to in-memory settings
	store, err := gdata.Open(gdata.Config{AppName: "fadegate"})
	if err != nil {
		log.Printf("Settings storage unavailable: %v", err)
		store = nil
	}
	sm := settings.NewManager(store)

	screenW := cfg.Display.ScreenWidth
	screenH := cfg.Display.ScreenHeight

	// Scene registry, journey recording, transition controller
	registry := loader.NewRegistry()
	var sceneLoader transition.Loader = registry
	var journey *Journey
	if journeySet {
		journey = NewJourney()
		sceneLoader = &journeyLoader{inner: registry, journey: journey}
		log.Printf("Journey recording enabled")
	}
	ctrl := transition.New(sceneLoader, cfg.Transition.FadeDuration)

	registry.Register(scene.NameMenu, func() (scene.Scene, error) {
		return menu.New(ctrl, screenW, screenH), nil
	})
	registry.Register(scene.NameOptions, func() (scene.Scene, error) {
		return options.New(ctrl, sm, screenW, screenH), nil
	})
	registry.Register(scene.NameStage, func() (scene.Scene, error) {
		stageCfg, err := cfgLoader.LoadStage("demo")
		if err != nil {
			return nil, err
		}
		return stage.New(ctrl, stageCfg, screenW, screenH), nil
	})

	d := director.New(menu.New(ctrl, screenW, screenH), registry, ctrl, screenW, screenH)

	// Live config reload when running from a directory
	if *configsDir != "" {
		watcher, err := config.NewWatcher(*configsDir)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			defer watcher.Close()
			go reloadOnChange(watcher, cfgLoader, ctrl)
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetFullscreen(sm.Get().Fullscreen)

	// Run game
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}

	if journey != nil {
		name := *journeyFlag
		if name == "" {
			name = GenerateFilename()
		}
		if err := journey.Save(name); err != nil {
			log.Printf("Failed to save journey: %v", err)
		} else {
			log.Printf("Journey saved: %s (%d visits)", name, journey.Count())
		}
	}
}

// reloadOnChange re-reads game.yaml whenever the config directory
// changes and applies the new default fade duration.
func reloadOnChange(w *config.Watcher, cfgLoader *config.Loader, ctrl *transition.Controller) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := cfgLoader.LoadGame()
			if err != nil {
				log.Printf("Config reload failed after %s changed: %v", name, err)
				continue
			}
			ctrl.SetDefaultDuration(cfg.Transition.FadeDuration)
			log.Printf("Config reloaded: fade duration now %.2fs", cfg.Transition.FadeDuration)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Config watch error: %v", err)
		}
	}
}
