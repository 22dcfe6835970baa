package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/config"
	"github.com/milk9111/contour/levels"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	debug := flag.Bool("debug", env.Debug, "enable debug keys and overlays")
	level := flag.Int("level", 0, "index of the level to start in")
	settingsPath := flag.String("settings", env.SettingsPath, "path of the settings file")
	projectName := flag.String("project", levels.DefaultProject, "level project in levels/")
	flag.Parse()

	logger.Init(env.LogLevel, env.LogFormat)

	settings, err := config.LoadSettings(*settingsPath)
	switch {
	case errors.Is(err, config.ErrNoSettings):
		logger.Log.WithField("path", *settingsPath).Info("no settings file, using defaults")
	case err != nil:
		logger.Log.WithError(err).WithField("path", *settingsPath).Warn("settings unreadable, using defaults")
	}

	project, warnings, err := levels.LoadProject(*projectName)
	for _, w := range warnings {
		logger.Log.WithField("project", *projectName).Warn(w.String())
	}
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}

	game, err := NewGame(GameOptions{
		Project:      project,
		ProjectName:  *projectName,
		Level:        *level,
		Debug:        *debug,
		HotReload:    env.HotReload,
		Settings:     settings,
		SettingsPath: *settingsPath,
	})
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Contour")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(settings.Resolution[0]), int(settings.Resolution[1]))
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetVsyncEnabled(settings.VSync)
	ebiten.SetTPS(common.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	logger.Log.WithFields(logrus.Fields{
		"level":  *level,
		"debug":  *debug,
		"levels": len(project.Levels),
	}).Info("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
