package system

import (
	"github.com/milk9111/contour/config"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// SettingsSystem persists settings whenever a config update is emitted.
type SettingsSystem struct {
	path string
	save func(path string, s config.Settings) error
}

func NewSettingsSystem(path string) *SettingsSystem {
	if path == "" {
		path = config.DefaultSettingsFile
	}
	return &SettingsSystem{path: path, save: config.SaveSettings}
}

func (s *SettingsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := ecs.Events[component.EventConfigUpdated](w)
	if len(events) == 0 {
		return
	}

	settings := events[len(events)-1].Settings.Clamp()
	if err := s.save(s.path, settings); err != nil {
		logger.Log.WithError(err).WithField("path", s.path).Error("save settings")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"path":       s.path,
		"bgm":        settings.BGM,
		"sfx":        settings.SFX,
		"vsync":      settings.VSync,
		"fullscreen": settings.Fullscreen,
	}).Info("settings saved")
}
