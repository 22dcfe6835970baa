package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultSettingsFile is the settings file name in the working directory.
const DefaultSettingsFile = "settings.json"

// ErrNoSettings is returned by LoadSettings when the file does not exist.
var ErrNoSettings = errors.New("config: no settings file")

// Settings is the persisted audio and video configuration.
type Settings struct {
	BGM        float64    `json:"bgm"`
	SFX        float64    `json:"sfx"`
	VSync      bool       `json:"vsync"`
	Fullscreen bool       `json:"fullscreen"`
	Resolution [2]float64 `json:"resolution"`
}

func DefaultSettings() Settings {
	return Settings{
		BGM:        50,
		SFX:        50,
		VSync:      false,
		Fullscreen: false,
		Resolution: [2]float64{1920, 1080},
	}
}

// Clamp keeps volumes in [0, 100] and replaces a non-positive resolution
// with the default one.
func (s Settings) Clamp() Settings {
	s.BGM = clampVolume(s.BGM)
	s.SFX = clampVolume(s.SFX)
	if s.Resolution[0] <= 0 || s.Resolution[1] <= 0 {
		s.Resolution = DefaultSettings().Resolution
	}
	return s
}

// BGMVolume and SFXVolume return the volumes scaled to [0, 1].
func (s Settings) BGMVolume() float64 { return clampVolume(s.BGM) / 100 }
func (s Settings) SFXVolume() float64 { return clampVolume(s.SFX) / 100 }

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// LoadSettings reads path. Keys missing from the file keep their default
// values. A missing file yields ErrNoSettings; a malformed one yields a
// decode error. Both return the defaults alongside the error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, ErrNoSettings
		}
		return settings, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	return settings.Clamp(), nil
}

// SaveSettings writes s to path as indented JSON. The write goes through a
// temporary file so a crash never leaves a truncated settings file.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s.Clamp(), "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("config: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("config: replace %s: %w", path, err)
	}
	return nil
}
