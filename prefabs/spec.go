package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Prefab file names.
const (
	PlayerFile     = "player.yaml"
	EnemyFile      = "enemy.yaml"
	SpawnerFile    = "spawner.yaml"
	LightingFile   = "lighting.yaml"
	TransitionFile = "transition.yaml"
	CameraFile     = "camera.yaml"
	GameFile       = "game.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	FrameW  int     `yaml:"frame_w"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Layer   int     `yaml:"layer"`
}

type AnimationSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Speed     float64       `yaml:"speed"`
	Lantern   bool          `yaml:"lantern"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
	// HideSeconds hides the player after each level change.
	HideSeconds float64 `yaml:"hide_seconds"`
}

type EnemySpec struct {
	Name      string        `yaml:"name"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
	Script    string        `yaml:"script"`
}

type SpawnerSpec struct {
	BasePeriod    float64 `yaml:"base_period"`
	MinPeriod     float64 `yaml:"min_period"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	DangerSeconds float64 `yaml:"danger_seconds"`
}

type LightingSpec struct {
	GlobalLight   bool       `yaml:"global_light"`
	DaySeconds    float64    `yaml:"day_seconds"`
	NightSeconds  float64    `yaml:"night_seconds"`
	LightDistance float64    `yaml:"light_distance"`
	Overlay       SpriteSpec `yaml:"overlay"`
}

type TransitionSpec struct {
	FadeSpeed float64    `yaml:"fade_speed"`
	Sprite    SpriteSpec `yaml:"sprite"`
}

type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type GameSpec struct {
	IntroText    []string `yaml:"intro_text"`
	IntroSeconds float64  `yaml:"intro_seconds"`
	GameOverText string   `yaml:"game_over_text"`
	Music        string   `yaml:"music"`
}

func LoadPlayerSpec() (PlayerSpec, error)         { return LoadSpec[PlayerSpec](PlayerFile) }
func LoadEnemySpec() (EnemySpec, error)           { return LoadSpec[EnemySpec](EnemyFile) }
func LoadSpawnerSpec() (SpawnerSpec, error)       { return LoadSpec[SpawnerSpec](SpawnerFile) }
func LoadLightingSpec() (LightingSpec, error)     { return LoadSpec[LightingSpec](LightingFile) }
func LoadTransitionSpec() (TransitionSpec, error) { return LoadSpec[TransitionSpec](TransitionFile) }
func LoadCameraSpec() (CameraSpec, error)         { return LoadSpec[CameraSpec](CameraFile) }
func LoadGameSpec() (GameSpec, error)             { return LoadSpec[GameSpec](GameFile) }
