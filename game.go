package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/config"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/ecs/entity"
	"github.com/milk9111/contour/ecs/system"
	"github.com/milk9111/contour/levels"
	"github.com/milk9111/contour/logger"
	"github.com/milk9111/contour/prefabs"
	"github.com/sirupsen/logrus"
)

// GameOptions configures NewGame.
type GameOptions struct {
	Project      *levels.Project
	ProjectName  string
	Level        int
	Debug        bool
	HotReload    bool
	Settings     config.Settings
	SettingsPath string
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *ecs.Renderer

	project     *levels.Project
	projectName string
	enemySpec   prefabs.EnemySpec
	steering    *system.SteeringSystem
	watcher     *prefabs.Watcher

	settings    config.Settings
	options     *ebitenui.UI
	optionsOpen bool
	quit        bool
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		world:       ecs.NewWorld(),
		project:     opts.Project,
		projectName: opts.ProjectName,
		settings:    opts.Settings.Clamp(),
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	if g.enemySpec, err = prefabs.LoadEnemySpec(); err != nil {
		return nil, err
	}
	spawnerSpec, err := prefabs.LoadSpawnerSpec()
	if err != nil {
		return nil, err
	}
	lightingSpec, err := prefabs.LoadLightingSpec()
	if err != nil {
		return nil, err
	}
	transitionSpec, err := prefabs.LoadTransitionSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	lvl, err := g.project.Level(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("game: start level: %w", err)
	}
	if err := entity.SpawnLevel(g.world, lvl, opts.Level); err != nil {
		return nil, fmt.Errorf("game: spawn level: %w", err)
	}

	startX, startY := lvl.PixelSize()
	startX, startY, speed := startX/2, startY/2, 0.0
	if start, ok := entity.PlayerStart(lvl); ok {
		startX, startY = start.X, start.Y
		if start.HasSpeed {
			speed = start.Speed
		}
	} else {
		logger.Log.WithField("level", lvl.Identifier).Warn("level has no player start, using its center")
	}

	if _, err := entity.NewGameState(g.world, gameSpec, opts.Debug); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(g.world, playerSpec, startX, startY, speed); err != nil {
		return nil, err
	}
	if _, err := entity.NewLighting(g.world, lightingSpec, playerSpec.Lantern); err != nil {
		return nil, err
	}
	if _, err := entity.NewTransition(g.world, transitionSpec, opts.Level); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(g.world, cameraSpec, startX, startY); err != nil {
		return nil, err
	}
	if _, err := entity.NewCursor(g.world); err != nil {
		return nil, err
	}
	if _, err := entity.NewSpawner(g.world, spawnerSpec); err != nil {
		return nil, err
	}
	if _, err := entity.NewAudio(g.world, gameSpec, g.settings); err != nil {
		return nil, err
	}

	g.steering = system.NewSteeringSystem(g.enemySpec.Script)
	physics := system.NewPhysicsSystem()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	spawnEnemy := func(w *ecs.World, s system.EnemySpawn) (ecs.Entity, error) {
		return entity.NewEnemy(w, g.enemySpec, s.X, s.Y, s.Speed, s.DangerSeconds)
	}
	loadLevel := entity.NewLevelLoader(func() *levels.Project { return g.project })

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControlSystem(),
		system.NewDayNightSystem(),
		system.NewDebugSystem(),
		system.NewLightingSystem(),
		system.NewScreenTextSystem(),
		system.NewSpawnSystem(spawnEnemy, rng),
		system.NewDangerousSystem(),
		g.steering,
		system.NewMovementSystem(),
		physics,
		system.NewMergeSystem(),
		system.NewPlayerHitSystem(gameSpec.GameOverText),
		system.NewGateSystem(),
		system.NewTransitionSystem(),
		system.NewLevelLoadSystem(loadLevel),
		system.NewTeleportSystem(playerSpec.HideSeconds),
		system.NewPlayerVisibilitySystem(),
		system.NewScoreSystem(),
		system.NewFollowSystem(),
		system.NewCameraSystem(),
		system.NewCursorSystem(),
		system.NewInteractSystem(),
		system.NewAnimationSystem(),
		system.NewAudioSystem(),
		system.NewSettingsSystem(opts.SettingsPath),
	)
	g.renderer = ecs.NewRenderer(
		system.NewRenderSystem(),
		system.NewPhysicsDebugSystem(physics),
		system.NewHUDSystem(),
	)
	g.options = NewOptionsUI(g)

	if opts.HotReload {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) Update() error {
	g.pollReload()
	if g.quit {
		return ebiten.Termination
	}

	if g.optionsOpen {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.optionsOpen = false
			return nil
		}
		g.options.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	if _, input, ok := ecs.Single(g.world, component.InputComponent.Kind()); ok && input.OptionsPressed {
		g.optionsOpen = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.optionsOpen {
		g.options.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the hot reload watcher.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		logger.Log.WithError(err).Warn("close watcher")
	}
}

// applySettings updates the window and queues the change for the audio and
// settings systems.
func (g *Game) applySettings(s config.Settings) {
	s = s.Clamp()
	g.settings = s
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetVsyncEnabled(s.VSync)
	ecs.Emit(g.world, component.EventConfigUpdated{Settings: s})
}

func (g *Game) startWatcher() {
	var dirs []string
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		logger.Log.Info("hot reload enabled but no prefab or level directory on disk")
		return
	}
	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		logger.Log.WithError(err).Warn("hot reload disabled")
		return
	}
	g.watcher = watcher
	logger.Log.WithField("dirs", dirs).Info("hot reload watching")
}

// pollReload drains pending watcher notifications without blocking.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				logger.Log.WithError(err).Warn("hot reload watcher error")
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	log := logger.Log.WithField("file", name)
	switch prefabs.Classify(name) {
	case "script":
		if err := g.steering.Reload(); err != nil {
			log.WithError(err).Warn("steering script reload failed, using defaults")
			return
		}
		log.Info("steering script reloaded")
	case "spec":
		if filepath.Base(name) != prefabs.EnemyFile {
			log.Info("prefab changed, restart to apply")
			return
		}
		spec, err := prefabs.LoadEnemySpec()
		if err != nil {
			log.WithError(err).Warn("enemy prefab reload failed")
			return
		}
		g.enemySpec = spec
		log.Info("enemy prefab reloaded")
	case "level":
		project, warnings, err := levels.LoadProject(g.projectName)
		for _, w := range warnings {
			log.Warn(w.String())
		}
		if err != nil {
			log.WithError(err).Warn("level project reload failed, keeping the loaded one")
			return
		}
		g.project = project
		log.WithFields(logrus.Fields{"levels": len(project.Levels)}).Info("level project reloaded, applies on the next level change")
	}
}
