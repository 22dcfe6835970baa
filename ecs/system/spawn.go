package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// EnemySpawn is everything a new enemy needs from the spawner.
type EnemySpawn struct {
	X             float64
	Y             float64
	Speed         float64
	DangerSeconds float64
}

// EnemyFactory creates an enemy entity in w.
type EnemyFactory func(w *ecs.World, spawn EnemySpawn) (ecs.Entity, error)

// SpawnSystem spawns enemies around the player at night. The period shrinks
// as the score rises.
type SpawnSystem struct {
	factory EnemyFactory
	rng     *rand.Rand
}

func NewSpawnSystem(factory EnemyFactory, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &SpawnSystem{factory: factory, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.factory == nil {
		return
	}
	if globalLightOn(w) || !playing(w) {
		return
	}

	_, spawner, ok := ecs.Single(w, component.EnemySpawnerComponent.Kind())
	if !ok {
		skip("spawn", "spawner")
		return
	}
	_, pt, ok := playerTransform(w)
	if !ok {
		skip("spawn", "player")
		return
	}

	period := spawner.Period(scoreValue(w))
	spawner.Timer += common.DeltaSeconds
	if spawner.Timer < period {
		return
	}
	spawner.Timer -= period

	spawn := s.next(*spawner, pt.X, pt.Y)
	e, err := s.factory(w, spawn)
	if err != nil {
		logger.Log.WithError(err).Error("spawn enemy")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"entity": e.String(),
		"x":      spawn.X,
		"y":      spawn.Y,
		"speed":  spawn.Speed,
		"period": period,
	}).Debug("enemy spawned")
}

func (s *SpawnSystem) next(spawner component.EnemySpawner, px, py float64) EnemySpawn {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := spawner.MinDistance + s.rng.Float64()*(spawner.MaxDistance-spawner.MinDistance)
	speed := spawner.SpeedMin + s.rng.Float64()*(spawner.SpeedMax-spawner.SpeedMin)
	return EnemySpawn{
		X:             px + math.Cos(angle)*dist,
		Y:             py + math.Sin(angle)*dist,
		Speed:         speed,
		DangerSeconds: spawner.DangerSeconds,
	}
}

// DangerousSystem arms freshly spawned enemies once their timer runs out.
type DangerousSystem struct{}

func NewDangerousSystem() *DangerousSystem {
	return &DangerousSystem{}
}

func (d *DangerousSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.DangerousComponent.Kind(), func(_ ecs.Entity, danger *component.Dangerous) {
		if danger.Active {
			return
		}
		danger.Timer -= common.DeltaSeconds
		if danger.Timer <= 0 {
			danger.Timer = 0
			danger.Active = true
		}
	})
}
