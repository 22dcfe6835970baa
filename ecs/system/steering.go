package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/milk9111/contour/prefabs"
	"github.com/sirupsen/logrus"
)

// SteeringSystem points every enemy at the player. How hard they chase under
// the current lighting comes from a tengo script; a built-in table is used
// when the script is missing or fails.
type SteeringSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	failed     bool
}

func NewSteeringSystem(scriptPath string) *SteeringSystem {
	s := &SteeringSystem{scriptPath: scriptPath}
	if err := s.Reload(); err != nil {
		logger.Log.WithError(err).WithField("script", scriptPath).Warn("steering script unavailable, using defaults")
	}
	return s
}

// Reload recompiles the steering script. On error the previous script is
// dropped and the built-in factors apply.
func (s *SteeringSystem) Reload() error {
	s.compiled = nil
	s.failed = false
	if s.scriptPath == "" {
		return nil
	}
	src, err := prefabs.LoadScript(s.scriptPath)
	if err != nil {
		return fmt.Errorf("steering: load %s: %w", s.scriptPath, err)
	}
	compiled, err := compileSteering(src)
	if err != nil {
		return fmt.Errorf("steering: compile %s: %w", s.scriptPath, err)
	}
	s.compiled = compiled
	return nil
}

func compileSteering(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("mode", ""); err != nil {
		return nil, err
	}
	if err := script.Add("score", 0.0); err != nil {
		return nil, err
	}
	return script.Compile()
}

// Factor returns the chase factor for mode at score.
func (s *SteeringSystem) Factor(mode component.LightingMode, score float64) float64 {
	if s.compiled == nil || s.failed {
		return defaultSteeringFactor(mode)
	}
	factor, err := s.runScript(mode, score)
	if err != nil {
		s.failed = true
		logger.Log.WithError(err).WithField("script", s.scriptPath).Warn("steering script failed, using defaults")
		return defaultSteeringFactor(mode)
	}
	return factor
}

func (s *SteeringSystem) runScript(mode component.LightingMode, score float64) (float64, error) {
	if err := s.compiled.Set("mode", mode.String()); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("score", score); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	v := s.compiled.Get("factor")
	if v == nil || v.IsUndefined() {
		return 0, fmt.Errorf("steering: script does not set factor")
	}
	return common.Clamp(v.Float(), 0, 1), nil
}

func defaultSteeringFactor(mode component.LightingMode) float64 {
	switch mode {
	case component.LightingDark:
		return 1
	case component.LightingLantern:
		return 0.5
	default:
		return 0
	}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	_, lighting, ok := ecs.Single(w, component.LightingComponent.Kind())
	if !ok {
		skip("steering", "lighting")
		return
	}
	_, pt, ok := playerTransform(w)
	if !ok || !playing(w) {
		ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.MoveDirectionComponent.Kind(), func(_ ecs.Entity, _ *component.EnemyTag, dir *component.MoveDirection) {
			dir.X, dir.Y = 0, 0
		})
		return
	}

	factor := s.Factor(lighting.Mode, scoreValue(w))
	ecs.ForEach3(w, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), component.MoveDirectionComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, t *component.Transform, dir *component.MoveDirection) {
		dx, dy := common.Normalize(pt.X-t.X, pt.Y-t.Y)
		dir.X, dir.Y = dx*factor, dy*factor
	})
	logger.Log.WithFields(logrus.Fields{"mode": lighting.Mode.String(), "factor": factor}).Trace("enemies steered")
}
