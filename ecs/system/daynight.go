package system

import (
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

// DayNightSystem flips GlobalLight when the current day or night phase runs
// out.
type DayNightSystem struct{}

func NewDayNightSystem() *DayNightSystem {
	return &DayNightSystem{}
}

func (d *DayNightSystem) Update(w *ecs.World) {
	if w == nil || !playing(w) {
		return
	}

	ecs.ForEach2(w, component.DayNightComponent.Kind(), component.GlobalLightComponent.Kind(), func(_ ecs.Entity, cycle *component.DayNight, light *component.GlobalLight) {
		phase := cycle.NightSeconds
		if light.On {
			phase = cycle.DaySeconds
		}
		if phase <= 0 {
			return
		}

		cycle.Elapsed += common.DeltaSeconds
		if cycle.Elapsed < phase {
			return
		}
		cycle.Elapsed = 0
		light.On = !light.On
		ecs.Emit(w, component.EventGlobalLightChanged{On: light.On})
		logger.Log.WithFields(logrus.Fields{"daylight": light.On}).Info("day/night phase changed")
	})
}
