// Command levelcheck validates a level project and reports problems the game
// would hit at runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/contour/levels"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	strict := flag.Bool("strict", false, "treat warnings as errors")
	format := flag.String("format", "text", "log format: text or json")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: levelcheck [flags] [project.json]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logger.Init("info", *format)

	name := levels.DefaultProject
	var (
		data []byte
		err  error
	)
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		data, err = os.ReadFile(name)
	} else {
		data, err = levels.Load(name)
	}
	if err != nil {
		logger.Log.WithError(err).WithField("project", name).Error("read project")
		os.Exit(2)
	}

	os.Exit(run(name, data, *strict))
}

// run checks one project and returns the process exit code.
func run(name string, data []byte, strict bool) int {
	log := logger.Log.WithField("project", name)

	project, warnings, err := levels.Decode(data)
	for _, w := range warnings {
		log.WithFields(logrus.Fields{"level": w.Level, "entity": w.Entity, "field": w.Field}).Warn(w.Message)
	}
	if err != nil {
		log.WithError(err).Error("invalid project")
		return 1
	}

	problems := lint(project)
	for _, p := range problems {
		log.WithField("level", p.level).Warn(p.message)
	}

	if strict && len(warnings)+len(problems) > 0 {
		log.WithField("warnings", len(warnings)+len(problems)).Error("strict mode")
		return 1
	}
	log.WithFields(logrus.Fields{
		"levels":   len(project.Levels),
		"warnings": len(warnings) + len(problems),
	}).Info("project ok")
	return 0
}

type problem struct {
	level   string
	message string
}

// lint finds cross-level problems the decoder cannot see: exits whose target
// has no entry gate back to the source (the player would never be placed),
// and a first level without a player start.
func lint(project *levels.Project) []problem {
	var problems []problem
	if _, ok := playerStart(project.Levels[0]); !ok {
		problems = append(problems, problem{level: project.Levels[0].Identifier, message: "first level has no Player start"})
	}

	for i, lvl := range project.Levels {
		for _, ent := range lvl.Entities {
			if ent.Identifier != levels.EntityGate || ent.Gate != levels.GateExit {
				continue
			}
			if ent.To == i {
				problems = append(problems, problem{level: lvl.Identifier, message: fmt.Sprintf("exit gate at (%.0f, %.0f) leads to its own level", ent.X, ent.Y)})
				continue
			}
			if !hasEntryFrom(project.Levels[ent.To], i) {
				problems = append(problems, problem{
					level:   lvl.Identifier,
					message: fmt.Sprintf("exit to level %d has no entry gate back from level %d", ent.To, i),
				})
			}
		}
	}
	return problems
}

func playerStart(lvl levels.Level) (levels.Entity, bool) {
	for _, ent := range lvl.Entities {
		if ent.Identifier == levels.EntityPlayer {
			return ent, true
		}
	}
	return levels.Entity{}, false
}

func hasEntryFrom(lvl levels.Level, from int) bool {
	for _, ent := range lvl.Entities {
		if ent.Identifier == levels.EntityGate && ent.Gate == levels.GateEntry && ent.To == from {
			return true
		}
	}
	return false
}
