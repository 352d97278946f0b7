package system

import (
	"log"

	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/entity"
	"github.com/milk9111/rigid/scene"
)

// Script drives the scene script: setup once on the first update after the
// scene loads, then one tick per fixed step. Script errors are logged and
// the step goes on.
type Script struct {
	program *scene.Script
	step    int
	started bool
}

func NewScript(program *scene.Script) *Script {
	return &Script{program: program}
}

func (s *Script) Update(w *ecs.World) {
	if s == nil || s.program == nil || w == nil {
		return
	}
	api := entity.ScriptAPI(w)
	if !s.started {
		if err := s.program.RunSetup(api); err != nil {
			log.Printf("system: script %s setup: %v", s.program.Name(), err)
		}
		s.started = true
	}
	if err := s.program.RunTick(api, s.step); err != nil {
		log.Printf("system: script %s tick: %v", s.program.Name(), err)
	}
	s.step++
}
