package scene

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// dispatchScript routes one Run to the script's phase function. Every scene
// script must define setup(api, state) and tick(api, state, step).
const dispatchScript = `
if __phase == "setup" {
	setup(__api, __state)
} else if __phase == "tick" {
	tick(__api, __state, __step)
}
`

// Script is a compiled scene script. The source compiles once with the phase
// dispatcher appended; each phase run rebinds the ambient globals and reruns
// the program. State written to the state map survives across runs.
type Script struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// CompileScript loads a script by name and compiles it.
func CompileScript(name string) (*Script, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load script %s: %w", name, err)
	}
	return NewScript(name, src)
}

// NewScript compiles script source. The tengo stdlib is importable from
// scripts.
func NewScript(name string, src []byte) (*Script, error) {
	source := append(append([]byte{}, src...), []byte("\n"+dispatchScript)...)
	script := tengo.NewScript(source)
	_ = script.Add("__phase", "")
	_ = script.Add("__api", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__step", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile script %s: %w", name, err)
	}

	return &Script{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Name returns the name the script was loaded under.
func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// RunSetup runs the setup phase against the given api.
func (s *Script) RunSetup(api tengo.Object) error {
	return s.runPhase("setup", api, 0)
}

// RunTick runs one tick phase. step counts fixed updates since the scene
// started.
func (s *Script) RunTick(api tengo.Object, step int) error {
	return s.runPhase("tick", api, step)
}

func (s *Script) runPhase(phase string, api tengo.Object, step int) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("scene: script is not compiled")
	}
	if api == nil {
		api = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__api", api); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Set("__step", step); err != nil {
		return err
	}
	return s.compiled.Run()
}
