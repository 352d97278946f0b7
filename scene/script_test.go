package scene

import (
	"strings"
	"testing"

	"github.com/d5/tengo/v2"
)

func markerAPI(calls *[]string) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"mark": &tengo.UserFunction{Name: "mark", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) > 0 {
				if s, ok := tengo.ToString(args[0]); ok {
					*calls = append(*calls, s)
				}
			}
			return tengo.UndefinedValue, nil
		}},
	}}
}

func TestScriptPhases(t *testing.T) {
	src := []byte(`
setup := func(api, state) {
	state.ticks = 0
	api.mark("setup")
}

tick := func(api, state, step) {
	state.ticks += 1
	api.mark("tick")
}
`)
	script, err := NewScript("phases.tengo", src)
	if err != nil {
		t.Fatalf("NewScript returned %v", err)
	}

	var calls []string
	api := markerAPI(&calls)

	if err := script.RunSetup(api); err != nil {
		t.Fatalf("RunSetup returned %v", err)
	}
	if err := script.RunTick(api, 0); err != nil {
		t.Fatalf("RunTick returned %v", err)
	}
	if err := script.RunTick(api, 1); err != nil {
		t.Fatalf("RunTick returned %v", err)
	}

	want := []string{"setup", "tick", "tick"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestScriptStatePersistsAcrossRuns(t *testing.T) {
	src := []byte(`
setup := func(api, state) {
	state.ticks = 0
}

tick := func(api, state, step) {
	state.ticks += 1
}
`)
	script, err := NewScript("state.tengo", src)
	if err != nil {
		t.Fatalf("NewScript returned %v", err)
	}

	if err := script.RunSetup(nil); err != nil {
		t.Fatalf("RunSetup returned %v", err)
	}
	for step := 0; step < 3; step++ {
		if err := script.RunTick(nil, step); err != nil {
			t.Fatalf("RunTick(%d) returned %v", step, err)
		}
	}

	ticks, ok := script.state.Value["ticks"].(*tengo.Int)
	if !ok || ticks.Value != 3 {
		t.Fatalf("state.ticks = %v, want 3", script.state.Value["ticks"])
	}
}

func TestScriptStepVisibleToTick(t *testing.T) {
	src := []byte(`
setup := func(api, state) {
}

tick := func(api, state, step) {
	state.last = step
}
`)
	script, err := NewScript("step.tengo", src)
	if err != nil {
		t.Fatalf("NewScript returned %v", err)
	}

	if err := script.RunTick(nil, 41); err != nil {
		t.Fatalf("RunTick returned %v", err)
	}
	last, ok := script.state.Value["last"].(*tengo.Int)
	if !ok || last.Value != 41 {
		t.Fatalf("state.last = %v, want 41", script.state.Value["last"])
	}
}

func TestNewScriptCompileError(t *testing.T) {
	_, err := NewScript("broken.tengo", []byte(`setup := func(`))
	if err == nil {
		t.Fatalf("expected a compile error")
	}
	if !strings.Contains(err.Error(), "broken.tengo") {
		t.Fatalf("error does not name the script: %v", err)
	}
}

func TestNewScriptRequiresPhaseFunctions(t *testing.T) {
	src := []byte(`
setup := func(api, state) {
}
`)
	if _, err := NewScript("half.tengo", src); err == nil {
		t.Fatalf("expected a compile error for a script without tick")
	}
}

func TestCompileScriptEmbedded(t *testing.T) {
	script, err := CompileScript("demo.tengo")
	if err != nil {
		t.Fatalf("CompileScript returned %v", err)
	}
	if script.Name() != "demo.tengo" {
		t.Fatalf("name = %q", script.Name())
	}
}

func TestCompileScriptMissing(t *testing.T) {
	if _, err := CompileScript("no_such_script.tengo"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}
