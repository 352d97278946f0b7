package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
	"github.com/milk9111/rigid/scene"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSpawn2D(t *testing.T) {
	w := ecs.NewWorld()
	dominance := int8(3)
	spec := scene.BodySpec{
		Name:       "crate",
		Kind:       "dynamic",
		Position:   scene.Vec2Spec{X: 1, Y: 2},
		Rotation:   0.5,
		Velocity:   scene.Vec2Spec{X: -1},
		LockedAxes: []string{"rotation"},
		Dominance:  &dominance,
		Colliders: []scene.ColliderSpec{
			{Type: "box", Width: 2, Height: 1, Density: 1.5},
		},
	}

	e, err := Spawn2D(w, spec)
	if err != nil {
		t.Fatalf("Spawn2D returned %v", err)
	}

	body, ok := ecs.Get(w, e, component.Body2D)
	if !ok {
		t.Fatalf("spawned entity has no body")
	}
	if !body.Kind.IsDynamic() {
		t.Fatalf("kind = %v, want dynamic", body.Kind)
	}
	if body.Position != (cp.Vector{X: 1, Y: 2}) || body.PreviousPosition != body.Position {
		t.Fatalf("position = %v, previous = %v", body.Position, body.PreviousPosition)
	}
	if body.Rotation != 0.5 || body.LinearVelocity.X != -1 {
		t.Fatalf("pose/velocity not taken from spec")
	}
	if !body.LockedAxes.RotationLocked(2) {
		t.Fatalf("locked axes not parsed")
	}
	if body.Dominance == nil || *body.Dominance != 3 {
		t.Fatalf("dominance = %v, want 3", body.Dominance)
	}
	if wantMass := 1.5 * 2 * 1; !approxEqual(body.Mass, wantMass) {
		t.Fatalf("mass = %v, want %v", body.Mass, wantMass)
	}

	set, ok := ecs.Get(w, e, component.Colliders2D)
	if !ok || len(*set) != 1 {
		t.Fatalf("collider set not attached")
	}
	name, ok := ecs.Get(w, e, component.Name)
	if !ok || *name != "crate" {
		t.Fatalf("name component missing")
	}
}

func TestSpawn2DDefaultsToDynamic(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn2D(w, scene.BodySpec{})
	if err != nil {
		t.Fatalf("Spawn2D returned %v", err)
	}
	body, _ := ecs.Get(w, e, component.Body2D)
	if !body.Kind.IsDynamic() {
		t.Fatalf("empty kind spawned %v, want dynamic", body.Kind)
	}
	if ecs.Has(w, e, component.Name) {
		t.Fatalf("unnamed spec grew a name component")
	}
}

func TestSpawn2DBadSpec(t *testing.T) {
	tests := []struct {
		name string
		spec scene.BodySpec
	}{
		{name: "unknown_kind", spec: scene.BodySpec{Kind: "bouncy"}},
		{name: "unknown_locked_axis", spec: scene.BodySpec{LockedAxes: []string{"sideways"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := Spawn2D(w, tt.spec); err == nil {
				t.Fatalf("expected an error")
			}
			if len(ecs.Entities(w)) != 0 {
				t.Fatalf("failed spawn leaked an entity")
			}
		})
	}
}

func TestSpawn2DSkipsUnknownColliderType(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn2D(w, scene.BodySpec{
		Colliders: []scene.ColliderSpec{
			{Type: "gear", Radius: 1, Density: 1},
			{Type: "circle", Radius: 1, Density: 1},
		},
	})
	if err != nil {
		t.Fatalf("Spawn2D returned %v", err)
	}
	set, _ := ecs.Get(w, e, component.Colliders2D)
	if len(*set) != 1 {
		t.Fatalf("attached %d colliders, want 1", len(*set))
	}
}

func TestSpawn2DEmitsEvents(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn2D(w, scene.BodySpec{
		Colliders: []scene.ColliderSpec{{Type: "circle", Radius: 1, Density: 1}},
	})
	if err != nil {
		t.Fatalf("Spawn2D returned %v", err)
	}

	drained := w.Events().Drain()
	if len(drained) != 2 {
		t.Fatalf("queued %d events, want 2", len(drained))
	}
	first, _ := drained[0].Data.(ecs.BodyEvent)
	last, _ := drained[1].Data.(ecs.BodyEvent)
	if first.Kind != ecs.BodyEventColliderAttached || last.Kind != ecs.BodyEventSpawned {
		t.Fatalf("event order = [%v %v], want collider_attached then spawned", first.Kind, last.Kind)
	}
	if first.Entity != e || last.Entity != e {
		t.Fatalf("events name the wrong entity")
	}
}

func TestSpawn3D(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn3D(w, rigid.Static, mgl64.Vec3{1, 2, 3})
	if err != nil {
		t.Fatalf("Spawn3D returned %v", err)
	}

	body, ok := ecs.Get(w, e, component.Body3D)
	if !ok {
		t.Fatalf("spawned entity has no body")
	}
	if !body.Kind.IsStatic() {
		t.Fatalf("kind = %v, want static", body.Kind)
	}
	if body.Position != (mgl64.Vec3{1, 2, 3}) || body.PreviousPosition != body.Position {
		t.Fatalf("position = %v", body.Position)
	}
	if body.Rotation != mgl64.QuatIdent() {
		t.Fatalf("rotation = %v, want identity", body.Rotation)
	}
	set, ok := ecs.Get(w, e, component.Colliders3D)
	if !ok || len(*set) != 0 {
		t.Fatalf("expected an empty collider set")
	}
}

func TestBuildSceneSkipsBadBodies(t *testing.T) {
	w := ecs.NewWorld()
	spec := &scene.SceneSpec{
		Name: "mixed",
		Bodies: []scene.BodySpec{
			{Name: "good", Kind: "static"},
			{Name: "bad", Kind: "bouncy"},
			{Name: "also_good", Kind: "kinematic"},
		},
	}

	spawned := BuildScene(w, spec)

	if len(spawned) != 2 {
		t.Fatalf("spawned %d bodies, want 2", len(spawned))
	}
	if len(ecs.Entities(w)) != 2 {
		t.Fatalf("world holds %d entities, want 2", len(ecs.Entities(w)))
	}
}

func TestDespawn(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := Spawn2D(w, scene.BodySpec{})
	w.Events().Drain()

	if !Despawn(w, e) {
		t.Fatalf("Despawn of a live body returned false")
	}
	if ecs.IsAlive(w, e) {
		t.Fatalf("entity alive after Despawn")
	}

	drained := w.Events().Drain()
	if len(drained) != 1 {
		t.Fatalf("queued %d events, want 1", len(drained))
	}
	if ev, _ := drained[0].Data.(ecs.BodyEvent); ev.Kind != ecs.BodyEventDespawned {
		t.Fatalf("event kind = %v, want despawned", ev.Kind)
	}

	if Despawn(w, e) {
		t.Fatalf("Despawn of a stale handle returned true")
	}
}

func TestIsRigidBody(t *testing.T) {
	w := ecs.NewWorld()

	flat, _ := Spawn2D(w, scene.BodySpec{})
	spatial, _ := Spawn3D(w, rigid.Dynamic, mgl64.Vec3{})
	bare := ecs.CreateEntity(w)

	if !IsRigidBody(w, flat) || !IsRigidBody(w, spatial) {
		t.Fatalf("spawned bodies not recognized")
	}
	if IsRigidBody(w, bare) {
		t.Fatalf("bare entity recognized as a body")
	}
}
