package entity

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/rigid"
	"github.com/milk9111/rigid/d2"
	"github.com/milk9111/rigid/d3"
	"github.com/milk9111/rigid/ecs"
	"github.com/milk9111/rigid/ecs/component"
	"github.com/milk9111/rigid/scene"
)

func TestAttachDetachCollider2D(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn2D(w, scene.BodySpec{
		Colliders: []scene.ColliderSpec{
			{Type: "circle", Radius: 1, Density: 1, Offset: scene.Vec2Spec{X: -2}},
		},
	})
	if err != nil {
		t.Fatalf("Spawn2D returned %v", err)
	}
	body, _ := ecs.Get(w, e, component.Body2D)
	massBefore := body.Mass
	comBefore := body.CenterOfMass

	box := d2.NewCollider(d2.Box{Width: 2, Height: 2, Offset: cp.Vector{X: 3}}, 2)
	if err := AttachCollider2D(w, e, box); err != nil {
		t.Fatalf("AttachCollider2D returned %v", err)
	}

	set, _ := ecs.Get(w, e, component.Colliders2D)
	if len(*set) != 2 {
		t.Fatalf("set holds %d colliders, want 2", len(*set))
	}
	if !approxEqual(body.Mass, massBefore+box.MassProperties.Mass) {
		t.Fatalf("mass = %v, want %v", body.Mass, massBefore+box.MassProperties.Mass)
	}
	if body.CenterOfMass.X <= comBefore.X {
		t.Fatalf("center of mass did not move toward the new collider")
	}

	if err := DetachCollider2D(w, e, 1); err != nil {
		t.Fatalf("DetachCollider2D returned %v", err)
	}
	if len(*set) != 1 {
		t.Fatalf("set holds %d colliders after detach, want 1", len(*set))
	}
	if !approxEqual(body.Mass, massBefore) {
		t.Fatalf("mass = %v after round trip, want %v", body.Mass, massBefore)
	}
	if !approxEqual(body.CenterOfMass.X, comBefore.X) || !approxEqual(body.CenterOfMass.Y, comBefore.Y) {
		t.Fatalf("center of mass = %v after round trip, want %v", body.CenterOfMass, comBefore)
	}
}

func TestAttachCollider2DRequiresBody(t *testing.T) {
	w := ecs.NewWorld()
	bare := ecs.CreateEntity(w)

	err := AttachCollider2D(w, bare, d2.NewCollider(d2.Circle{Radius: 1}, 1))
	if !errors.Is(err, ErrNotRigidBody) {
		t.Fatalf("error = %v, want %v", err, ErrNotRigidBody)
	}
}

func TestDetachCollider2DOutOfRange(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := Spawn2D(w, scene.BodySpec{
		Colliders: []scene.ColliderSpec{{Type: "circle", Radius: 1, Density: 1}},
	})

	if err := DetachCollider2D(w, e, 5); err == nil {
		t.Fatalf("expected an error for an out of range index")
	}
	set, _ := ecs.Get(w, e, component.Colliders2D)
	if len(*set) != 1 {
		t.Fatalf("failed detach changed the set")
	}
}

func TestAttachDetachCollider3D(t *testing.T) {
	w := ecs.NewWorld()
	e, err := Spawn3D(w, rigid.Dynamic, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("Spawn3D returned %v", err)
	}
	body, _ := ecs.Get(w, e, component.Body3D)

	sphere := d3.NewCollider(d3.Sphere{Radius: 1, Offset: mgl64.Vec3{2, 0, 0}}, 1)
	if err := AttachCollider3D(w, e, sphere); err != nil {
		t.Fatalf("AttachCollider3D returned %v", err)
	}
	if !approxEqual(body.Mass, sphere.MassProperties.Mass) {
		t.Fatalf("mass = %v, want %v", body.Mass, sphere.MassProperties.Mass)
	}
	if !approxEqual(body.CenterOfMass[0], 2) {
		t.Fatalf("center of mass = %v, want x=2", body.CenterOfMass)
	}

	if err := DetachCollider3D(w, e, 0); err != nil {
		t.Fatalf("DetachCollider3D returned %v", err)
	}
	if body.Mass != 0 || body.InverseMass != 0 {
		t.Fatalf("mass = %v inverse = %v after detach, want both 0", body.Mass, body.InverseMass)
	}
	if !approxEqual(body.CenterOfMass[0], 2) {
		t.Fatalf("center of mass moved on a detach to zero mass: %v", body.CenterOfMass)
	}
}

func TestDetachCollider3DRequiresBody(t *testing.T) {
	w := ecs.NewWorld()
	bare := ecs.CreateEntity(w)

	if err := DetachCollider3D(w, bare, 0); !errors.Is(err, ErrNotRigidBody) {
		t.Fatalf("error = %v, want %v", err, ErrNotRigidBody)
	}
}
