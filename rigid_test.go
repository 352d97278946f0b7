package rigid

import "testing"

func TestParseBodyKind(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    BodyKind
		wantErr bool
	}{
		{"empty_defaults_dynamic", "", Dynamic, false},
		{"dynamic", "dynamic", Dynamic, false},
		{"kinematic", "kinematic", Kinematic, false},
		{"static", "static", Static, false},
		{"unknown", "fixed", Dynamic, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseBodyKind(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestBodyKindPredicates(t *testing.T) {
	if !Dynamic.IsDynamic() || Dynamic.IsKinematic() || Dynamic.IsStatic() {
		t.Fatalf("dynamic predicates wrong")
	}
	if !Kinematic.IsKinematic() || Kinematic.IsDynamic() {
		t.Fatalf("kinematic predicates wrong")
	}
	if !Static.IsStatic() || Static.IsDynamic() {
		t.Fatalf("static predicates wrong")
	}
	if Static.String() != "static" {
		t.Fatalf("expected static, got %s", Static.String())
	}
}

func TestLockedAxesPredicates(t *testing.T) {
	cases := []struct {
		name             string
		mask             LockedAxes
		translationLocks [3]bool
		rotationLocks    [3]bool
	}{
		{"none", 0, [3]bool{}, [3]bool{}},
		{"translation_x", LockTranslationX, [3]bool{true, false, false}, [3]bool{}},
		{"rotation_z", LockRotationZ, [3]bool{}, [3]bool{false, false, true}},
		{"planar_shorthands", LockTranslation2D | LockRotation2D,
			[3]bool{true, true, false}, [3]bool{false, false, true}},
		{"all", LockAll, [3]bool{true, true, true}, [3]bool{true, true, true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for axis := 0; axis < 3; axis++ {
				if got := c.mask.TranslationLocked(axis); got != c.translationLocks[axis] {
					t.Fatalf("translation axis %d: expected %v, got %v", axis, c.translationLocks[axis], got)
				}
				if got := c.mask.RotationLocked(axis); got != c.rotationLocks[axis] {
					t.Fatalf("rotation axis %d: expected %v, got %v", axis, c.rotationLocks[axis], got)
				}
			}
		})
	}

	if LockAll.TranslationLocked(3) || LockAll.RotationLocked(-1) {
		t.Fatalf("out-of-range axes must never be locked")
	}
}

func TestParseLockedAxes(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    LockedAxes
		wantErr bool
	}{
		{"nil", nil, 0, false},
		{"single", []string{"translation_y"}, LockTranslationY, false},
		{"combined", []string{"translation_x", "rotation_z"}, LockTranslationX | LockRotationZ, false},
		{"planar_words", []string{"translation", "rotation"}, LockTranslation2D | LockRotation2D, false},
		{"unknown", []string{"spin"}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseLockedAxes(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %08b, got %08b", c.want, got)
			}
		})
	}
}
