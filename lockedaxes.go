package rigid

import "fmt"

// LockedAxes freezes selected translation and rotation axes of a body during
// simulation. The zero value locks nothing.
type LockedAxes uint8

const (
	LockTranslationX LockedAxes = 1 << iota
	LockTranslationY
	LockTranslationZ
	LockRotationX
	LockRotationY
	LockRotationZ
)

const (
	// LockTranslation2D freezes both planar translation axes.
	LockTranslation2D = LockTranslationX | LockTranslationY
	// LockRotation2D freezes the planar spin; planar bodies rotate about Z.
	LockRotation2D = LockRotationZ
	// LockAll freezes every axis.
	LockAll = LockTranslationX | LockTranslationY | LockTranslationZ |
		LockRotationX | LockRotationY | LockRotationZ
)

// TranslationLocked reports whether translation along axis 0..2 (x, y, z) is
// locked. Out-of-range axes are never locked.
func (l LockedAxes) TranslationLocked(axis int) bool {
	if axis < 0 || axis > 2 {
		return false
	}
	return l&(LockTranslationX<<uint(axis)) != 0
}

// RotationLocked reports whether rotation about axis 0..2 (x, y, z) is
// locked. Out-of-range axes are never locked.
func (l LockedAxes) RotationLocked(axis int) bool {
	if axis < 0 || axis > 2 {
		return false
	}
	return l&(LockRotationX<<uint(axis)) != 0
}

// ParseLockedAxes maps scene-spec axis names onto a mask. "translation" and
// "rotation" are the planar shorthands.
func ParseLockedAxes(names []string) (LockedAxes, error) {
	var mask LockedAxes
	for _, name := range names {
		switch name {
		case "translation_x":
			mask |= LockTranslationX
		case "translation_y":
			mask |= LockTranslationY
		case "translation_z":
			mask |= LockTranslationZ
		case "rotation_x":
			mask |= LockRotationX
		case "rotation_y":
			mask |= LockRotationY
		case "rotation_z":
			mask |= LockRotationZ
		case "translation":
			mask |= LockTranslation2D
		case "rotation":
			mask |= LockRotation2D
		default:
			return 0, fmt.Errorf("rigid: unknown locked axis %q", name)
		}
	}
	return mask, nil
}
