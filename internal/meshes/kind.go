package meshes

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a mesh kind name is not recognized.
var ErrUnknownKind = errors.New("unknown mesh kind")

// Kind is one of the fixed procedural shapes the scene is built from.
type Kind int

const (
	Plane Kind = iota
	Sphere
	Cylinder
	Box
	Cone
	Prism
	Pyramid4
	TaperedCylinder
)

var kindNames = [...]string{
	Plane:           "plane",
	Sphere:          "sphere",
	Cylinder:        "cylinder",
	Box:             "box",
	Cone:            "cone",
	Prism:           "prism",
	Pyramid4:        "pyramid4",
	TaperedCylinder: "tapered_cylinder",
}

// Kinds returns every mesh kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name (e.g. "tapered_cylinder").
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
