package loader

import "github.com/unixpickle/model3d/model3d"

// Body is a simulation entity reconstructed from one body record. All
// positional quantities are in meters; mass in kilograms.
type Body struct {
	Name     string
	Mass     float64
	Position [3]float64
	// Inertia is the diagonal of the inertia tensor. Defaults to (1,1,1)
	// when the document carries no moments of inertia.
	Inertia [3]float64
	Fixed   bool
	// Collision and Visual are enabled together when the body's geometry
	// file was found and loaded.
	Collision bool
	Visual    bool
	Mesh      *model3d.Mesh
}

// Joint is a simulation constraint between two already-registered bodies,
// initialized at Origin (meters, joint local frame).
type Joint struct {
	Name    string
	Kind    JointKind
	BodyOne *Body
	BodyTwo *Body
	Origin  [3]float64
}

// World is the narrow sink the loader reconstructs entities into, so the
// portable load logic is testable without a physics host present.
type World interface {
	AddBody(b *Body) error
	AddJoint(j *Joint) error
}
