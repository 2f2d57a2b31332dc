package exporter

import (
	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/unixpickle/model3d/model3d"
)

// StaticModel is an in-memory ModelSource. It stands in for a live CAD host
// in tests and in tools that already hold the model data.
type StaticModel struct {
	Name      string
	BodyList  []*StaticBody
	JointList []*StaticJoint
}

// ModelName implements ModelSource.
func (m *StaticModel) ModelName() string { return m.Name }

// Bodies implements ModelSource.
func (m *StaticModel) Bodies() []BodySource {
	out := make([]BodySource, len(m.BodyList))
	for i, b := range m.BodyList {
		out[i] = b
	}
	return out
}

// Joints implements ModelSource.
func (m *StaticModel) Joints() []JointSource {
	out := make([]JointSource, len(m.JointList))
	for i, j := range m.JointList {
		out[i] = j
	}
	return out
}

// StaticBody is an in-memory BodySource.
type StaticBody struct {
	BodyName  string
	IsVisible bool
	Props     *interchange.MassProperties
	Mat       *interchange.Material
	Offset    *interchange.Vec3 // nil for root-level bodies
	Triangles []*model3d.Triangle
	MeshErr   error
}

// Name implements BodySource.
func (b *StaticBody) Name() string { return b.BodyName }

// Visible implements BodySource.
func (b *StaticBody) Visible() bool { return b.IsVisible }

// MassProperties implements BodySource.
func (b *StaticBody) MassProperties() *interchange.MassProperties { return b.Props }

// Material implements BodySource.
func (b *StaticBody) Material() *interchange.Material { return b.Mat }

// Translation implements BodySource.
func (b *StaticBody) Translation() *interchange.Vec3 { return b.Offset }

// Mesh implements BodySource.
func (b *StaticBody) Mesh() (*model3d.Mesh, error) {
	if b.MeshErr != nil {
		return nil, b.MeshErr
	}
	return model3d.NewMeshTriangles(b.Triangles), nil
}

// StaticJoint is an in-memory JointSource.
type StaticJoint struct {
	JointName    string
	JointType    string
	IsSuppressed bool
	One, Two     string
	JointOrigin  *interchange.Vec3
}

// Name implements JointSource.
func (j *StaticJoint) Name() string { return j.JointName }

// Type implements JointSource.
func (j *StaticJoint) Type() string { return j.JointType }

// Suppressed implements JointSource.
func (j *StaticJoint) Suppressed() bool { return j.IsSuppressed }

// BodyOne implements JointSource.
func (j *StaticJoint) BodyOne() string { return j.One }

// BodyTwo implements JointSource.
func (j *StaticJoint) BodyTwo() string { return j.Two }

// Origin implements JointSource.
func (j *StaticJoint) Origin() *interchange.Vec3 { return j.JointOrigin }
