// Package exporter projects a CAD host's live object graph into an
// interchange bundle: one JSON document plus one STL mesh per body. The CAD
// host is reached only through the narrow source interfaces here, so the
// projection logic runs and tests without the host present.
package exporter

import (
	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/unixpickle/model3d/model3d"
)

// ModelSource is the exporter's view of an open CAD design.
type ModelSource interface {
	// ModelName returns the root component name.
	ModelName() string
	// Bodies returns every solid body reachable from the root, including
	// bodies inside nested occurrences, in tree order.
	Bodies() []BodySource
	// Joints returns the full joint list, suppressed joints included.
	Joints() []JointSource
}

// BodySource is one solid body in the design.
type BodySource interface {
	Name() string
	Visible() bool
	// MassProperties returns the body's physical properties, or nil when the
	// host cannot compute them. The export proceeds without them.
	MassProperties() *interchange.MassProperties
	// Material returns the assigned material, or nil.
	Material() *interchange.Material
	// Translation returns the occurrence translation for bodies reached via
	// a non-root occurrence, and nil for root-level bodies. Root-level
	// bodies get no transform field; that asymmetry is part of the contract.
	Translation() *interchange.Vec3
	// Mesh tessellates the body. A per-body failure here is recorded in the
	// export report and does not abort the batch.
	Mesh() (*model3d.Mesh, error)
}

// JointSource is one joint in the design.
type JointSource interface {
	Name() string
	// Type is the host's free-text joint type string, e.g. "RevoluteJointType".
	Type() string
	Suppressed() bool
	// BodyOne and BodyTwo name the connected occurrences; either may be
	// empty when the host reports no connection.
	BodyOne() string
	BodyTwo() string
	// Origin returns the joint origin in the joint's local frame, or nil.
	Origin() *interchange.Vec3
}
