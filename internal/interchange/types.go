// Package interchange defines the JSON document shape bridging CAD export and
// simulation import, plus reading, writing, validation, and summarization.
package interchange

// Vec3 is a 3-component vector. Positional quantities in a document are
// expressed in millimeters (CAD convention).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Inertia holds the six distinct components of a symmetric inertia tensor.
type Inertia struct {
	XX float64 `json:"xx"`
	YY float64 `json:"yy"`
	ZZ float64 `json:"zz"`
	XY float64 `json:"xy"`
	YZ float64 `json:"yz"`
	XZ float64 `json:"xz"`
}

// MassProperties holds the physical properties of a body. Every field is
// optional in the document; the loader substitutes defaults for nil fields.
type MassProperties struct {
	Mass             *float64 `json:"mass,omitempty"`
	Volume           *float64 `json:"volume,omitempty"`
	Area             *float64 `json:"area,omitempty"`
	Density          *float64 `json:"density,omitempty"`
	CenterOfMass     *Vec3    `json:"center_of_mass,omitempty"`
	MomentsOfInertia *Inertia `json:"moments_of_inertia,omitempty"`
}

// Material identifies the CAD material assigned to a body.
type Material struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Transform carries the occurrence transform of a body. Only bodies reached
// through a non-root occurrence carry one; root-level bodies have no
// transform field at all. That asymmetry is part of the contract.
type Transform struct {
	Translation *Vec3 `json:"translation,omitempty"`
}

// Body is one serialized rigid-body description.
type Body struct {
	Name           string         `json:"name"`
	IsVisible      bool           `json:"is_visible"`
	MassProperties MassProperties `json:"mass_properties"`
	Material       *Material      `json:"material"`
	GeometryFile   string         `json:"geometry_file"`
	Transform      *Transform     `json:"transform,omitempty"`
	IsFixed        bool           `json:"is_fixed,omitempty"`
}

// Joint is one serialized constraint between two named bodies. BodyOne and
// BodyTwo are foreign keys into body names; the loader drops joints whose
// endpoints do not resolve.
type Joint struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	IsSuppressed bool   `json:"is_suppressed"`
	BodyOne      string `json:"body_one,omitempty"`
	BodyTwo      string `json:"body_two,omitempty"`
	Origin       *Vec3  `json:"origin,omitempty"`
}

// Metadata records export provenance. Units is informational only; the
// loader hardcodes the millimeter assumption.
type Metadata struct {
	ExportedFrom string `json:"exported_from"`
	ExportScript string `json:"export_script"`
	ExportID     string `json:"export_id,omitempty"`
	Units        string `json:"units"`
}

// Document is the interchange document. It is produced once per export,
// immutable thereafter, and consumed by independent loader invocations.
type Document struct {
	ModelName string     `json:"model_name"`
	Bodies    []Body     `json:"bodies"`
	Joints    []Joint    `json:"joints"`
	Materials []Material `json:"materials"`
	Metadata  Metadata   `json:"metadata"`
}

// BodyByName returns the body with the given name, or nil. Body names are
// unique within a document.
func (d *Document) BodyByName(name string) *Body {
	for i := range d.Bodies {
		if d.Bodies[i].Name == name {
			return &d.Bodies[i]
		}
	}
	return nil
}
