// Package loader reconstructs simulation entities from an interchange
// bundle: two sequential passes over one document, bodies first, then joints
// resolved by name against the bodies the first pass registered.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// Document positions are millimeters; the world is meter-based.
const millimetersPerMeter = 1000.0

// DefaultGeometryDir is the geometry subdirectory convention, relative to
// the document file.
const DefaultGeometryDir = "geometries"

// SkipReason says why a joint record produced no simulation joint.
type SkipReason string

const (
	// SkipMissingEndpoint means body_one or body_two was absent from the record.
	SkipMissingEndpoint SkipReason = "missing_endpoint"
	// SkipUnresolvedBody means an endpoint named a body that was never registered.
	SkipUnresolvedBody SkipReason = "unresolved_body"
	// SkipUnknownType means the joint type matched no known classifier.
	SkipUnknownType SkipReason = "unknown_type"
)

// SkippedJoint is one joint record that was dropped, with the reason.
type SkippedJoint struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// MissingMesh is one body whose geometry file could not be loaded. The body
// itself still loads, with collision and visual shapes disabled.
type MissingMesh struct {
	Body string `json:"body"`
	Path string `json:"path"`
}

// Report collects per-item outcomes of one load so callers can inspect what
// was skipped instead of cross-checking counts by hand.
type Report struct {
	ModelName     string         `json:"model_name"`
	BodiesLoaded  int            `json:"bodies_loaded"`
	JointsLoaded  int            `json:"joints_loaded"`
	SkippedJoints []SkippedJoint `json:"skipped_joints,omitempty"`
	MissingMeshes []MissingMesh  `json:"missing_meshes,omitempty"`
}

// Loader loads interchange bundles into a World.
type Loader struct {
	geometryDir string
	logger      *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithGeometryDir overrides the geometry directory. A relative dir is
// resolved against the document's directory.
func WithGeometryDir(dir string) Option {
	return func(l *Loader) { l.geometryDir = dir }
}

// WithLogger sets a logger for debug output (bodies registered, joints
// skipped, etc.).
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{geometryDir: DefaultGeometryDir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the document at path and reconstructs it into world. A missing
// or malformed document is fatal; a missing mesh or unresolvable joint is
// recorded in the report and the load continues.
func (l *Loader) Load(path string, world World) (*Report, error) {
	doc, err := interchange.ReadFile(path)
	if err != nil {
		return nil, err
	}
	geomDir := l.geometryDir
	if !filepath.IsAbs(geomDir) {
		geomDir = filepath.Join(filepath.Dir(path), geomDir)
	}
	return l.LoadDocument(doc, geomDir, world)
}

// LoadDocument reconstructs an already-parsed document into world, loading
// geometry from geomDir. Both passes run sequentially within this call; the
// name table never escapes it.
func (l *Loader) LoadDocument(doc *interchange.Document, geomDir string, world World) (*Report, error) {
	report := &Report{ModelName: doc.ModelName}
	table := make(map[string]*Body, len(doc.Bodies))

	for i := range doc.Bodies {
		record := &doc.Bodies[i]
		body := l.buildBody(record, geomDir, report)
		if err := world.AddBody(body); err != nil {
			return nil, fmt.Errorf("add body %s: %w", body.Name, err)
		}
		table[body.Name] = body
		report.BodiesLoaded++
	}

	for i := range doc.Joints {
		record := &doc.Joints[i]
		joint, skipped := resolveJoint(record, table)
		if skipped != nil {
			report.SkippedJoints = append(report.SkippedJoints, *skipped)
			if l.logger != nil {
				l.logger.Debug("joint skipped",
					zap.String("joint", record.Name),
					zap.String("reason", string(skipped.Reason)))
			}
			continue
		}
		if err := world.AddJoint(joint); err != nil {
			return nil, fmt.Errorf("add joint %s: %w", joint.Name, err)
		}
		report.JointsLoaded++
	}
	return report, nil
}

// buildBody turns one body record into a simulation entity, substituting
// defaults for absent optional fields.
func (l *Loader) buildBody(record *interchange.Body, geomDir string, report *Report) *Body {
	body := &Body{
		Name:    record.Name,
		Mass:    1.0,
		Inertia: [3]float64{1, 1, 1},
		Fixed:   record.IsFixed,
	}
	props := &record.MassProperties
	if props.Mass != nil {
		body.Mass = *props.Mass
	}
	if props.MomentsOfInertia != nil {
		moi := props.MomentsOfInertia
		body.Inertia = [3]float64{moi.XX, moi.YY, moi.ZZ}
	}

	// Initial position: the occurrence translation takes precedence over the
	// center of mass when both are present. The sources are never combined.
	switch {
	case record.Transform != nil && record.Transform.Translation != nil:
		body.Position = toMeters(record.Transform.Translation)
	case props.CenterOfMass != nil:
		body.Position = toMeters(props.CenterOfMass)
	}

	if record.GeometryFile != "" {
		path := filepath.Join(geomDir, record.GeometryFile)
		mesh, err := loadMesh(path)
		if err != nil {
			report.MissingMeshes = append(report.MissingMeshes, MissingMesh{Body: record.Name, Path: path})
			if l.logger != nil {
				l.logger.Debug("geometry unavailable",
					zap.String("body", record.Name),
					zap.String("path", path),
					zap.Error(err))
			}
		} else {
			body.Mesh = mesh
			body.Collision = true
			body.Visual = true
		}
	}
	return body
}

// loadMesh reads an STL file and scales it from millimeters to meters.
func loadMesh(path string) (*model3d.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tris, err := model3d.ReadSTL(f)
	if err != nil {
		return nil, fmt.Errorf("read STL %s: %w", path, err)
	}
	return model3d.NewMeshTriangles(tris).Scale(1 / millimetersPerMeter), nil
}

// resolveJoint resolves one joint record through the name table. It returns
// either a joint to register or the skip outcome, never both.
func resolveJoint(record *interchange.Joint, table map[string]*Body) (*Joint, *SkippedJoint) {
	if record.BodyOne == "" || record.BodyTwo == "" {
		return nil, &SkippedJoint{Name: record.Name, Type: record.Type, Reason: SkipMissingEndpoint}
	}
	one, ok := table[record.BodyOne]
	if !ok {
		return nil, &SkippedJoint{
			Name: record.Name, Type: record.Type,
			Reason: SkipUnresolvedBody, Detail: record.BodyOne,
		}
	}
	two, ok := table[record.BodyTwo]
	if !ok {
		return nil, &SkippedJoint{
			Name: record.Name, Type: record.Type,
			Reason: SkipUnresolvedBody, Detail: record.BodyTwo,
		}
	}
	kind := ClassifyJointType(record.Type)
	if kind == JointUnknown {
		return nil, &SkippedJoint{Name: record.Name, Type: record.Type, Reason: SkipUnknownType}
	}
	joint := &Joint{Name: record.Name, Kind: kind, BodyOne: one, BodyTwo: two}
	if record.Origin != nil {
		joint.Origin = toMeters(record.Origin)
	}
	return joint, nil
}

func toMeters(v *interchange.Vec3) [3]float64 {
	return [3]float64{
		v.X / millimetersPerMeter,
		v.Y / millimetersPerMeter,
		v.Z / millimetersPerMeter,
	}
}
