package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabboraron/chronobridge/internal/config"
	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/google/uuid"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// GeometryResult is the outcome of one body's mesh export. Err is empty on
// success. Failures do not abort the batch; they are collected here so
// callers can inspect what was skipped.
type GeometryResult struct {
	Body string `json:"body"`
	Path string `json:"path"`
	Err  string `json:"error,omitempty"`
}

// Failed reports whether this body's mesh export failed.
func (g GeometryResult) Failed() bool { return g.Err != "" }

// Report describes one export: where the document landed and the per-body
// geometry outcomes.
type Report struct {
	DocumentPath string           `json:"document_path"`
	Bodies       int              `json:"bodies"`
	Joints       int              `json:"joints"`
	Geometry     []GeometryResult `json:"geometry,omitempty"`
}

// FailedGeometry returns the geometry outcomes that failed.
func (r *Report) FailedGeometry() []GeometryResult {
	var failed []GeometryResult
	for _, g := range r.Geometry {
		if g.Failed() {
			failed = append(failed, g)
		}
	}
	return failed
}

// Exporter writes interchange bundles from a CAD model source.
type Exporter struct {
	cfg      *config.ExportConfig
	tool     string
	exportID func() string
	logger   *zap.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTool records the host tool name in the document metadata.
func WithTool(name string) Option {
	return func(e *Exporter) { e.tool = name }
}

// WithLogger sets a logger for debug output (bodies written, mesh failures).
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// New creates an Exporter. cfg may be nil, in which case defaults apply.
func New(cfg *config.ExportConfig, opts ...Option) *Exporter {
	if cfg == nil {
		defaults := config.Default().Export
		cfg = &defaults
	}
	e := &Exporter{
		cfg:      cfg,
		tool:     "chronobridge",
		exportID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export projects source into an interchange document under outDir: one JSON
// file named after the model, plus one STL per body in the geometry
// subdirectory. Per-body mesh failures are best-effort and recorded in the
// report; a failure to write the document itself is fatal.
func (e *Exporter) Export(source ModelSource, outDir string) (*Report, error) {
	geomDir := filepath.Join(outDir, e.cfg.GeometryDir)
	if e.cfg.STLEnabled() {
		if err := os.MkdirAll(geomDir, 0o755); err != nil {
			return nil, fmt.Errorf("create geometry dir: %w", err)
		}
	}

	doc := &interchange.Document{
		ModelName: source.ModelName(),
		Bodies:    []interchange.Body{},
		Joints:    []interchange.Joint{},
		Materials: []interchange.Material{},
		Metadata: interchange.Metadata{
			ExportedFrom: e.tool,
			ExportScript: "chronobridge",
			ExportID:     e.exportID(),
			Units:        e.cfg.Units.From,
		},
	}
	report := &Report{}

	seen := make(map[string]bool)
	for _, body := range source.Bodies() {
		record := e.projectBody(body)
		doc.Bodies = append(doc.Bodies, record)
		if e.cfg.MaterialsEnabled() && record.Material != nil && !seen[record.Material.ID] {
			seen[record.Material.ID] = true
			doc.Materials = append(doc.Materials, *record.Material)
		}
		if e.cfg.STLEnabled() {
			report.Geometry = append(report.Geometry, e.writeMesh(body, filepath.Join(geomDir, record.GeometryFile)))
		}
	}

	if e.cfg.JointsEnabled() {
		for _, joint := range source.Joints() {
			doc.Joints = append(doc.Joints, projectJoint(joint))
		}
	}

	report.Bodies = len(doc.Bodies)
	report.Joints = len(doc.Joints)
	report.DocumentPath = filepath.Join(outDir, SanitizeName(doc.ModelName)+".json")
	if err := interchange.WriteFile(report.DocumentPath, doc); err != nil {
		return nil, err
	}
	if e.logger != nil {
		e.logger.Info("model exported",
			zap.String("document", report.DocumentPath),
			zap.Int("bodies", report.Bodies),
			zap.Int("joints", report.Joints),
			zap.Int("mesh_failures", len(report.FailedGeometry())))
	}
	return report, nil
}

func (e *Exporter) projectBody(body BodySource) interchange.Body {
	record := interchange.Body{
		Name:         body.Name(),
		IsVisible:    body.Visible(),
		Material:     body.Material(),
		GeometryFile: SanitizeName(body.Name()) + ".stl",
	}
	if e.cfg.MassPropertiesEnabled() {
		if props := body.MassProperties(); props != nil {
			record.MassProperties = *props
		}
	}
	if t := body.Translation(); t != nil {
		record.Transform = &interchange.Transform{Translation: t}
	}
	return record
}

func projectJoint(joint JointSource) interchange.Joint {
	return interchange.Joint{
		Name:         joint.Name(),
		Type:         joint.Type(),
		IsSuppressed: joint.Suppressed(),
		BodyOne:      joint.BodyOne(),
		BodyTwo:      joint.BodyTwo(),
		Origin:       joint.Origin(),
	}
}

// writeMesh tessellates one body and writes the STL file.
func (e *Exporter) writeMesh(body BodySource, path string) GeometryResult {
	result := GeometryResult{Body: body.Name(), Path: path}
	mesh, err := body.Mesh()
	if err != nil {
		result.Err = fmt.Sprintf("tessellate: %v", err)
		return result
	}
	if mesh == nil {
		result.Err = "tessellate: no mesh"
		return result
	}
	f, err := os.Create(path)
	if err != nil {
		result.Err = fmt.Sprintf("create: %v", err)
		return result
	}
	defer f.Close()
	if err := model3d.WriteSTL(f, mesh.TriangleSlice()); err != nil {
		result.Err = fmt.Sprintf("write: %v", err)
	}
	return result
}
