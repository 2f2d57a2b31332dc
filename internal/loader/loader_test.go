package loader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/unixpickle/model3d/model3d"
)

// memWorld collects bodies and joints like a physics host would.
type memWorld struct {
	bodies []*Body
	joints []*Joint
}

func (w *memWorld) AddBody(b *Body) error   { w.bodies = append(w.bodies, b); return nil }
func (w *memWorld) AddJoint(j *Joint) error { w.joints = append(w.joints, j); return nil }

func writeBundle(t *testing.T, doc *interchange.Document, meshes map[string][]*model3d.Triangle) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	if err := interchange.WriteFile(path, doc); err != nil {
		t.Fatal(err)
	}
	if len(meshes) > 0 {
		geomDir := filepath.Join(dir, DefaultGeometryDir)
		if err := os.MkdirAll(geomDir, 0o755); err != nil {
			t.Fatal(err)
		}
		for name, tris := range meshes {
			f, err := os.Create(filepath.Join(geomDir, name))
			if err != nil {
				t.Fatal(err)
			}
			if err := model3d.WriteSTL(f, tris); err != nil {
				t.Fatal(err)
			}
			if err := f.Close(); err != nil {
				t.Fatal(err)
			}
		}
	}
	return path
}

func testTriangle() []*model3d.Triangle {
	return []*model3d.Triangle{{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1000, 0, 0),
		model3d.XYZ(0, 1000, 0),
	}}
}

func twoBodyDoc(jointType string) *interchange.Document {
	return &interchange.Document{
		ModelName: "TwoBody",
		Bodies: []interchange.Body{
			{Name: "A", GeometryFile: "A.stl"},
			{Name: "B", GeometryFile: "B.stl"},
		},
		Joints: []interchange.Joint{{
			Name:    "J1",
			Type:    jointType,
			BodyOne: "A",
			BodyTwo: "B",
			Origin:  &interchange.Vec3{X: 100, Y: 200, Z: 300},
		}},
		Metadata: interchange.Metadata{Units: "mm"},
	}
}

func TestLoad_revoluteJoint(t *testing.T) {
	path := writeBundle(t, twoBodyDoc("RevoluteJointType"), nil)
	world := &memWorld{}
	report, err := New().Load(path, world)
	if err != nil {
		t.Fatal(err)
	}
	if report.BodiesLoaded != 2 || report.JointsLoaded != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(world.joints) != 1 {
		t.Fatalf("got %d joints, want 1", len(world.joints))
	}
	j := world.joints[0]
	if j.Kind != JointRevolute {
		t.Errorf("kind = %q, want revolute", j.Kind)
	}
	if j.BodyOne.Name != "A" || j.BodyTwo.Name != "B" {
		t.Errorf("joint connects %q and %q", j.BodyOne.Name, j.BodyTwo.Name)
	}
	want := [3]float64{0.1, 0.2, 0.3}
	for i := range want {
		if math.Abs(j.Origin[i]-want[i]) > 1e-12 {
			t.Errorf("origin[%d] = %v, want %v (converted from mm)", i, j.Origin[i], want[i])
		}
	}
}

func TestLoad_unresolvedJointIsSkippedNotFatal(t *testing.T) {
	doc := twoBodyDoc("RevoluteJointType")
	doc.Joints[0].BodyTwo = "Ghost"
	path := writeBundle(t, doc, nil)
	world := &memWorld{}
	report, err := New().Load(path, world)
	if err != nil {
		t.Fatal(err)
	}
	if len(world.joints) != 0 {
		t.Fatalf("got %d joints, want 0", len(world.joints))
	}
	if len(report.SkippedJoints) != 1 {
		t.Fatalf("skipped = %+v", report.SkippedJoints)
	}
	s := report.SkippedJoints[0]
	if s.Reason != SkipUnresolvedBody || s.Detail != "Ghost" {
		t.Errorf("skip = %+v", s)
	}
}

func TestLoad_missingEndpointIsSkipped(t *testing.T) {
	doc := twoBodyDoc("RigidJointType")
	doc.Joints[0].BodyOne = ""
	path := writeBundle(t, doc, nil)
	world := &memWorld{}
	report, err := New().Load(path, world)
	if err != nil {
		t.Fatal(err)
	}
	if len(world.joints) != 0 || len(report.SkippedJoints) != 1 {
		t.Fatalf("joints=%d skipped=%+v", len(world.joints), report.SkippedJoints)
	}
	if report.SkippedJoints[0].Reason != SkipMissingEndpoint {
		t.Errorf("reason = %q", report.SkippedJoints[0].Reason)
	}
}

func TestLoad_unknownJointTypeIsSurfaced(t *testing.T) {
	doc := twoBodyDoc("BallJointType")
	path := writeBundle(t, doc, nil)
	world := &memWorld{}
	report, err := New().Load(path, world)
	if err != nil {
		t.Fatal(err)
	}
	if len(world.joints) != 0 {
		t.Fatalf("got %d joints, want 0", len(world.joints))
	}
	if len(report.SkippedJoints) != 1 || report.SkippedJoints[0].Reason != SkipUnknownType {
		t.Errorf("skipped = %+v", report.SkippedJoints)
	}
}

func TestLoad_defaultsForAbsentMassProperties(t *testing.T) {
	doc := &interchange.Document{
		ModelName: "Bare",
		Bodies:    []interchange.Body{{Name: "A"}},
		Metadata:  interchange.Metadata{Units: "mm"},
	}
	path := writeBundle(t, doc, nil)
	world := &memWorld{}
	if _, err := New().Load(path, world); err != nil {
		t.Fatal(err)
	}
	b := world.bodies[0]
	if b.Mass != 1.0 {
		t.Errorf("mass = %v, want default 1.0", b.Mass)
	}
	if b.Inertia != [3]float64{1, 1, 1} {
		t.Errorf("inertia = %v, want default (1,1,1)", b.Inertia)
	}
	if b.Position != [3]float64{} {
		t.Errorf("position = %v, want origin", b.Position)
	}
	if b.Collision || b.Visual {
		t.Error("body without geometry file should not gain collision or visual shapes")
	}
}

func TestLoad_positionPrecedence(t *testing.T) {
	mass := 4.0
	com := &interchange.Vec3{X: 1000, Y: 0, Z: 0}
	translation := &interchange.Vec3{X: 0, Y: 2000, Z: 0}
	doc := &interchange.Document{
		ModelName: "Precedence",
		Bodies: []interchange.Body{
			{
				Name: "Both",
				MassProperties: interchange.MassProperties{
					Mass:         &mass,
					CenterOfMass: com,
					MomentsOfInertia: &interchange.Inertia{
						XX: 0.2, YY: 0.3, ZZ: 0.4, XY: 0.01, YZ: 0.02, XZ: 0.03,
					},
				},
				Transform: &interchange.Transform{Translation: translation},
			},
			{
				Name:           "OnlyCOM",
				MassProperties: interchange.MassProperties{CenterOfMass: com},
			},
		},
		Metadata: interchange.Metadata{Units: "mm"},
	}
	path := writeBundle(t, doc, nil)
	world := &memWorld{}
	if _, err := New().Load(path, world); err != nil {
		t.Fatal(err)
	}
	both := world.bodies[0]
	if both.Position != [3]float64{0, 2, 0} {
		t.Errorf("translation should win over center of mass; position = %v", both.Position)
	}
	if both.Mass != 4.0 {
		t.Errorf("mass = %v", both.Mass)
	}
	if both.Inertia != [3]float64{0.2, 0.3, 0.4} {
		t.Errorf("inertia diagonal = %v", both.Inertia)
	}
	onlyCOM := world.bodies[1]
	if onlyCOM.Position != [3]float64{1, 0, 0} {
		t.Errorf("center of mass should apply when no transform; position = %v", onlyCOM.Position)
	}
}

func TestLoad_geometry(t *testing.T) {
	doc := &interchange.Document{
		ModelName: "Geom",
		Bodies: []interchange.Body{
			{Name: "WithMesh", GeometryFile: "WithMesh.stl", IsFixed: true},
			{Name: "NoMesh", GeometryFile: "NoMesh.stl"},
		},
		Metadata: interchange.Metadata{Units: "mm"},
	}
	path := writeBundle(t, doc, map[string][]*model3d.Triangle{"WithMesh.stl": testTriangle()})
	world := &memWorld{}
	report, err := New().Load(path, world)
	if err != nil {
		t.Fatal(err)
	}
	withMesh := world.bodies[0]
	if !withMesh.Collision || !withMesh.Visual || withMesh.Mesh == nil {
		t.Error("body with an existing STL should gain collision and visual shapes")
	}
	if !withMesh.Fixed {
		t.Error("is_fixed should carry through")
	}
	// Vertices were exported in mm; the loaded mesh is scaled to meters.
	max := withMesh.Mesh.Max()
	if math.Abs(max.X-1.0) > 1e-6 || math.Abs(max.Y-1.0) > 1e-6 {
		t.Errorf("mesh should be scaled mm to m, max = %v", max)
	}

	noMesh := world.bodies[1]
	if noMesh.Collision || noMesh.Visual {
		t.Error("missing STL should disable collision and visual, not fail the load")
	}
	if len(report.MissingMeshes) != 1 || report.MissingMeshes[0].Body != "NoMesh" {
		t.Errorf("missing meshes = %+v", report.MissingMeshes)
	}
}

func TestLoad_fatalErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := New().Load(filepath.Join(dir, "missing.json"), &memWorld{}); err == nil {
		t.Error("missing document should be fatal")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New().Load(bad, &memWorld{}); err == nil {
		t.Error("malformed document should be fatal")
	}
}
