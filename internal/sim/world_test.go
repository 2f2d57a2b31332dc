package sim

import (
	"testing"

	"github.com/gabboraron/chronobridge/internal/loader"
)

func TestWorld_addAndLookup(t *testing.T) {
	w := NewWorld()
	a := &loader.Body{Name: "A", Mass: 1}
	b := &loader.Body{Name: "B", Mass: 2}
	if err := w.AddBody(a); err != nil {
		t.Fatal(err)
	}
	if err := w.AddBody(b); err != nil {
		t.Fatal(err)
	}
	if w.BodyCount() != 2 {
		t.Errorf("body count = %d", w.BodyCount())
	}
	if w.Body("A") != a || w.Body("B") != b {
		t.Error("lookup by name should return the registered body")
	}
	if w.Body("C") != nil {
		t.Error("unknown name should return nil")
	}
	if got := w.Bodies(); len(got) != 2 || got[0] != a {
		t.Error("registration order should be preserved")
	}
}

func TestWorld_addBodyRequiresName(t *testing.T) {
	w := NewWorld()
	if err := w.AddBody(&loader.Body{}); err == nil {
		t.Error("expected error for unnamed body")
	}
	if err := w.AddBody(nil); err == nil {
		t.Error("expected error for nil body")
	}
}

func TestWorld_addJoint(t *testing.T) {
	w := NewWorld()
	a := &loader.Body{Name: "A"}
	b := &loader.Body{Name: "B"}
	_ = w.AddBody(a)
	_ = w.AddBody(b)

	j := &loader.Joint{Name: "J1", Kind: loader.JointRevolute, BodyOne: a, BodyTwo: b}
	if err := w.AddJoint(j); err != nil {
		t.Fatal(err)
	}
	if w.JointCount() != 1 {
		t.Errorf("joint count = %d", w.JointCount())
	}

	stranger := &loader.Body{Name: "Z"}
	if err := w.AddJoint(&loader.Joint{Name: "J2", BodyOne: a, BodyTwo: stranger}); err == nil {
		t.Error("expected error for joint to unregistered body")
	}
	if err := w.AddJoint(&loader.Joint{Name: "J3", BodyOne: a}); err == nil {
		t.Error("expected error for joint with nil endpoint")
	}
}

func TestWorld_gravity(t *testing.T) {
	w := NewWorld()
	if w.Gravity != [3]float64{0, -9.81, 0} {
		t.Errorf("default gravity = %v", w.Gravity)
	}
	w.SetGravity([3]float64{0, 0, -9.81})
	if w.Gravity != [3]float64{0, 0, -9.81} {
		t.Errorf("gravity = %v", w.Gravity)
	}
}
