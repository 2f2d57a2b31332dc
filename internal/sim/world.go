// Package sim provides an in-memory simulation world. It implements
// loader.World so bundles can be loaded, inspected, and tested without a
// physics host present; time-stepping is left to the host engine.
package sim

import (
	"fmt"

	"github.com/gabboraron/chronobridge/internal/loader"
)

// World holds registered bodies and joints. Registration order is preserved
// so it mirrors document order.
type World struct {
	Gravity [3]float64

	bodies []*loader.Body
	joints []*loader.Joint
	byName map[string]*loader.Body
}

// NewWorld returns an empty world with default gravity (0, -9.81, 0).
func NewWorld() *World {
	return &World{
		Gravity: [3]float64{0, -9.81, 0},
		byName:  make(map[string]*loader.Body),
	}
}

// SetGravity sets the gravity vector, e.g. from simulation settings.
func (w *World) SetGravity(g [3]float64) {
	w.Gravity = g
}

// AddBody registers a body. A duplicate name replaces the earlier body in
// the lookup table; both stay in the ordered list, mirroring the document.
func (w *World) AddBody(b *loader.Body) error {
	if b == nil || b.Name == "" {
		return fmt.Errorf("body must have a name")
	}
	w.bodies = append(w.bodies, b)
	w.byName[b.Name] = b
	return nil
}

// AddJoint registers a joint. Both endpoints must already be registered.
func (w *World) AddJoint(j *loader.Joint) error {
	if j == nil || j.BodyOne == nil || j.BodyTwo == nil {
		return fmt.Errorf("joint %s must connect two bodies", jointName(j))
	}
	if _, ok := w.byName[j.BodyOne.Name]; !ok {
		return fmt.Errorf("joint %s: body %s not registered", j.Name, j.BodyOne.Name)
	}
	if _, ok := w.byName[j.BodyTwo.Name]; !ok {
		return fmt.Errorf("joint %s: body %s not registered", j.Name, j.BodyTwo.Name)
	}
	w.joints = append(w.joints, j)
	return nil
}

func jointName(j *loader.Joint) string {
	if j == nil {
		return "<nil>"
	}
	return j.Name
}

// Body returns the registered body with the given name, or nil.
func (w *World) Body(name string) *loader.Body {
	return w.byName[name]
}

// Bodies returns the registered bodies in registration order.
func (w *World) Bodies() []*loader.Body {
	return w.bodies
}

// Joints returns the registered joints in registration order.
func (w *World) Joints() []*loader.Joint {
	return w.joints
}

// BodyCount returns the number of registered bodies.
func (w *World) BodyCount() int { return len(w.bodies) }

// JointCount returns the number of registered joints.
func (w *World) JointCount() int { return len(w.joints) }
