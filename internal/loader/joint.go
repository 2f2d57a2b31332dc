package loader

import "strings"

// JointKind is the closed set of constraint kinds the simulation side
// understands. Unrecognized CAD joint types map to JointUnknown, which is
// surfaced in the load report rather than silently dropped.
type JointKind string

const (
	// JointRevolute is a pin joint (one rotational degree of freedom).
	JointRevolute JointKind = "revolute"
	// JointRigid locks both bodies together.
	JointRigid JointKind = "rigid"
	// JointSlider is a prismatic joint (one translational degree of freedom).
	JointSlider JointKind = "slider"
	// JointUnknown is any type string the classifier does not recognize.
	JointUnknown JointKind = "unknown"
)

// classifiers is the fixed, ordered substring list for CAD joint type
// strings such as "RevoluteJointType". Matching is case-sensitive.
var classifiers = []struct {
	substr string
	kind   JointKind
}{
	{"Revolute", JointRevolute},
	{"Rigid", JointRigid},
	{"Slider", JointSlider},
}

// ClassifyJointType maps a free-text CAD joint type to a JointKind.
func ClassifyJointType(jointType string) JointKind {
	for _, c := range classifiers {
		if strings.Contains(jointType, c.substr) {
			return c.kind
		}
	}
	return JointUnknown
}
