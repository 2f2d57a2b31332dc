package loader

import "testing"

func TestClassifyJointType(t *testing.T) {
	tests := []struct {
		name      string
		jointType string
		expected  JointKind
	}{
		{"revolute host string", "RevoluteJointType", JointRevolute},
		{"bare revolute", "Revolute", JointRevolute},
		{"rigid host string", "RigidJointType", JointRigid},
		{"bare rigid", "Rigid", JointRigid},
		{"slider host string", "SliderJointType", JointSlider},
		{"bare slider", "Slider", JointSlider},
		{"unknown", "BallJointType", JointUnknown},
		{"empty", "", JointUnknown},
		{"case sensitive", "revoluteJointType", JointUnknown},
		{"revolute matched before slider", "RevoluteSliderJointType", JointRevolute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyJointType(tt.jointType); got != tt.expected {
				t.Errorf("ClassifyJointType(%q) = %q, want %q", tt.jointType, got, tt.expected)
			}
		})
	}
}
