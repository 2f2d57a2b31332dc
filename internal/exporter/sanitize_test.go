package exporter

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Base", "Base"},
		{"Robot Arm v2", "Robot_Arm_v2"},
		{"Arm/Left", "Arm_Left"},
		{"part.v1-final", "part.v1-final"},
		{"ウイング", "____"},
		{"", "unnamed"},
	}
	for _, tc := range tests {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
