package interchange

// Summary describes an interchange document at a glance: counts, names, and
// total mass. Bodies without a recorded mass contribute zero.
type Summary struct {
	ModelName string   `json:"model_name"`
	NumBodies int      `json:"num_bodies"`
	NumJoints int      `json:"num_joints"`
	Units     string   `json:"units"`
	TotalMass float64  `json:"total_mass"`
	Bodies    []string `json:"bodies"`
	Joints    []string `json:"joints"`
}

// Summarize computes a summary for the given document.
func Summarize(doc *Document) *Summary {
	s := &Summary{
		ModelName: doc.ModelName,
		NumBodies: len(doc.Bodies),
		NumJoints: len(doc.Joints),
		Units:     doc.Metadata.Units,
		Bodies:    make([]string, 0, len(doc.Bodies)),
		Joints:    make([]string, 0, len(doc.Joints)),
	}
	if s.Units == "" {
		s.Units = "unknown"
	}
	for i := range doc.Bodies {
		s.Bodies = append(s.Bodies, doc.Bodies[i].Name)
		if m := doc.Bodies[i].MassProperties.Mass; m != nil {
			s.TotalMass += *m
		}
	}
	for i := range doc.Joints {
		s.Joints = append(s.Joints, doc.Joints[i].Name)
	}
	return s
}

// SummarizeFile reads the document at path and summarizes it.
func SummarizeFile(path string) (*Summary, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Summarize(doc), nil
}
