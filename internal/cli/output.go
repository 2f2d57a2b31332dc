// Package cli renders command results for terminal or machine consumption.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/gabboraron/chronobridge/internal/loader"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a --output flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteValidation writes a validation result to w in the given format.
func WriteValidation(w io.Writer, path string, result interchange.ValidationResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	if result.Valid {
		_, err := fmt.Fprintf(w, "valid export file: %s\n", path)
		return err
	}
	_, err := fmt.Fprintf(w, "invalid export file: %s (%s)\n", result.Reason, result.Class)
	return err
}

// WriteSummary writes a model summary to w in the given format.
func WriteSummary(w io.Writer, s *interchange.Summary, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, s)
	}
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Model Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Model Name: %s\n", s.ModelName)
	fmt.Fprintf(w, "Units: %s\n", s.Units)
	fmt.Fprintf(w, "Total Mass: %.2f kg\n", s.TotalMass)
	fmt.Fprintf(w, "\nBodies (%d):\n", s.NumBodies)
	for _, name := range s.Bodies {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "\nJoints (%d):\n", s.NumJoints)
	for _, name := range s.Joints {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	_, err := fmt.Fprintln(w, rule)
	return err
}

// WriteLoadReport writes a loader report to w in the given format.
func WriteLoadReport(w io.Writer, r *loader.Report, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, r)
	}
	fmt.Fprintf(w, "Loaded model %q: %d bodies, %d joints\n", r.ModelName, r.BodiesLoaded, r.JointsLoaded)
	for _, m := range r.MissingMeshes {
		fmt.Fprintf(w, "  geometry unavailable for body %s (%s)\n", m.Body, m.Path)
	}
	for _, s := range r.SkippedJoints {
		switch s.Reason {
		case loader.SkipUnresolvedBody:
			fmt.Fprintf(w, "  skipped joint %s: body %q not in document\n", s.Name, s.Detail)
		case loader.SkipMissingEndpoint:
			fmt.Fprintf(w, "  skipped joint %s: missing endpoint\n", s.Name)
		case loader.SkipUnknownType:
			fmt.Fprintf(w, "  skipped joint %s: unknown type %q\n", s.Name, s.Type)
		}
	}
	return nil
}
