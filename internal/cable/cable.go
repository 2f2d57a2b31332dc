// Package cable exports cable runs (sketch line segments) to CSV with world
// coordinates in meters. This is the simpler sibling of the interchange
// bundle: no document, just one row per segment.
package cable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVHeader is the fixed column header consumers parse against.
const CSVHeader = "StartX,StartY,StartZ,EndX,EndY,EndZ"

// Sketch geometry comes out of the CAD host in centimeters.
const centimetersPerMeter = 100.0

// Point is a world-coordinate position in centimeters, as reported by the
// CAD sketch.
type Point struct {
	X, Y, Z float64
}

// Segment is one cable: a straight sketch line with two endpoints.
type Segment struct {
	Start Point
	End   Point
}

// SegmentSource abstracts the CAD selection of cable lines, so the CSV
// writing is testable without the host present.
type SegmentSource interface {
	// Segments returns the selected cable segments in centimeters.
	Segments() ([]Segment, error)
}

// StaticSegments is an in-memory SegmentSource.
type StaticSegments []Segment

// Segments implements SegmentSource.
func (s StaticSegments) Segments() ([]Segment, error) { return s, nil }

// WriteCSV writes the header plus one row per segment to w, converting
// coordinates from centimeters to meters. Returns the number of rows written.
func WriteCSV(w io.Writer, segments []Segment) (int, error) {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, CSVHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for i, seg := range segments {
		row := strings.Join([]string{
			formatCoord(seg.Start.X / centimetersPerMeter),
			formatCoord(seg.Start.Y / centimetersPerMeter),
			formatCoord(seg.Start.Z / centimetersPerMeter),
			formatCoord(seg.End.X / centimetersPerMeter),
			formatCoord(seg.End.Y / centimetersPerMeter),
			formatCoord(seg.End.Z / centimetersPerMeter),
		}, ",")
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return i, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return len(segments), err
	}
	return len(segments), nil
}

// ExportFile fetches segments from source and writes them to a CSV file at
// path. Returns the number of cable rows written.
func ExportFile(path string, source SegmentSource) (int, error) {
	segments, err := source.Segments()
	if err != nil {
		return 0, fmt.Errorf("fetch segments: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	n, err := WriteCSV(f, segments)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}

// formatCoord renders a coordinate with full float64 precision, keeping a
// trailing ".0" on integral values so 1.0 stays "1.0", not "1".
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
