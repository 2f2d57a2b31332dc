package cable

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	segments := []Segment{{
		Start: Point{X: 100, Y: 200, Z: 300},
		End:   Point{X: 400, Y: 500, Z: 600},
	}}
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, segments)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != CSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1.0,2.0,3.0,4.0,5.0,6.0" {
		t.Errorf("row = %q, want centimeters divided by 100", lines[1])
	}
}

func TestWriteCSV_empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("rows = %d", n)
	}
	if strings.TrimSpace(buf.String()) != CSVHeader {
		t.Errorf("empty export should still write the header, got %q", buf.String())
	}
}

func TestWriteCSV_fractionalCoordinates(t *testing.T) {
	segments := []Segment{{
		Start: Point{X: 12.5, Y: -0.25, Z: 0},
		End:   Point{X: 1, Y: 1, Z: 1},
	}}
	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, segments); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "0.125,-0.0025,0.0,0.01,0.01,0.01" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cables.csv")
	source := StaticSegments{
		{Start: Point{X: 100}, End: Point{X: 200}},
		{Start: Point{Y: 300}, End: Point{Y: 400}},
	}
	n, err := ExportFile(path, source)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[1] != "1.0,0.0,0.0,2.0,0.0,0.0" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "0.0,3.0,0.0,0.0,4.0,0.0" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
