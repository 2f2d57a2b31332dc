// Package units converts lengths between the unit systems seen in CAD
// exports and the meter-based simulation world.
package units

import "fmt"

// metersPer maps each supported unit name to its meters-per-unit scale
// factor. An unsupported name on either side of a conversion is a hard
// error, never a silent no-op.
var metersPer = map[string]float64{
	"mm": 0.001,
	"cm": 0.01,
	"m":  1.0,
	"in": 0.0254,
	"ft": 0.3048,
}

// Supported reports whether unit names a known unit.
func Supported(unit string) bool {
	_, ok := metersPer[unit]
	return ok
}

// Convert converts value from one unit to another by going through meters.
// Round-tripping a value holds to floating-point tolerance.
func Convert(value float64, from, to string) (float64, error) {
	fromFactor, ok := metersPer[from]
	if !ok {
		return 0, fmt.Errorf("unsupported unit conversion: %s to %s", from, to)
	}
	toFactor, ok := metersPer[to]
	if !ok {
		return 0, fmt.Errorf("unsupported unit conversion: %s to %s", from, to)
	}
	return value * fromFactor / toFactor, nil
}
