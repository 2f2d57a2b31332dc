package interchange

import (
	"encoding/json"
	"fmt"
	"os"
)

// FailureClass distinguishes why a validation failed. All classes are
// terminal for the validation call; none implies a retry.
type FailureClass string

const (
	// FailureNone means the document passed.
	FailureNone FailureClass = ""
	// FailureMissingFile means the document file could not be read.
	FailureMissingFile FailureClass = "missing_file"
	// FailureMalformedJSON means the file is not valid JSON text.
	FailureMalformedJSON FailureClass = "malformed_json"
	// FailureSchema means the JSON is well-formed but violates the schema.
	FailureSchema FailureClass = "schema"
)

// ValidationResult is the pass/fail outcome of a schema validation, with a
// human-readable reason on failure.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Reason string       `json:"reason"`
	Class  FailureClass `json:"class,omitempty"`
}

func pass() ValidationResult {
	return ValidationResult{Valid: true, Reason: "valid"}
}

func fail(class FailureClass, format string, args ...interface{}) ValidationResult {
	return ValidationResult{Valid: false, Reason: fmt.Sprintf(format, args...), Class: class}
}

// requiredFields are checked in declaration order; validation fails fast on
// the first violation.
var requiredFields = []string{"model_name", "bodies", "joints", "metadata"}

// ValidateFile validates the interchange document at path.
func ValidateFile(path string) ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fail(FailureMissingFile, "file not found: %s", path)
		}
		return fail(FailureMissingFile, "cannot read file %s: %v", path, err)
	}
	return ValidateBytes(data)
}

// ValidateBytes validates raw JSON document text. It works on the decoded
// generic value rather than the typed Document so that a missing key is
// distinguishable from a zero value.
func ValidateBytes(data []byte) ValidationResult {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fail(FailureMalformedJSON, "JSON parsing error: %v", err)
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return fail(FailureSchema, "missing required field: %s", field)
		}
	}

	bodies, ok := raw["bodies"].([]interface{})
	if !ok {
		return fail(FailureSchema, "bodies must be a list")
	}
	for i, b := range bodies {
		body, ok := b.(map[string]interface{})
		if !ok {
			return fail(FailureSchema, "body %d must be an object", i)
		}
		if _, ok := body["name"]; !ok {
			return fail(FailureSchema, "body %d missing 'name' field", i)
		}
		if _, ok := body["mass_properties"]; !ok {
			return fail(FailureSchema, "body %v missing 'mass_properties'", body["name"])
		}
	}

	joints, ok := raw["joints"].([]interface{})
	if !ok {
		return fail(FailureSchema, "joints must be a list")
	}
	for i, j := range joints {
		joint, ok := j.(map[string]interface{})
		if !ok {
			return fail(FailureSchema, "joint %d must be an object", i)
		}
		if _, ok := joint["name"]; !ok {
			return fail(FailureSchema, "joint %d missing 'name' field", i)
		}
		if _, ok := joint["type"]; !ok {
			return fail(FailureSchema, "joint %v missing 'type' field", joint["name"])
		}
	}

	return pass()
}
