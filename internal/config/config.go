// Package config provides the chronobridge settings document: export
// settings consumed by the interchange writer and simulation settings handed
// to the loading side.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Export     ExportConfig     `yaml:"export"`
	Simulation SimulationConfig `yaml:"simulation"`
	Watch      WatchConfig      `yaml:"watch"`
}

// ExportConfig holds interchange writer settings. The toggles are pointers
// so that an omitted key defaults to enabled rather than disabled.
type ExportConfig struct {
	GeometryDir          string      `yaml:"geometry_dir"`
	ExportSTL            *bool       `yaml:"export_stl"`
	STLQuality           string      `yaml:"stl_quality"` // low, medium, high
	ExportMassProperties *bool       `yaml:"export_mass_properties"`
	ExportJoints         *bool       `yaml:"export_joints"`
	ExportMaterials      *bool       `yaml:"export_materials"`
	Units                UnitsConfig `yaml:"unit_conversion"`
}

// STLEnabled returns whether STL sidecar files are written; defaults to true.
func (e *ExportConfig) STLEnabled() bool { return e.ExportSTL == nil || *e.ExportSTL }

// MassPropertiesEnabled returns whether mass properties are exported; defaults to true.
func (e *ExportConfig) MassPropertiesEnabled() bool {
	return e.ExportMassProperties == nil || *e.ExportMassProperties
}

// JointsEnabled returns whether joints are exported; defaults to true.
func (e *ExportConfig) JointsEnabled() bool { return e.ExportJoints == nil || *e.ExportJoints }

// MaterialsEnabled returns whether materials are exported; defaults to true.
func (e *ExportConfig) MaterialsEnabled() bool { return e.ExportMaterials == nil || *e.ExportMaterials }

// UnitsConfig names the source and target length units of an export.
type UnitsConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SimulationConfig holds settings applied to the simulation world.
type SimulationConfig struct {
	Gravity         [3]float64     `yaml:"gravity"`
	TimeStep        float64        `yaml:"time_step"`
	SolverType      string         `yaml:"solver_type"` // NSC or SMC
	DefaultMaterial MaterialConfig `yaml:"default_material"`
}

// MaterialConfig holds contact material defaults.
type MaterialConfig struct {
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

// WatchConfig holds bundle watch settings.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
}

// Load reads and parses the settings file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path. Used by the config subcommand to write the
// default settings document.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
