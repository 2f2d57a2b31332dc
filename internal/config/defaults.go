package config

// Default returns the default settings document, matching what the config
// subcommand writes.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg. The export
// toggles are materialized so a saved document spells them out.
func ApplyDefaults(cfg *Config) {
	t := true
	if cfg.Export.GeometryDir == "" {
		cfg.Export.GeometryDir = "geometries"
	}
	if cfg.Export.ExportSTL == nil {
		cfg.Export.ExportSTL = &t
	}
	if cfg.Export.STLQuality == "" {
		cfg.Export.STLQuality = "medium"
	}
	if cfg.Export.ExportMassProperties == nil {
		cfg.Export.ExportMassProperties = &t
	}
	if cfg.Export.ExportJoints == nil {
		cfg.Export.ExportJoints = &t
	}
	if cfg.Export.ExportMaterials == nil {
		cfg.Export.ExportMaterials = &t
	}
	if cfg.Export.Units.From == "" {
		cfg.Export.Units.From = "mm"
	}
	if cfg.Export.Units.To == "" {
		cfg.Export.Units.To = "m"
	}
	if cfg.Simulation.Gravity == [3]float64{} {
		cfg.Simulation.Gravity = [3]float64{0, -9.81, 0}
	}
	if cfg.Simulation.TimeStep == 0 {
		cfg.Simulation.TimeStep = 0.01
	}
	if cfg.Simulation.SolverType == "" {
		cfg.Simulation.SolverType = "NSC"
	}
	if cfg.Simulation.DefaultMaterial.Friction == 0 {
		cfg.Simulation.DefaultMaterial.Friction = 0.5
	}
	if cfg.Simulation.DefaultMaterial.Restitution == 0 {
		cfg.Simulation.DefaultMaterial.Restitution = 0.1
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".json"}
	}
}
