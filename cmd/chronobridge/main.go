// Package main is the chronobridge CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabboraron/chronobridge/internal/cli"
	"github.com/gabboraron/chronobridge/internal/config"
	"github.com/gabboraron/chronobridge/internal/interchange"
	"github.com/gabboraron/chronobridge/internal/loader"
	"github.com/gabboraron/chronobridge/internal/sim"
	"github.com/gabboraron/chronobridge/internal/watcher"
	"github.com/gabboraron/chronobridge/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "chronobridge.yaml"

// loadConfig loads the settings document at path. When path is the default
// and no such file exists, the built-in defaults are used so validate, load,
// and watch work without a config step.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil && os.IsNotExist(err) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "validate":
		runValidate()
	case "summary":
		runSummary()
	case "config":
		runConfig()
	case "load":
		runLoad()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("chronobridge version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func parseFormat(s string) cli.OutputFormat {
	format, err := cli.ParseFormat(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return format
}

func runValidate() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("Usage: chronobridge validate [flags] <model.json>")
		os.Exit(1)
	}
	path := fs.Arg(0)
	result := interchange.ValidateFile(path)
	if err := cli.WriteValidation(os.Stdout, path, result, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
	if !result.Valid {
		os.Exit(1)
	}
}

func runSummary() {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("Usage: chronobridge summary [flags] <model.json>")
		os.Exit(1)
	}
	summary, err := interchange.SummarizeFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading model: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSummary(os.Stdout, summary, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runConfig() {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])
	path := defaultConfigPath
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if err := config.Save(path, config.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Configuration file created: %s\n", path)
}

func runLoad() {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	geometryDir := fs.String("geometry", loader.DefaultGeometryDir, "geometry directory (relative to the document unless absolute)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging (bodies registered, joints skipped, etc.)")
	_ = fs.Parse(os.Args[2:])
	if fs.NArg() < 1 {
		fmt.Println("Usage: chronobridge load [flags] <model.json>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	world := sim.NewWorld()
	world.SetGravity(cfg.Simulation.Gravity)

	opts := []loader.Option{loader.WithGeometryDir(*geometryDir)}
	if debugMode {
		opts = append(opts, loader.WithLogger(logger))
	}
	report, err := loader.New(opts...).Load(path, world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteLoadReport(os.Stdout, report, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (file events, debounced changes)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	dirs := fs.Args()
	if len(dirs) == 0 {
		dirs = cfg.Watch.Directories
	}
	if len(dirs) == 0 {
		fmt.Println("Usage: chronobridge watch [flags] <dir> [dir...]")
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	onChange := func(path string) {
		result := interchange.ValidateFile(path)
		if !result.Valid {
			logger.Warn("bundle invalid", zap.String("path", path), zap.String("reason", result.Reason))
			return
		}
		summary, err := interchange.SummarizeFile(path)
		if err != nil {
			logger.Warn("summarize failed", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("bundle updated",
			zap.String("path", path),
			zap.String("model", summary.ModelName),
			zap.Int("bodies", summary.NumBodies),
			zap.Int("joints", summary.NumJoints),
			zap.Float64("total_mass", summary.TotalMass))
	}
	onRemove := func(path string) {
		logger.Info("bundle removed", zap.String("path", path))
	}

	watchOpts := []watcher.Option{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.New(dirs, cfg.Watch.Extensions, onChange, onRemove, watchOpts...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	w.SyncExisting()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
	w.Stop()
}

func printUsage() {
	fmt.Println(`chronobridge - CAD model to rigid-body simulation interchange

Usage:
  chronobridge validate <model.json>   Validate an exported bundle
  chronobridge summary <model.json>    Print body/joint counts and total mass
  chronobridge load <model.json>       Load a bundle into an in-memory world
  chronobridge config [path]           Write the default settings document
  chronobridge watch <dir> [dir...]    Re-validate bundles as they are rewritten
  chronobridge version                 Show version
  chronobridge help                    Show this help

Validate Flags:
  --output string    Output format: text or json (default: text)

Summary Flags:
  --output string    Output format: text or json (default: text)

Load Flags:
  --config string    Config file path (default: chronobridge.yaml)
  --geometry string  Geometry directory, relative to the document (default: geometries)
  --output string    Output format: text or json (default: text)
  --debug            Enable debug logging

Watch Flags:
  --config string    Config file path (default: chronobridge.yaml)
  --debug            Enable debug logging

Examples:
  chronobridge validate robot_arm.json
  chronobridge summary --output json robot_arm.json
  chronobridge load --geometry geometries robot_arm.json
  chronobridge config export_config.yaml
  chronobridge watch ./exports`)
}
