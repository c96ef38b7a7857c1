// plantgen is a CLI utility for generating procedural plant meshes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/plantmesh/internal/config"
	"github.com/Faultbox/plantmesh/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "gen", "g":
		cmdGen(args)
	case "info":
		cmdInfo(args)
	case "watch", "w":
		cmdWatch(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`plantgen - procedural plant mesh generator

Usage:
  plantgen <command> [options] [preset]

Commands:
  gen   [preset]    Generate a mesh and write it to the output path
  info  [preset]    Print bone, ring and triangle statistics
  watch <preset>    Regenerate whenever the preset file changes
  config            Print the effective configuration

Options:
  -config <file>    Config file (default: ./plantgen.yaml)
  -preset <file>    Preset file (yaml or toml); empty uses the sprout
  -o <file>         Output file
  -format obj|bin   Output format
  -close-seams      Emit the closing triangle of every ring gap
  -max-bones <n>    Maximum bones a preset may produce
  -debug            Enable debug logging

Config options:
  -write <file>     Write the effective config to file (.yaml or .toml)
  -global           Write it to the user config directory

Examples:
  plantgen gen -o sprout.obj
  plantgen gen -format bin -o fern.bin presets/fern.yaml
  plantgen info presets/fern.toml
  plantgen watch -o fern.obj presets/fern.yaml
  plantgen config -format bin -write plantgen.toml`)
}

// setup parses args for the named subcommand, loads the config and
// initializes the global logger. A trailing positional argument names the
// preset.
func setup(name string, args []string) *config.Config {
	return setupFlags(flag.NewFlagSet(name, flag.ExitOnError), args)
}

// setupFlags is setup for a FlagSet that carries extra subcommand flags.
func setupFlags(fs *flag.FlagSet, args []string) *config.Config {
	flags := config.BindFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		cfg.Generation.Preset = fs.Arg(0)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	logger.Sugar.Debugf("Config: %+v", *cfg)
	return cfg
}

func fail(err error) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdGen(args []string) {
	cfg := setup("gen", args)
	defer logger.Sync()

	res, err := generate(cfg)
	if err != nil {
		fail(err)
	}
	if err := write(cfg, res); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %s (%d triangles) to %s\n", res.Name, res.Mesh.TriangleCount(), cfg.Output.Path)
}

func cmdInfo(args []string) {
	cfg := setup("info", args)
	defer logger.Sync()

	res, err := generate(cfg)
	if err != nil {
		fail(err)
	}
	if err := printInfo(os.Stdout, res); err != nil {
		fail(err)
	}
}

func cmdWatch(args []string) {
	cfg := setup("watch", args)
	defer logger.Sync()

	if cfg.Generation.Preset == "" {
		fmt.Fprintln(os.Stderr, "Usage: plantgen watch [options] <preset>")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() error {
		res, err := generate(cfg)
		if err != nil {
			return err
		}
		if err := write(cfg, res); err != nil {
			return err
		}
		logger.Info("mesh written",
			zap.String("preset", res.Name),
			zap.Int("triangles", res.Mesh.TriangleCount()),
			zap.String("path", cfg.Output.Path))
		return nil
	}

	// The first build may fail while the preset is being edited.
	if err := rebuild(); err != nil {
		logger.Error("generation failed", zap.Error(err))
	}

	logger.Info("watching preset", zap.String("path", cfg.Generation.Preset))
	if err := watchFile(ctx, cfg.Generation.Preset, cfg.Watch.Debounce.Std(), rebuild); err != nil {
		fail(err)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	writeTo := fs.String("write", "", "Write the effective config to this file")
	global := fs.Bool("global", false, "Write the effective config to the user config directory")
	cfg := setupFlags(fs, args)
	defer logger.Sync()

	switch {
	case *writeTo != "":
		if err := cfg.SaveTo(*writeTo); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote config to %s\n", *writeTo)
	case *global:
		if err := cfg.Save(); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote config to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	default:
		data, err := cfg.Encode("yaml")
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(data)
	}
}
