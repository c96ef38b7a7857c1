package config

import "flag"

// Flags holds command-line overrides bound to a FlagSet.
type Flags struct {
	config     *string
	debug      *bool
	preset     *string
	output     *string
	format     *string
	closeSeams *bool
	maxBones   *int
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:     fs.String("config", "", "Path to config file"),
		debug:      fs.Bool("debug", false, "Enable debug logging"),
		preset:     fs.String("preset", "", "Plant preset file (yaml or toml)"),
		output:     fs.String("o", "", "Output file"),
		format:     fs.String("format", "", "Output format: obj or bin"),
		closeSeams: fs.Bool("close-seams", false, "Emit the closing triangle of every ring gap"),
		maxBones:   fs.Int("max-bones", 0, "Maximum bones a preset may produce"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.preset != "" {
		cfg.Generation.Preset = *f.preset
	}
	if *f.output != "" {
		cfg.Output.Path = *f.output
	}
	if *f.format != "" {
		cfg.Output.Format = *f.format
	}
	if *f.closeSeams {
		cfg.Generation.CloseSeams = true
	}
	if *f.maxBones > 0 {
		cfg.Generation.MaxBones = *f.maxBones
	}
}
