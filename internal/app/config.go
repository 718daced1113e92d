package app

import "errors"

// Config holds everything a build run needs to know: the working root, the
// toolchain install directories, and the platform tag that selects the
// process-invocation style.
type Config struct {
	Root         string // working root, absolute
	AssemblerDir string
	LinkerDir    string
	Platform     string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("working root is required")
	}
	if cfg.AssemblerDir == "" {
		return nil, errors.New("assembler install directory is required")
	}
	if cfg.LinkerDir == "" {
		return nil, errors.New("linker install directory is required")
	}
	if cfg.Platform == "" {
		return nil, errors.New("platform tag is required")
	}
	return &cfg, nil
}
