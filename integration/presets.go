// Package integration provides named resource profiles that bundle the
// storage and pruning settings operators most often change together, so a
// node can be tuned with one flag instead of several.
package integration

import (
	"fmt"

	"github.com/meridianchain/go-meridian/config"
)

// PresetConfig captures the tunable parameters that vary across profiles.
// Settings that are the same everywhere (ports, chain schedule) stay out of
// presets on purpose.
type PresetConfig struct {
	Name    string
	CacheMB int

	Pruning config.PruningConfig

	// LevelDB integrity knobs. Paranoid checks cost read throughput, so the
	// lite profile turns them off.
	ParanoidChecks  bool
	VerifyChecksums bool
}

func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:            "default",
		CacheMB:         1024,
		Pruning:         config.PruningConfig{Mode: config.PruningModeBasic, History: 64000},
		ParanoidChecks:  true,
		VerifyChecksums: true,
	}
}

// LitePreset suits development machines and CI: small cache, short history,
// integrity checks off.
func LitePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "lite"
	cfg.CacheMB = 256
	cfg.Pruning = config.PruningConfig{Mode: config.PruningModeBasic, History: 1000}
	cfg.ParanoidChecks = false
	cfg.VerifyChecksums = false
	return cfg
}

// FullPreset is the production profile for validators and public RPC nodes.
func FullPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "full"
	cfg.CacheMB = 4096
	return cfg
}

// ArchivePreset keeps every historical state, for explorers and analytics.
func ArchivePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "archive"
	cfg.CacheMB = 4096
	cfg.Pruning = config.PruningConfig{Mode: config.PruningModeArchive}
	return cfg
}

// ByName resolves a profile selected on the command line.
func ByName(name string) (PresetConfig, error) {
	switch name {
	case "lite":
		return LitePreset(), nil
	case "full":
		return FullPreset(), nil
	case "archive":
		return ArchivePreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("unknown preset %q (valid: lite, full, archive)", name)
	}
}

// Apply folds the profile into an assembled configuration. Called before the
// root is published to subsystems; the root is immutable afterwards.
func (p PresetConfig) Apply(root *config.Root) {
	root.Pruning = p.Pruning
	root.Db.LevelDb.ParanoidChecks = p.ParanoidChecks
	root.Db.LevelDb.VerifyChecksums = p.VerifyChecksums
}
