package config

import "fmt"

// PruningMode is the state-retention policy. The choice is closed: a mode
// string outside the known set fails the load rather than defaulting.
type PruningMode int

const (
	// PruningModeArchive retains every historical state.
	PruningModeArchive PruningMode = iota
	// PruningModeBasic retains only the most recent History states.
	PruningModeBasic
)

func (m PruningMode) String() string {
	switch m {
	case PruningModeArchive:
		return "archive"
	case PruningModeBasic:
		return "basic"
	default:
		return fmt.Sprintf("PruningMode(%d)", int(m))
	}
}

// PruningConfig carries the selected mode; History is meaningful for
// PruningModeBasic only.
type PruningConfig struct {
	Mode    PruningMode
	History uint64
}

// NewPruningConfig maps a mode string onto the closed variant set. Used by
// the file loader and by the CLI override path.
func NewPruningConfig(mode string, history uint64) (PruningConfig, error) {
	switch mode {
	case "archive":
		return PruningConfig{Mode: PruningModeArchive}, nil
	case "basic":
		return PruningConfig{Mode: PruningModeBasic, History: history}, nil
	default:
		return PruningConfig{}, fmt.Errorf("unknown pruning mode %q (valid: archive, basic)", mode)
	}
}

func newPruningConfig(n Node) (PruningConfig, error) {
	mode, err := n.RequiredString("mode")
	if err != nil {
		return PruningConfig{}, err
	}
	var history uint64
	if mode == "basic" {
		// History is required only for the variant that carries it.
		if history, err = n.RequiredUint64("history"); err != nil {
			return PruningConfig{}, err
		}
	}
	cfg, err := NewPruningConfig(mode, history)
	if err != nil {
		return PruningConfig{}, fmt.Errorf("config key %s: %v", n.fullKey("mode"), err)
	}
	return cfg, nil
}
