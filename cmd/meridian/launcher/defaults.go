package launcher

import "path/filepath"

// defaultConfig supplies the local instance settings used before flags
// override them. Chain and subsystem configuration never defaults here; it
// comes from the config file (or the embedded sample) so that every
// consensus-relevant value has exactly one source.
func defaultConfig() Config {
	return Config{
		Node: NodeConfig{
			DataDir: filepath.Join(guessHomeDir(), ".meridian"),
			Name:    "go-meridian",
			Logging: LoggingConfig{
				Verbosity: 3,
				Format:    "text",
			},
		},
	}
}
