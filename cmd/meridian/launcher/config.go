package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/meridianchain/go-meridian/config"
	"github.com/meridianchain/go-meridian/integration"
	"github.com/meridianchain/go-meridian/meridian"
	"github.com/meridianchain/go-meridian/sampleconfig"
)

// Config aggregates everything the launcher hands to the node: local
// instance settings plus the immutable configuration root every subsystem
// reads by reference.
type Config struct {
	Node NodeConfig
	Root *config.Root
}

// NodeConfig covers the local instance only; nothing here affects consensus.
type NodeConfig struct {
	DataDir string
	Name    string
	Logging LoggingConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

// MakeAllConfigs assembles the full configuration: embedded defaults or the
// operator's config file, then the chain preset, then CLI flag overrides.
// The root it returns is constructed exactly once; after this call nothing
// mutates it.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	var root *config.Root
	var err error
	if file := ctx.GlobalString("config"); file != "" {
		root, err = config.Load(resolvePath(file))
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	} else {
		root, err = config.Parse(sampleconfig.FileContents)
		if err != nil {
			return Config{}, fmt.Errorf("embedded default config: %w", err)
		}
	}
	cfg.Root = root

	if chain := ctx.GlobalString("chain"); chain != "" {
		switch chain {
		case "main":
			root.Blockchain = meridian.MainNetConfig()
		case "test":
			root.Blockchain = meridian.TestNetConfig()
		default:
			return Config{}, fmt.Errorf("unknown chain %q (valid: main, test)", chain)
		}
	}

	if name := ctx.GlobalString("preset"); name != "" {
		preset, err := integration.ByName(name)
		if err != nil {
			return Config{}, err
		}
		preset.Apply(root)
	}

	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	if ctx.GlobalIsSet("datadir") {
		cfg.Node.DataDir = resolvePath(ctx.GlobalString("datadir"))
	}
	if ctx.GlobalIsSet("identity") {
		cfg.Node.Name = ctx.GlobalString("identity")
	}
	if ctx.GlobalIsSet("log.format") {
		cfg.Node.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Node.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Node.Logging.Color = ctx.GlobalBool("log.color")
	}
	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Node.Logging.SentryDSN = ctx.GlobalString("sentry.dsn")
	}

	root := cfg.Root
	if ctx.GlobalIsSet("port") {
		root.Network.Port = ctx.GlobalInt("port")
	}
	if ctx.GlobalIsSet("maxpeers") {
		root.Network.Peer.MaxPeers = ctx.GlobalInt("maxpeers")
	}
	if ctx.GlobalBool("rpc") {
		root.Network.Rpc.Enabled = true
	}
	if ctx.GlobalIsSet("rpc.addr") {
		root.Network.Rpc.Interface = ctx.GlobalString("rpc.addr")
	}
	if ctx.GlobalIsSet("rpc.port") {
		root.Network.Rpc.Port = ctx.GlobalInt("rpc.port")
	}
	if ctx.GlobalIsSet("rpc.api") {
		apis := splitCSV(ctx.GlobalString("rpc.api"))
		if err := config.ValidateRPCApis(apis); err != nil {
			return err
		}
		root.Network.Rpc.Apis = apis
	}
	if ctx.GlobalIsSet("txpool.size") {
		root.TxPool.TxPoolSize = ctx.GlobalInt("txpool.size")
	}
	if ctx.GlobalIsSet("pruning") {
		pruning, err := config.NewPruningConfig(
			ctx.GlobalString("pruning"), ctx.GlobalUint64("pruning.history"))
		if err != nil {
			return err
		}
		root.Pruning = pruning
	}
	if ctx.GlobalIsSet("genesis") {
		root.Blockchain.CustomGenesisFile = resolvePath(ctx.GlobalString("genesis"))
	}
	return nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(guessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	return p
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func guessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
