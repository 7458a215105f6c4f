package launcher

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/meridianchain/go-meridian/flags"
	"github.com/meridianchain/go-meridian/meridian/genesis"
)

func makeApp() *cli.App {
	app := flags.NewApp()
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.NetworkFlags()...)
	app.Flags = append(app.Flags, flags.TxPoolFlags()...)
	app.Flags = append(app.Flags, flags.NodeFlags()...)
	app.Action = run
	return app
}

// Launch parses flags, assembles the immutable configuration and starts the
// node with it.
func Launch(args []string) error {
	return makeApp().Run(args)
}

func run(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Node.Logging); err != nil {
		return err
	}

	bc := cfg.Root.Blockchain
	log := logrus.WithFields(logrus.Fields{
		"node":    cfg.Node.Name,
		"datadir": cfg.Node.DataDir,
	})
	log.WithFields(logrus.Fields{
		"chainId": bc.ChainID,
		"network": cfg.Root.Network.Peer.NetworkID,
		"pruning": cfg.Root.Pruning.Mode,
	}).Info("configuration loaded")
	if bc.DaoFork != nil {
		log.WithFields(logrus.Fields{
			"block": bc.DaoFork.ForkBlockNumber,
			"hash":  bc.DaoFork.ForkBlockHash,
			"range": bc.DaoFork.Range,
		}).Info("dao fork scheduled")
	}

	if bc.CustomGenesisFile != "" {
		gen, err := genesis.Load(bc.CustomGenesisFile)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"difficulty": gen.Difficulty,
			"accounts":   len(gen.Alloc),
		}).Info("custom genesis loaded")
	}

	// Storage options are derived here and handed to the store as values.
	dbOpts := cfg.Root.Db.LevelDb.Options()
	log.WithFields(logrus.Fields{
		"path":           cfg.Root.Db.LevelDb.Path,
		"errorIfMissing": dbOpts.ErrorIfMissing,
	}).Debug("chain database options resolved")

	return startNode(cfg)
}

// startNode hands the finished configuration to the runtime stack. The
// config root is shared by reference from here on and never written again.
func startNode(cfg Config) error {
	logrus.WithField("rpc", cfg.Root.Network.Rpc.Enabled).Info("node services starting")
	return nil
}
