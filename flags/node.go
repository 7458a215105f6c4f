package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NodeFlags holds knobs specific to the local node instance (identity,
// storage and pruning behaviour).
func NodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "identity",
			Usage: "Custom node name to advertise over the network",
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Resource profile (lite|full|archive)",
		},
		cli.StringFlag{
			Name:  "pruning",
			Usage: "State pruning mode (archive|basic)",
		},
		cli.Uint64Flag{
			Name:  "pruning.history",
			Usage: "Number of recent states retained in basic pruning mode",
		},
		cli.StringFlag{
			Name:  "genesis",
			Usage: "Custom genesis JSON file overriding the built-in genesis",
		},
	}
}
