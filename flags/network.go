package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NetworkFlags covers P2P and RPC endpoint configuration.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "port",
			Usage: "P2P networking port",
		},
		cli.IntFlag{
			Name:  "maxpeers",
			Usage: "Maximum number of peer connections",
		},
		cli.BoolFlag{
			Name:  "rpc",
			Usage: "Enable the HTTP JSON-RPC server",
		},
		cli.StringFlag{
			Name:  "rpc.addr",
			Usage: "JSON-RPC server listening interface",
		},
		cli.IntFlag{
			Name:  "rpc.port",
			Usage: "JSON-RPC server listening port",
		},
		cli.StringFlag{
			Name:  "rpc.api",
			Usage: "Comma-separated list of RPC APIs to enable (eth,web3,net,personal,daedalus)",
		},
	}
}

// TxPoolFlags isolates transaction-pool tuning knobs.
func TxPoolFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "txpool.size",
			Usage: "Maximum number of transactions held in the pool",
		},
	}
}
