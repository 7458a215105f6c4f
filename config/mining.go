package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// maxHeaderExtraData bounds the miner's self-chosen header extra-data, same
// limit the header validation rules enforce.
const maxHeaderExtraData = 32

// MiningConfig parametrizes block building: the reward recipient, the vanity
// extra-data stamped on mined headers, and ommer handling.
type MiningConfig struct {
	Coinbase        common.Address
	HeaderExtraData []byte
	OmmersPoolSize  int
	BlockCacheSize  int

	ActiveTimeout         time.Duration
	OmmerPoolQueryTimeout time.Duration
}

func newMiningConfig(n Node) (MiningConfig, error) {
	var cfg MiningConfig
	var err error

	coinbase, err := n.RequiredString("coinbase")
	if err != nil {
		return cfg, err
	}
	if !common.IsHexAddress(coinbase) {
		return cfg, fmt.Errorf("config key %s: %q is not a valid address", n.fullKey("coinbase"), coinbase)
	}
	cfg.Coinbase = common.HexToAddress(coinbase)

	if extra, ok := n.OptionalString("header-extra-data"); ok {
		data, err := hexutil.Decode(extra)
		if err != nil {
			return cfg, fmt.Errorf("config key %s: %v", n.fullKey("header-extra-data"), err)
		}
		if len(data) > maxHeaderExtraData {
			return cfg, fmt.Errorf("config key %s: %d bytes exceeds the %d byte header limit",
				n.fullKey("header-extra-data"), len(data), maxHeaderExtraData)
		}
		cfg.HeaderExtraData = data
	}

	if cfg.OmmersPoolSize, err = n.RequiredInt("ommers-pool-size"); err != nil {
		return cfg, err
	}
	if cfg.BlockCacheSize, err = n.RequiredInt("block-cache-size"); err != nil {
		return cfg, err
	}
	if cfg.ActiveTimeout, err = n.RequiredDuration("active-timeout"); err != nil {
		return cfg, err
	}
	if cfg.OmmerPoolQueryTimeout, err = n.RequiredDuration("ommer-pool-query-timeout"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
