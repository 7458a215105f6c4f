package config

import "time"

// SyncConfig tunes the block synchronizer: scan/retry cadence, request batch
// sizes and target-block selection.
type SyncConfig struct {
	DoFastSync               bool
	PeersScanInterval        time.Duration
	BlacklistDuration        time.Duration
	StartRetryInterval       time.Duration
	SyncRetryInterval        time.Duration
	PeerResponseTimeout      time.Duration
	PrintStatusInterval      time.Duration
	CheckForNewBlockInterval time.Duration

	MaxConcurrentRequests       int
	BlockHeadersPerRequest      int
	BlockBodiesPerRequest       int
	ReceiptsPerRequest          int
	NodesPerRequest             int
	MinPeersToChooseTargetBlock int
	TargetBlockOffset           int
	BlockResolvingDepth         int
}

func newSyncConfig(n Node) (SyncConfig, error) {
	var cfg SyncConfig
	var err error
	if cfg.DoFastSync, err = n.RequiredBool("do-fast-sync"); err != nil {
		return cfg, err
	}
	if cfg.PeersScanInterval, err = n.RequiredDuration("peers-scan-interval"); err != nil {
		return cfg, err
	}
	if cfg.BlacklistDuration, err = n.RequiredDuration("blacklist-duration"); err != nil {
		return cfg, err
	}
	if cfg.StartRetryInterval, err = n.RequiredDuration("start-retry-interval"); err != nil {
		return cfg, err
	}
	if cfg.SyncRetryInterval, err = n.RequiredDuration("sync-retry-interval"); err != nil {
		return cfg, err
	}
	if cfg.PeerResponseTimeout, err = n.RequiredDuration("peer-response-timeout"); err != nil {
		return cfg, err
	}
	if cfg.PrintStatusInterval, err = n.RequiredDuration("print-status-interval"); err != nil {
		return cfg, err
	}
	if cfg.CheckForNewBlockInterval, err = n.RequiredDuration("check-for-new-block-interval"); err != nil {
		return cfg, err
	}
	if cfg.MaxConcurrentRequests, err = n.RequiredInt("max-concurrent-requests"); err != nil {
		return cfg, err
	}
	if cfg.BlockHeadersPerRequest, err = n.RequiredInt("block-headers-per-request"); err != nil {
		return cfg, err
	}
	if cfg.BlockBodiesPerRequest, err = n.RequiredInt("block-bodies-per-request"); err != nil {
		return cfg, err
	}
	if cfg.ReceiptsPerRequest, err = n.RequiredInt("receipts-per-request"); err != nil {
		return cfg, err
	}
	if cfg.NodesPerRequest, err = n.RequiredInt("nodes-per-request"); err != nil {
		return cfg, err
	}
	if cfg.MinPeersToChooseTargetBlock, err = n.RequiredInt("min-peers-to-choose-target-block"); err != nil {
		return cfg, err
	}
	if cfg.TargetBlockOffset, err = n.RequiredInt("target-block-offset"); err != nil {
		return cfg, err
	}
	if cfg.BlockResolvingDepth, err = n.RequiredInt("block-resolving-depth"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
