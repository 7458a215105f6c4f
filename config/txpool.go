package config

import (
	"fmt"
	"time"
)

// TxPoolConfig limits the transaction pool and its query latency.
type TxPoolConfig struct {
	TxPoolSize                   int
	PendingTxManagerQueryTimeout time.Duration
	TransactionTimeout           time.Duration
}

// FilterConfig tunes installed log/block filters.
type FilterConfig struct {
	FilterTTL                 time.Duration
	FilterManagerQueryTimeout time.Duration
}

func newTxPoolConfig(n Node) (TxPoolConfig, error) {
	var cfg TxPoolConfig
	var err error
	if cfg.TxPoolSize, err = n.RequiredInt("tx-pool-size"); err != nil {
		return cfg, err
	}
	if cfg.TxPoolSize <= 0 {
		return cfg, fmt.Errorf("config key %s: pool size %d must be positive", n.fullKey("tx-pool-size"), cfg.TxPoolSize)
	}
	if cfg.PendingTxManagerQueryTimeout, err = n.RequiredDuration("pending-tx-manager-query-timeout"); err != nil {
		return cfg, err
	}
	if cfg.TransactionTimeout, err = n.RequiredDuration("transaction-timeout"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newFilterConfig(n Node) (FilterConfig, error) {
	var cfg FilterConfig
	var err error
	if cfg.FilterTTL, err = n.RequiredDuration("filter-ttl"); err != nil {
		return cfg, err
	}
	if cfg.FilterManagerQueryTimeout, err = n.RequiredDuration("filter-manager-query-timeout"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
