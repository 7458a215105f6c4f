// Package config turns the raw hierarchical configuration source into the
// typed, validated value graph every node subsystem is parametrized with.
//
// Loading is single-pass and all-or-nothing: either every group constructs
// and validates, or Load returns the first error (naming the offending key
// and constraint) and the process must not start. The resulting Root is
// immutable after construction and safe to share by reference across any
// number of readers.
package config

import (
	"github.com/pelletier/go-toml"

	"github.com/meridianchain/go-meridian/meridian"
)

// AppNamespace is the top-level table every recognized group lives under.
const AppNamespace = "meridian"

// Root is the process-wide configuration aggregate, built exactly once at
// startup and handed to each subsystem by reference.
type Root struct {
	Network    NetworkConfig
	Sync       SyncConfig
	Db         DbConfig
	Filter     FilterConfig
	TxPool     TxPoolConfig
	Mining     MiningConfig
	Pruning    PruningConfig
	Blockchain meridian.BlockchainConfig
}

// Load reads and assembles the configuration file at path.
func Load(path string) (*Root, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromTree(tree)
}

// Parse assembles configuration from in-memory text. Used for the embedded
// defaults and in tests.
func Parse(text string) (*Root, error) {
	tree, err := toml.Load(text)
	if err != nil {
		return nil, err
	}
	return FromTree(tree)
}

// FromTree builds the full aggregate from one parsed tree. Two calls over
// the same tree yield equal value graphs.
func FromTree(tree *toml.Tree) (*Root, error) {
	app, err := NewNode(tree, "").RequiredSub(AppNamespace)
	if err != nil {
		return nil, err
	}

	var root Root

	network, err := app.RequiredSub("network")
	if err != nil {
		return nil, err
	}
	if root.Network, err = newNetworkConfig(network); err != nil {
		return nil, err
	}

	sync, err := app.RequiredSub("sync")
	if err != nil {
		return nil, err
	}
	if root.Sync, err = newSyncConfig(sync); err != nil {
		return nil, err
	}

	db, err := app.RequiredSub("db")
	if err != nil {
		return nil, err
	}
	if root.Db, err = newDbConfig(db); err != nil {
		return nil, err
	}

	filter, err := app.RequiredSub("filter")
	if err != nil {
		return nil, err
	}
	if root.Filter, err = newFilterConfig(filter); err != nil {
		return nil, err
	}

	txPool, err := app.RequiredSub("txPool")
	if err != nil {
		return nil, err
	}
	if root.TxPool, err = newTxPoolConfig(txPool); err != nil {
		return nil, err
	}

	mining, err := app.RequiredSub("mining")
	if err != nil {
		return nil, err
	}
	if root.Mining, err = newMiningConfig(mining); err != nil {
		return nil, err
	}

	pruning, err := app.RequiredSub("pruning")
	if err != nil {
		return nil, err
	}
	if root.Pruning, err = newPruningConfig(pruning); err != nil {
		return nil, err
	}

	blockchain, err := app.RequiredSub("blockchain")
	if err != nil {
		return nil, err
	}
	if root.Blockchain, err = newBlockchainConfig(blockchain); err != nil {
		return nil, err
	}

	return &root, nil
}
