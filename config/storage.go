package config

import (
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// DbConfig selects and tunes the storage backends. Both stores are
// configured even though a node only opens one of them; which one is a
// deployment decision made outside this layer.
type DbConfig struct {
	Iodb    IodbConfig
	LevelDb LevelDbConfig
}

type IodbConfig struct {
	Path string
}

type LevelDbConfig struct {
	CreateIfMissing bool
	ParanoidChecks  bool
	VerifyChecksums bool
	Path            string
}

// Options translates the group into the options handed to goleveldb when the
// node opens the chain database.
func (c LevelDbConfig) Options() *opt.Options {
	o := &opt.Options{
		ErrorIfMissing: !c.CreateIfMissing,
	}
	if c.ParanoidChecks {
		o.Strict = opt.StrictAll
	} else if c.VerifyChecksums {
		o.Strict = opt.DefaultStrict | opt.StrictBlockChecksum | opt.StrictJournalChecksum
	}
	return o
}

func newDbConfig(n Node) (DbConfig, error) {
	var cfg DbConfig
	var err error

	iodb, err := n.RequiredSub("iodb")
	if err != nil {
		return cfg, err
	}
	if cfg.Iodb.Path, err = iodb.RequiredString("path"); err != nil {
		return cfg, err
	}

	ldb, err := n.RequiredSub("leveldb")
	if err != nil {
		return cfg, err
	}
	if cfg.LevelDb.CreateIfMissing, err = ldb.RequiredBool("create-if-missing"); err != nil {
		return cfg, err
	}
	if cfg.LevelDb.ParanoidChecks, err = ldb.RequiredBool("paranoid-checks"); err != nil {
		return cfg, err
	}
	if cfg.LevelDb.VerifyChecksums, err = ldb.RequiredBool("verify-checksums"); err != nil {
		return cfg, err
	}
	if cfg.LevelDb.Path, err = ldb.RequiredString("path"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
