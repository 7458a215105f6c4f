package meridian

import (
	"math/big"
	"strings"
	"testing"
)

func TestMainNetConfig(t *testing.T) {
	cfg := MainNetConfig()

	if cfg.ChainID != 61 {
		t.Errorf("ChainID = %d, want 61", cfg.ChainID)
	}
	if cfg.HomesteadBlockNumber.Int64() != 1150000 {
		t.Errorf("HomesteadBlockNumber = %s", cfg.HomesteadBlockNumber)
	}
	if cfg.AccountStartNonce != 0 {
		t.Errorf("AccountStartNonce = %d, want 0", cfg.AccountStartNonce)
	}
	if cfg.DaoFork == nil {
		t.Fatal("mainnet must carry the DAO fork")
	}
	if cfg.DaoFork.ForkBlockNumber.Int64() != 1920000 {
		t.Errorf("DAO fork block = %s", cfg.DaoFork.ForkBlockNumber)
	}
	if string(cfg.DaoFork.BlockExtraData) != "dao-hard-fork" {
		t.Errorf("DAO extra data = %q", cfg.DaoFork.BlockExtraData)
	}
	if cfg.DaoFork.Range != 10 {
		t.Errorf("DAO window range = %d, want 10", cfg.DaoFork.Range)
	}
	if cfg.Monetary.EraDuration != 5000000 {
		t.Errorf("EraDuration = %d", cfg.Monetary.EraDuration)
	}
	if cfg.Monetary.RewardReductionRate != 0.2 {
		t.Errorf("RewardReductionRate = %v", cfg.Monetary.RewardReductionRate)
	}
}

func TestTestNetConfig(t *testing.T) {
	cfg := TestNetConfig()

	if cfg.ChainID != 62 {
		t.Errorf("ChainID = %d, want 62", cfg.ChainID)
	}
	if cfg.AccountStartNonce != 1<<20 {
		t.Errorf("AccountStartNonce = %d, want %d", cfg.AccountStartNonce, 1<<20)
	}
	if cfg.DaoFork == nil {
		t.Fatal("testnet must carry the DAO fork block")
	}
	if cfg.DaoFork.Range != 0 {
		t.Errorf("testnet DAO range = %d, want 0", cfg.DaoFork.Range)
	}
	if len(cfg.DaoFork.BlockExtraData) != 0 {
		t.Errorf("testnet DAO extra data = %q, want none", cfg.DaoFork.BlockExtraData)
	}
}

func TestNewMonetaryPolicyConfig(t *testing.T) {
	reward := big.NewInt(5000000000000000000)

	for _, rate := range []float64{0.0, 0.2, 1.0} {
		mp, err := NewMonetaryPolicyConfig(5000000, rate, reward)
		if err != nil {
			t.Errorf("rate %v rejected: %v", rate, err)
			continue
		}
		if mp.RewardReductionRate != rate {
			t.Errorf("rate %v stored as %v", rate, mp.RewardReductionRate)
		}
	}

	for _, rate := range []float64{-0.1, 1.0001, 2.0} {
		if _, err := NewMonetaryPolicyConfig(5000000, rate, reward); err == nil {
			t.Errorf("rate %v accepted", rate)
		}
	}
}

func TestBlockchainConfigCopy(t *testing.T) {
	orig := MainNetConfig()
	cp := orig.Copy()

	cp.HomesteadBlockNumber.SetInt64(1)
	cp.Monetary.FirstEraBlockReward.SetInt64(1)
	cp.DaoFork.ForkBlockNumber.SetInt64(1)

	if orig.HomesteadBlockNumber.Int64() != 1150000 {
		t.Error("copy shares HomesteadBlockNumber")
	}
	if orig.Monetary.FirstEraBlockReward.Int64() != 5000000000000000000 {
		t.Error("copy shares FirstEraBlockReward")
	}
	if orig.DaoFork.ForkBlockNumber.Int64() != 1920000 {
		t.Error("copy shares DaoFork")
	}
}

func TestBlockchainConfigString(t *testing.T) {
	s := MainNetConfig().String()
	if !strings.Contains(s, "1150000") {
		t.Errorf("String() rendering misses the fork schedule: %s", s)
	}
}
