// Package meridian defines the protocol rules and chain parameters for the
// Meridian network.
//
// This package provides:
//   - BlockchainConfig: the fork-activation schedule (block-number thresholds
//     at which consensus rules change) plus chain identity
//   - DaoForkConfig: the one-time DAO hard-fork descriptor and its
//     extra-data activation-window predicates
//   - MonetaryPolicyConfig: the era-based block-reward schedule
//   - Named presets for the public networks (MainNetConfig, TestNetConfig)
//
// Everything here is an immutable value: constructed once at startup from the
// raw configuration source and shared read-only across all subsystems.
package meridian

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MaxChainID bounds the chain identifier. The replay-protection scheme
// encodes it into a single signed byte, so valid values are [0, 127].
const MaxChainID = 127

// BlockchainConfig is the protocol-rules-by-height model: each threshold is
// the first block number at which the named rule set applies.
//
// No ordering is enforced across the thresholds. Operators author these
// values and the historical loader never validated their relative order;
// a misordered schedule is therefore accepted here as well.
type BlockchainConfig struct {
	// Fork-activation thresholds, arbitrary precision. A threshold far
	// beyond any reachable height effectively disables its rules.
	FrontierBlockNumber               *big.Int
	HomesteadBlockNumber              *big.Int
	EIP106BlockNumber                 *big.Int
	EIP150BlockNumber                 *big.Int
	EIP155BlockNumber                 *big.Int
	EIP160BlockNumber                 *big.Int
	EIP161BlockNumber                 *big.Int
	DifficultyBombPauseBlockNumber    *big.Int
	DifficultyBombContinueBlockNumber *big.Int

	// MaxCodeSize caps deployed contract code once set; nil disables the cap.
	MaxCodeSize *big.Int

	// CustomGenesisFile optionally points at a JSON genesis description;
	// empty means the built-in genesis for this network.
	CustomGenesisFile string

	// DaoFork is nil for chains without a DAO fork in their history.
	DaoFork *DaoForkConfig

	AccountStartNonce uint64

	// ChainID distinguishes this network for replay protection, [0, MaxChainID].
	ChainID byte

	Monetary MonetaryPolicyConfig

	// GasTieBreaker selects gas price as the tie-break when ordering
	// otherwise equal transactions.
	GasTieBreaker bool
}

// MonetaryPolicyConfig describes the block-reward schedule: rewards stay
// constant for EraDuration blocks, then drop by RewardReductionRate for the
// next era (reward = first * (1-rate)^era).
type MonetaryPolicyConfig struct {
	EraDuration         uint64
	RewardReductionRate float64
	FirstEraBlockReward *big.Int
}

// NewMonetaryPolicyConfig validates the reduction rate at construction.
// A rate outside [0.0, 1.0] would mint or destroy value out of schedule, so
// it fails the whole load rather than being clamped.
func NewMonetaryPolicyConfig(eraDuration uint64, rate float64, firstReward *big.Int) (MonetaryPolicyConfig, error) {
	if rate < 0.0 || rate > 1.0 {
		return MonetaryPolicyConfig{}, fmt.Errorf("reward-reduction-rate %v outside [0.0, 1.0]", rate)
	}
	return MonetaryPolicyConfig{
		EraDuration:         eraDuration,
		RewardReductionRate: rate,
		FirstEraBlockReward: firstReward,
	}, nil
}

// MainNetConfig returns the protocol schedule for the Meridian mainnet.
// The chain keeps the classic history: the DAO fork block is recognized and
// block validation checks the pro-fork extra-data marker over a ten-block
// window after it.
func MainNetConfig() BlockchainConfig {
	refund := common.HexToAddress("0xbf4ed7b27f1d666546e30d74d50d173d20bca754")
	return BlockchainConfig{
		FrontierBlockNumber:               big.NewInt(0),
		HomesteadBlockNumber:              big.NewInt(1150000),
		EIP106BlockNumber:                 newBig("1000000000000000000000000000000"), // scheduled far out, effectively off
		EIP150BlockNumber:                 big.NewInt(2500000),
		EIP155BlockNumber:                 big.NewInt(3000000),
		EIP160BlockNumber:                 big.NewInt(3000000),
		EIP161BlockNumber:                 newBig("1000000000000000000000000000000"),
		DifficultyBombPauseBlockNumber:    big.NewInt(3000000),
		DifficultyBombContinueBlockNumber: big.NewInt(5000000),
		DaoFork: &DaoForkConfig{
			ForkBlockNumber: big.NewInt(1920000),
			ForkBlockHash:   common.HexToHash("0x94365e3a8c0b35089c1d1195081fe7489b528a84b22199c916180db8b28ade7f"),
			BlockExtraData:  []byte("dao-hard-fork"),
			Range:           10,
			RefundContract:  &refund,
		},
		AccountStartNonce: 0,
		ChainID:           61,
		Monetary: MonetaryPolicyConfig{
			EraDuration:         5000000,
			RewardReductionRate: 0.2,
			FirstEraBlockReward: newBig("5000000000000000000"),
		},
		GasTieBreaker: false,
	}
}

// TestNetConfig returns the protocol schedule for the public test network.
// The testnet never carried the extra-data window (Range 0), only the fork
// block itself.
func TestNetConfig() BlockchainConfig {
	return BlockchainConfig{
		FrontierBlockNumber:               big.NewInt(0),
		HomesteadBlockNumber:              big.NewInt(494000),
		EIP106BlockNumber:                 newBig("1000000000000000000000000000000"),
		EIP150BlockNumber:                 big.NewInt(1783000),
		EIP155BlockNumber:                 big.NewInt(1915000),
		EIP160BlockNumber:                 big.NewInt(1915000),
		EIP161BlockNumber:                 newBig("1000000000000000000000000000000"),
		DifficultyBombPauseBlockNumber:    big.NewInt(1915000),
		DifficultyBombContinueBlockNumber: big.NewInt(3415000),
		DaoFork: &DaoForkConfig{
			ForkBlockNumber: big.NewInt(1885000),
			ForkBlockHash:   common.HexToHash("0x3bef9997340acebc85b84948d849ceeff74384ddf512a20676d424e972a3c3c4"),
		},
		// Testnet accounts start above 2^20 so replayed mainnet
		// transactions never match a testnet nonce.
		AccountStartNonce: 1 << 20,
		ChainID:           62,
		Monetary: MonetaryPolicyConfig{
			EraDuration:         5000000,
			RewardReductionRate: 0.2,
			FirstEraBlockReward: newBig("5000000000000000000"),
		},
		GasTieBreaker: false,
	}
}

// Copy creates a deep copy. BlockchainConfig carries *big.Int fields that a
// shallow copy would share.
func (c BlockchainConfig) Copy() BlockchainConfig {
	cp := c
	cp.FrontierBlockNumber = copyBig(c.FrontierBlockNumber)
	cp.HomesteadBlockNumber = copyBig(c.HomesteadBlockNumber)
	cp.EIP106BlockNumber = copyBig(c.EIP106BlockNumber)
	cp.EIP150BlockNumber = copyBig(c.EIP150BlockNumber)
	cp.EIP155BlockNumber = copyBig(c.EIP155BlockNumber)
	cp.EIP160BlockNumber = copyBig(c.EIP160BlockNumber)
	cp.EIP161BlockNumber = copyBig(c.EIP161BlockNumber)
	cp.DifficultyBombPauseBlockNumber = copyBig(c.DifficultyBombPauseBlockNumber)
	cp.DifficultyBombContinueBlockNumber = copyBig(c.DifficultyBombContinueBlockNumber)
	cp.MaxCodeSize = copyBig(c.MaxCodeSize)
	cp.Monetary.FirstEraBlockReward = copyBig(c.Monetary.FirstEraBlockReward)
	if c.DaoFork != nil {
		dao := c.DaoFork.Copy()
		cp.DaoFork = &dao
	}
	return cp
}

// String returns a JSON rendering for logs and config dumps.
func (c BlockchainConfig) String() string {
	b, _ := json.Marshal(&c)
	return string(b)
}

func copyBig(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

func newBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("meridian: bad numeric literal " + s)
	}
	return n
}
