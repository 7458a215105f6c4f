package config

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/meridianchain/go-meridian/meridian"
)

var maxChainIDBig = big.NewInt(meridian.MaxChainID)

// newBlockchainConfig builds the fork-activation schedule. Every threshold is
// required: a silently-defaulted threshold would make the node apply the
// wrong consensus rules at the wrong height, which surfaces only as a chain
// split. Absence is therefore a startup failure, never a default.
func newBlockchainConfig(n Node) (meridian.BlockchainConfig, error) {
	var cfg meridian.BlockchainConfig
	var err error

	if cfg.FrontierBlockNumber, err = n.RequiredBigInt("frontier-block-number"); err != nil {
		return cfg, err
	}
	if cfg.HomesteadBlockNumber, err = n.RequiredBigInt("homestead-block-number"); err != nil {
		return cfg, err
	}
	if cfg.EIP106BlockNumber, err = n.RequiredBigInt("eip106-block-number"); err != nil {
		return cfg, err
	}
	if cfg.EIP150BlockNumber, err = n.RequiredBigInt("eip150-block-number"); err != nil {
		return cfg, err
	}
	if cfg.EIP155BlockNumber, err = n.RequiredBigInt("eip155-block-number"); err != nil {
		return cfg, err
	}
	if cfg.EIP160BlockNumber, err = n.RequiredBigInt("eip160-block-number"); err != nil {
		return cfg, err
	}
	if cfg.EIP161BlockNumber, err = n.RequiredBigInt("eip161-block-number"); err != nil {
		return cfg, err
	}
	if cfg.DifficultyBombPauseBlockNumber, err = n.RequiredBigInt("difficulty-bomb-pause-block-number"); err != nil {
		return cfg, err
	}
	if cfg.DifficultyBombContinueBlockNumber, err = n.RequiredBigInt("difficulty-bomb-continue-block-number"); err != nil {
		return cfg, err
	}

	chainID, err := n.RequiredBigInt("chain-id")
	if err != nil {
		return cfg, err
	}
	if chainID.Sign() < 0 || chainID.Cmp(maxChainIDBig) > 0 {
		return cfg, fmt.Errorf("config key %s: chain id %s outside [0, %d]",
			n.fullKey("chain-id"), chainID, meridian.MaxChainID)
	}
	cfg.ChainID = byte(chainID.Uint64())

	nonce, err := n.RequiredBigInt("account-start-nonce")
	if err != nil {
		return cfg, err
	}
	if !nonce.IsUint64() {
		return cfg, fmt.Errorf("config key %s: nonce %s does not fit uint64",
			n.fullKey("account-start-nonce"), nonce)
	}
	cfg.AccountStartNonce = nonce.Uint64()

	if cfg.GasTieBreaker, err = n.RequiredBool("gas-tie-breaker"); err != nil {
		return cfg, err
	}

	cfg.MaxCodeSize, _ = n.OptionalBigInt("max-code-size")
	cfg.CustomGenesisFile, _ = n.OptionalString("custom-genesis-file")

	mp, err := n.RequiredSub("monetary-policy")
	if err != nil {
		return cfg, err
	}
	if cfg.Monetary, err = newMonetaryPolicyConfig(mp); err != nil {
		return cfg, err
	}

	// The dao namespace is optional as a whole; once present, its required
	// fields fail the load like any other.
	if dao, ok := n.OptionalSub("dao"); ok {
		fork, err := newDaoForkConfig(dao)
		if err != nil {
			return cfg, err
		}
		cfg.DaoFork = fork
	}
	return cfg, nil
}

func newMonetaryPolicyConfig(n Node) (meridian.MonetaryPolicyConfig, error) {
	eraDuration, err := n.RequiredUint64("era-duration")
	if err != nil {
		return meridian.MonetaryPolicyConfig{}, err
	}
	rate, err := n.RequiredFloat("reward-reduction-rate")
	if err != nil {
		return meridian.MonetaryPolicyConfig{}, err
	}
	firstReward, err := n.RequiredBigInt("first-era-block-reward")
	if err != nil {
		return meridian.MonetaryPolicyConfig{}, err
	}
	mp, err := meridian.NewMonetaryPolicyConfig(eraDuration, rate, firstReward)
	if err != nil {
		return meridian.MonetaryPolicyConfig{}, fmt.Errorf("config key %s: %v", n.fullKey("reward-reduction-rate"), err)
	}
	return mp, nil
}

func newDaoForkConfig(n Node) (*meridian.DaoForkConfig, error) {
	var cfg meridian.DaoForkConfig
	var err error

	if cfg.ForkBlockNumber, err = n.RequiredBigInt("fork-block-number"); err != nil {
		return nil, err
	}
	hash, err := n.RequiredString("fork-block-hash")
	if err != nil {
		return nil, err
	}
	hashBytes, err := hexutil.Decode(hash)
	if err != nil || len(hashBytes) != common.HashLength {
		return nil, fmt.Errorf("config key %s: %q is not a 32-byte hash", n.fullKey("fork-block-hash"), hash)
	}
	cfg.ForkBlockHash = common.BytesToHash(hashBytes)

	// The remaining fields keep the historical optional contract: a value
	// that is missing or fails to parse reads as "not set". An operator typo
	// here silently disables the window; the Try* tier exists for callers
	// that want to distinguish.
	if extra, ok := n.OptionalString("block-extra-data"); ok {
		if data, err := hexutil.Decode(extra); err == nil {
			cfg.BlockExtraData = data
		}
	}
	cfg.Range, _ = n.OptionalUint64("block-extra-data-range")
	if refund, ok := n.OptionalString("refund-contract-address"); ok && common.IsHexAddress(refund) {
		addr := common.HexToAddress(refund)
		cfg.RefundContract = &addr
	}
	if drains, ok := n.OptionalStringList("drain-list"); ok {
		list := make([]common.Address, 0, len(drains))
		for _, d := range drains {
			if !common.IsHexAddress(d) {
				// One bad entry voids the list, matching the all-or-none
				// optional semantics.
				list = nil
				break
			}
			list = append(list, common.HexToAddress(d))
		}
		cfg.DrainList = list
	}
	return &cfg, nil
}
