package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const blockchainStanza = `
frontier-block-number = 0
homestead-block-number = 1150000
eip106-block-number = "1000000000000000000000000000000"
eip150-block-number = 2500000
eip155-block-number = 3000000
eip160-block-number = 3000000
eip161-block-number = "1000000000000000000000000000000"
difficulty-bomb-pause-block-number = 3000000
difficulty-bomb-continue-block-number = 5000000
chain-id = %s
account-start-nonce = "0x0"
gas-tie-breaker = false
[monetary-policy]
era-duration = 5000000
reward-reduction-rate = %s
first-era-block-reward = "0x4563918244f40000"
`

func blockchainNode(t *testing.T, chainID, rate string, extra string) Node {
	t.Helper()
	return mustNode(t, fmt.Sprintf(blockchainStanza, chainID, rate)+extra)
}

func TestNewBlockchainConfig(t *testing.T) {
	cfg, err := newBlockchainConfig(blockchainNode(t, `"0x3d"`, "0.2", ""))
	require.NoError(t, err)

	require.EqualValues(t, 61, cfg.ChainID)
	require.EqualValues(t, 1150000, cfg.HomesteadBlockNumber.Int64())
	require.Equal(t, "1000000000000000000000000000000", cfg.EIP161BlockNumber.String())
	require.EqualValues(t, 0, cfg.AccountStartNonce)
	require.False(t, cfg.GasTieBreaker)
	require.Nil(t, cfg.DaoFork)
	require.Nil(t, cfg.MaxCodeSize)
	require.EqualValues(t, 5000000, cfg.Monetary.EraDuration)
	require.Equal(t, 0.2, cfg.Monetary.RewardReductionRate)
	require.Equal(t, "5000000000000000000", cfg.Monetary.FirstEraBlockReward.String())
}

func TestNewBlockchainConfigChainIDRange(t *testing.T) {
	tests := []struct {
		chainID string
		ok      bool
	}{
		{"0", true},
		{"127", true},
		{"128", false},
		{"-1", false},
		{`"0x80"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.chainID, func(t *testing.T) {
			cfg, err := newBlockchainConfig(blockchainNode(t, tt.chainID, "0.2", ""))
			if !tt.ok {
				require.Error(t, err)
				require.Contains(t, err.Error(), "chain-id")
				return
			}
			require.NoError(t, err)
			require.NotZero(t, cfg.HomesteadBlockNumber)
		})
	}
}

func TestNewBlockchainConfigMissingThresholdFails(t *testing.T) {
	node := mustNode(t, strings.Replace(
		fmt.Sprintf(blockchainStanza, "61", "0.2"),
		"eip155-block-number = 3000000\n", "", 1))
	_, err := newBlockchainConfig(node)
	require.Error(t, err)
	require.Contains(t, err.Error(), "eip155-block-number")
	require.Contains(t, err.Error(), "required value is missing")
}

func TestNewMonetaryPolicyConfigRateBounds(t *testing.T) {
	for _, rate := range []string{"0.0", "0.2", "1.0"} {
		t.Run(rate, func(t *testing.T) {
			_, err := newBlockchainConfig(blockchainNode(t, "61", rate, ""))
			require.NoError(t, err)
		})
	}
	for _, rate := range []string{"-0.1", "1.1"} {
		t.Run(rate, func(t *testing.T) {
			_, err := newBlockchainConfig(blockchainNode(t, "61", rate, ""))
			require.Error(t, err)
			require.Contains(t, err.Error(), "reward-reduction-rate")
		})
	}
}

func TestNewDaoForkConfig(t *testing.T) {
	cfg, err := newBlockchainConfig(blockchainNode(t, "61", "0.2", `
[dao]
fork-block-number = 1920000
fork-block-hash = "0x94365e3a8c0b35089c1d1195081fe7489b528a84b22199c916180db8b28ade7f"
block-extra-data = "0x64616f2d686172642d666f726b"
block-extra-data-range = 10
refund-contract-address = "0xbf4ed7b27f1d666546e30d74d50d173d20bca754"
drain-list = [
  "0xd4fe7bc31cedb7bfb8a345f31e668033056b2728",
  "0xb3fb0e5aba0e20e5c49d252dfd30e102b171a425",
]
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.DaoFork)
	require.EqualValues(t, 1920000, cfg.DaoFork.ForkBlockNumber.Int64())
	require.Equal(t, []byte("dao-hard-fork"), cfg.DaoFork.BlockExtraData)
	require.EqualValues(t, 10, cfg.DaoFork.Range)
	require.NotNil(t, cfg.DaoFork.RefundContract)
	require.Len(t, cfg.DaoFork.DrainList, 2)
}

func TestNewDaoForkConfigOptionalDefaults(t *testing.T) {
	cfg, err := newBlockchainConfig(blockchainNode(t, "61", "0.2", `
[dao]
fork-block-number = 1885000
fork-block-hash = "0x94365e3a8c0b35089c1d1195081fe7489b528a84b22199c916180db8b28ade7f"
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.DaoFork)
	require.Empty(t, cfg.DaoFork.BlockExtraData)
	require.Zero(t, cfg.DaoFork.Range)
	require.Nil(t, cfg.DaoFork.RefundContract)
	require.Empty(t, cfg.DaoFork.DrainList)
}

func TestNewDaoForkConfigMalformedOptionalsCollapse(t *testing.T) {
	cfg, err := newBlockchainConfig(blockchainNode(t, "61", "0.2", `
[dao]
fork-block-number = 1920000
fork-block-hash = "0x94365e3a8c0b35089c1d1195081fe7489b528a84b22199c916180db8b28ade7f"
block-extra-data = "not hex"
refund-contract-address = "not an address"
drain-list = ["0xd4fe7bc31cedb7bfb8a345f31e668033056b2728", "bogus"]
`))
	require.NoError(t, err)
	require.Empty(t, cfg.DaoFork.BlockExtraData)
	require.Nil(t, cfg.DaoFork.RefundContract)
	require.Empty(t, cfg.DaoFork.DrainList)
}

func TestNewDaoForkConfigRequiredFields(t *testing.T) {
	_, err := newBlockchainConfig(blockchainNode(t, "61", "0.2", `
[dao]
fork-block-number = 1920000
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "fork-block-hash")

	_, err = newBlockchainConfig(blockchainNode(t, "61", "0.2", `
[dao]
fork-block-number = 1920000
fork-block-hash = "0x1234"
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "32-byte hash")
}
