// Package genesis defines the custom genesis description a node loads when
// the blockchain configuration points at one (custom-genesis-file). It
// replaces the built-in genesis of the selected network, which is how
// private and developer chains are bootstrapped.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Genesis is the JSON shape of a custom genesis file.
type Genesis struct {
	Nonce      hexutil.Uint64 `json:"nonce"`
	Timestamp  hexutil.Uint64 `json:"timestamp"`
	ExtraData  hexutil.Bytes  `json:"extraData"`
	GasLimit   hexutil.Uint64 `json:"gasLimit"`
	Difficulty *hexutil.Big   `json:"difficulty"`
	MixHash    common.Hash    `json:"mixHash"`
	Coinbase   common.Address `json:"coinbase"`

	// Alloc seeds initial account balances.
	Alloc map[common.Address]Account `json:"alloc"`
}

// Account is one pre-funded genesis account.
type Account struct {
	Balance *hexutil.Big `json:"balance"`
}

// Load reads and validates a genesis description.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genesis file: %w", err)
	}
	var g Genesis
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse genesis file %s: %w", path, err)
	}
	if g.Difficulty == nil {
		return nil, fmt.Errorf("genesis file %s: difficulty is required", path)
	}
	if g.GasLimit == 0 {
		return nil, fmt.Errorf("genesis file %s: gasLimit is required", path)
	}
	return &g, nil
}
