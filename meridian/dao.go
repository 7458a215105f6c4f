package meridian

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DaoForkConfig describes the one-time DAO hard fork: the block at which it
// happened, the canonical hash of that block, and the extra-data marker that
// blocks inside the activation window must carry.
//
// The three predicates below are the complete contract consumers use around
// the fork. They are pure and valid at any height, long before or after the
// fork itself.
type DaoForkConfig struct {
	ForkBlockNumber *big.Int
	ForkBlockHash   common.Hash

	// BlockExtraData is the marker required in block extra-data inside the
	// activation window; nil or empty means no marker is ever required.
	BlockExtraData []byte

	// Range is the length of the extra-data window in blocks. Zero (the
	// default when the field is omitted) makes the window empty.
	Range uint64

	// RefundContract receives the drained balances; nil when unset.
	RefundContract *common.Address

	// DrainList holds the accounts whose balances move at the fork block.
	// Empty when the field is omitted.
	DrainList []common.Address
}

// IsDaoForkBlock reports whether num is exactly the fork block. Never a
// range: state draining happens at one height only.
func (c *DaoForkConfig) IsDaoForkBlock(num *big.Int) bool {
	return c.ForkBlockNumber.Cmp(num) == 0
}

// RequiresExtraData reports whether a block at num must carry the marker.
// The window is half-open: [ForkBlockNumber, ForkBlockNumber+Range).
func (c *DaoForkConfig) RequiresExtraData(num *big.Int) bool {
	if len(c.BlockExtraData) == 0 {
		return false
	}
	if num.Cmp(c.ForkBlockNumber) < 0 {
		return false
	}
	end := new(big.Int).Add(c.ForkBlockNumber, new(big.Int).SetUint64(c.Range))
	return num.Cmp(end) < 0
}

// ExtraData returns the marker bytes for blocks inside the window, nil
// otherwise.
func (c *DaoForkConfig) ExtraData(num *big.Int) []byte {
	if !c.RequiresExtraData(num) {
		return nil
	}
	return c.BlockExtraData
}

// Copy creates a deep copy.
func (c DaoForkConfig) Copy() DaoForkConfig {
	cp := c
	cp.ForkBlockNumber = copyBig(c.ForkBlockNumber)
	if c.BlockExtraData != nil {
		cp.BlockExtraData = append([]byte(nil), c.BlockExtraData...)
	}
	if c.RefundContract != nil {
		refund := *c.RefundContract
		cp.RefundContract = &refund
	}
	if c.DrainList != nil {
		cp.DrainList = append([]common.Address(nil), c.DrainList...)
	}
	return cp
}
