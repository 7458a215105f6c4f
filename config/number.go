package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrMalformedNumber is returned for strings that are neither a decimal
// number nor a 0x-prefixed hexadecimal number.
var ErrMalformedNumber = errors.New("malformed number")

// ParseBigInt reads an operator-authored numeric string. A 0x/0X prefix
// selects hexadecimal, anything else is parsed as decimal. The result is
// arbitrary precision: chain-rule thresholds must not silently truncate.
func ParseBigInt(s string) (*big.Int, error) {
	body := s
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		body = s[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return n, nil
}
