package config

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/pelletier/go-toml"
)

// Node is a read-only view over one table of the raw configuration tree.
// It remembers its own path so that every failure names the full offending
// key, not just the leaf segment.
type Node struct {
	tree *toml.Tree
	path string
}

// NewNode wraps a parsed tree rooted at the given path (used in messages only).
func NewNode(tree *toml.Tree, path string) Node {
	return Node{tree: tree, path: path}
}

func (n Node) fullKey(key string) string {
	if n.path == "" {
		return key
	}
	return n.path + "." + key
}

func (n Node) missing(key string) error {
	return fmt.Errorf("config key %s: required value is missing", n.fullKey(key))
}

func (n Node) badType(key string, want string, got interface{}) error {
	return fmt.Errorf("config key %s: expected %s, got %T", n.fullKey(key), want, got)
}

// The extraction API comes in three tiers.
//
// Try* returns (value, found, err): absent keys report found=false, present
// but malformed keys report found=true with a non-nil error. This is the
// honest tier; nothing is lost.
//
// Required* fails on both absence and malformation, carrying the key path.
// A whole-config load stops at the first such error.
//
// Optional* collapses absence and malformation into plain absence. That is
// the contract the rest of the node was built against: an optional field
// that fails to parse behaves as if it had been omitted. Callers that need
// to tell the two apart must use Try*.

// TrySub returns the nested table under key.
func (n Node) TrySub(key string) (Node, bool, error) {
	if !n.tree.Has(key) {
		return Node{}, false, nil
	}
	v := n.tree.Get(key)
	sub, ok := v.(*toml.Tree)
	if !ok {
		return Node{}, true, n.badType(key, "table", v)
	}
	return Node{tree: sub, path: n.fullKey(key)}, true, nil
}

func (n Node) TryString(key string) (string, bool, error) {
	if !n.tree.Has(key) {
		return "", false, nil
	}
	v := n.tree.Get(key)
	s, ok := v.(string)
	if !ok {
		return "", true, n.badType(key, "string", v)
	}
	return s, true, nil
}

func (n Node) TryInt(key string) (int, bool, error) {
	if !n.tree.Has(key) {
		return 0, false, nil
	}
	v := n.tree.Get(key)
	i, ok := v.(int64)
	if !ok {
		return 0, true, n.badType(key, "integer", v)
	}
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, true, fmt.Errorf("config key %s: value %d overflows int", n.fullKey(key), i)
	}
	return int(i), true, nil
}

func (n Node) TryUint64(key string) (uint64, bool, error) {
	if !n.tree.Has(key) {
		return 0, false, nil
	}
	v := n.tree.Get(key)
	i, ok := v.(int64)
	if !ok {
		return 0, true, n.badType(key, "integer", v)
	}
	if i < 0 {
		return 0, true, fmt.Errorf("config key %s: value %d must not be negative", n.fullKey(key), i)
	}
	return uint64(i), true, nil
}

func (n Node) TryFloat(key string) (float64, bool, error) {
	if !n.tree.Has(key) {
		return 0, false, nil
	}
	v := n.tree.Get(key)
	switch x := v.(type) {
	case float64:
		return x, true, nil
	case int64:
		return float64(x), true, nil
	default:
		return 0, true, n.badType(key, "float", v)
	}
}

func (n Node) TryBool(key string) (bool, bool, error) {
	if !n.tree.Has(key) {
		return false, false, nil
	}
	v := n.tree.Get(key)
	b, ok := v.(bool)
	if !ok {
		return false, true, n.badType(key, "boolean", v)
	}
	return b, true, nil
}

// TryDuration reads a duration string such as "30s" or "1m30s".
func (n Node) TryDuration(key string) (time.Duration, bool, error) {
	s, found, err := n.TryString(key)
	if !found || err != nil {
		return 0, found, err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, true, fmt.Errorf("config key %s: %v", n.fullKey(key), err)
	}
	return d, true, nil
}

func (n Node) TryStringList(key string) ([]string, bool, error) {
	if !n.tree.Has(key) {
		return nil, false, nil
	}
	v := n.tree.Get(key)
	switch xs := v.(type) {
	case []string:
		return xs, true, nil
	case []interface{}:
		out := make([]string, 0, len(xs))
		for _, x := range xs {
			s, ok := x.(string)
			if !ok {
				return nil, true, n.badType(key, "string list", x)
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, true, n.badType(key, "string list", v)
	}
}

// TryBigInt accepts either a TOML integer or a decimal/0x-hexadecimal string,
// so thresholds beyond int64 stay representable as strings.
func (n Node) TryBigInt(key string) (*big.Int, bool, error) {
	if !n.tree.Has(key) {
		return nil, false, nil
	}
	v := n.tree.Get(key)
	switch x := v.(type) {
	case int64:
		return big.NewInt(x), true, nil
	case string:
		b, err := ParseBigInt(x)
		if err != nil {
			return nil, true, fmt.Errorf("config key %s: %v", n.fullKey(key), err)
		}
		return b, true, nil
	default:
		return nil, true, n.badType(key, "number or numeric string", v)
	}
}

// Required tier.

func (n Node) RequiredSub(key string) (Node, error) {
	sub, found, err := n.TrySub(key)
	if err != nil {
		return Node{}, err
	}
	if !found {
		return Node{}, n.missing(key)
	}
	return sub, nil
}

func (n Node) RequiredString(key string) (string, error) {
	s, found, err := n.TryString(key)
	if err != nil {
		return "", err
	}
	if !found {
		return "", n.missing(key)
	}
	return s, nil
}

func (n Node) RequiredInt(key string) (int, error) {
	i, found, err := n.TryInt(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, n.missing(key)
	}
	return i, nil
}

func (n Node) RequiredUint64(key string) (uint64, error) {
	i, found, err := n.TryUint64(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, n.missing(key)
	}
	return i, nil
}

func (n Node) RequiredFloat(key string) (float64, error) {
	f, found, err := n.TryFloat(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, n.missing(key)
	}
	return f, nil
}

func (n Node) RequiredBool(key string) (bool, error) {
	b, found, err := n.TryBool(key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, n.missing(key)
	}
	return b, nil
}

func (n Node) RequiredDuration(key string) (time.Duration, error) {
	d, found, err := n.TryDuration(key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, n.missing(key)
	}
	return d, nil
}

func (n Node) RequiredStringList(key string) ([]string, error) {
	xs, found, err := n.TryStringList(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, n.missing(key)
	}
	return xs, nil
}

func (n Node) RequiredBigInt(key string) (*big.Int, error) {
	b, found, err := n.TryBigInt(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, n.missing(key)
	}
	return b, nil
}

// Optional tier: absence and malformation both read as "not set".

func (n Node) OptionalSub(key string) (Node, bool) {
	sub, found, err := n.TrySub(key)
	return sub, found && err == nil
}

func (n Node) OptionalString(key string) (string, bool) {
	s, found, err := n.TryString(key)
	return s, found && err == nil
}

func (n Node) OptionalUint64(key string) (uint64, bool) {
	i, found, err := n.TryUint64(key)
	return i, found && err == nil
}

func (n Node) OptionalStringList(key string) ([]string, bool) {
	xs, found, err := n.TryStringList(key)
	return xs, found && err == nil
}

func (n Node) OptionalBigInt(key string) (*big.Int, bool) {
	b, found, err := n.TryBigInt(key)
	return b, found && err == nil
}
