package config

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml"
)

func mustNode(t *testing.T, text string) Node {
	t.Helper()
	tree, err := toml.Load(text)
	if err != nil {
		t.Fatalf("toml.Load: %v", err)
	}
	return NewNode(tree, "root")
}

func TestNodeTryTierDistinguishesAbsentFromMalformed(t *testing.T) {
	n := mustNode(t, `
name = "alpha"
count = 7
bad = "seven"
`)

	if _, found, err := n.TryInt("missing"); found || err != nil {
		t.Fatalf("absent key: found=%v err=%v, want false/nil", found, err)
	}
	if v, found, err := n.TryInt("count"); !found || err != nil || v != 7 {
		t.Fatalf("present key: v=%d found=%v err=%v", v, found, err)
	}
	_, found, err := n.TryInt("bad")
	if !found || err == nil {
		t.Fatalf("malformed key: found=%v err=%v, want true/error", found, err)
	}
	if !strings.Contains(err.Error(), "root.bad") {
		t.Fatalf("error %q does not name the full key path", err)
	}
}

func TestNodeRequiredTier(t *testing.T) {
	n := mustNode(t, `
port = 30303
fast = true
ratio = 0.5
whole = 2
timeout = "45s"
apis = ["eth", "net"]
big = "0x1f"
[peer]
max = 25
`)

	if v, err := n.RequiredInt("port"); err != nil || v != 30303 {
		t.Fatalf("RequiredInt: %d, %v", v, err)
	}
	if v, err := n.RequiredBool("fast"); err != nil || !v {
		t.Fatalf("RequiredBool: %v, %v", v, err)
	}
	if v, err := n.RequiredFloat("ratio"); err != nil || v != 0.5 {
		t.Fatalf("RequiredFloat: %v, %v", v, err)
	}
	// TOML integers are accepted where a float is expected.
	if v, err := n.RequiredFloat("whole"); err != nil || v != 2.0 {
		t.Fatalf("RequiredFloat on integer: %v, %v", v, err)
	}
	if v, err := n.RequiredDuration("timeout"); err != nil || v != 45*time.Second {
		t.Fatalf("RequiredDuration: %v, %v", v, err)
	}
	if v, err := n.RequiredStringList("apis"); err != nil || len(v) != 2 || v[0] != "eth" {
		t.Fatalf("RequiredStringList: %v, %v", v, err)
	}
	if v, err := n.RequiredBigInt("big"); err != nil || v.Int64() != 31 {
		t.Fatalf("RequiredBigInt: %v, %v", v, err)
	}
	sub, err := n.RequiredSub("peer")
	if err != nil {
		t.Fatalf("RequiredSub: %v", err)
	}
	if v, err := sub.RequiredUint64("max"); err != nil || v != 25 {
		t.Fatalf("nested RequiredUint64: %d, %v", v, err)
	}

	_, err = n.RequiredString("absent")
	if err == nil || !strings.Contains(err.Error(), "root.absent") {
		t.Fatalf("missing required key error = %v", err)
	}
	_, err = sub.RequiredInt("absent")
	if err == nil || !strings.Contains(err.Error(), "root.peer.absent") {
		t.Fatalf("nested missing key error = %v", err)
	}
}

func TestNodeRequiredRejectsMalformed(t *testing.T) {
	n := mustNode(t, `
negative = -3
huge = 9223372036854775807
notdur = "fast"
mixed = ["eth", 5]
badbig = "0xzz"
`)

	if _, err := n.RequiredUint64("negative"); err == nil {
		t.Fatal("negative uint64 accepted")
	}
	if _, err := n.RequiredInt("huge"); err == nil {
		t.Fatal("int32 overflow accepted")
	}
	if _, err := n.RequiredDuration("notdur"); err == nil {
		t.Fatal("unparseable duration accepted")
	}
	if _, err := n.RequiredStringList("mixed"); err == nil {
		t.Fatal("mixed-type list accepted")
	}
	if _, err := n.RequiredBigInt("badbig"); err == nil {
		t.Fatal("malformed big integer accepted")
	}
}

func TestNodeOptionalTierCollapsesMalformed(t *testing.T) {
	n := mustNode(t, `
good = "value"
broken = 42
list = [1, 2]
`)

	if v, ok := n.OptionalString("good"); !ok || v != "value" {
		t.Fatalf("OptionalString present: %q, %v", v, ok)
	}
	if _, ok := n.OptionalString("absent"); ok {
		t.Fatal("OptionalString reported absent key as present")
	}
	// A present but wrongly typed value reads as "not set".
	if _, ok := n.OptionalString("broken"); ok {
		t.Fatal("OptionalString reported malformed key as present")
	}
	if _, ok := n.OptionalStringList("list"); ok {
		t.Fatal("OptionalStringList reported malformed list as present")
	}
	if _, ok := n.OptionalSub("good"); ok {
		t.Fatal("OptionalSub reported scalar as table")
	}
}
