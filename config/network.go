package config

import (
	"fmt"
	"time"
)

// NetworkConfig groups everything the networking stack is parametrized with:
// the server bind address, the wire protocol version, and the nested peer
// management and RPC groups.
type NetworkConfig struct {
	Interface       string
	Port            int
	ProtocolVersion int
	Peer            PeerConfig
	Rpc             RpcConfig
}

// PeerConfig tunes the peer manager: handshake timeouts, retry/backoff
// behaviour and connection limits.
type PeerConfig struct {
	ConnectRetryDelay           time.Duration
	ConnectMaxRetries           int
	WaitForHelloTimeout         time.Duration
	WaitForStatusTimeout        time.Duration
	DisconnectPoisonPillTimeout time.Duration
	MaxPeers                    int
	NetworkID                   int
}

// RpcConfig describes the JSON-RPC endpoint. Only raw values live here: the
// CORS origins stay plain strings, the transport builds its own types from
// them.
type RpcConfig struct {
	Enabled            bool
	Interface          string
	Port               int
	Apis               []string
	CorsAllowedOrigins []string
}

// rpcApiNames is the closed set of API namespaces the node can expose.
var rpcApiNames = map[string]bool{
	"eth":      true,
	"web3":     true,
	"net":      true,
	"personal": true,
	"daedalus": true,
}

// ValidateRPCApis rejects unknown API names. Shared between the file loader
// and the CLI override path so both enforce the same set.
func ValidateRPCApis(apis []string) error {
	for _, api := range apis {
		if !rpcApiNames[api] {
			return fmt.Errorf("unknown rpc api %q (valid: eth, web3, net, personal, daedalus)", api)
		}
	}
	return nil
}

func newNetworkConfig(n Node) (NetworkConfig, error) {
	var cfg NetworkConfig
	var err error

	addr, err := n.RequiredSub("server-address")
	if err != nil {
		return cfg, err
	}
	if cfg.Interface, err = addr.RequiredString("interface"); err != nil {
		return cfg, err
	}
	if cfg.Port, err = addr.RequiredInt("port"); err != nil {
		return cfg, err
	}
	if cfg.ProtocolVersion, err = n.RequiredInt("protocol-version"); err != nil {
		return cfg, err
	}

	peer, err := n.RequiredSub("peer")
	if err != nil {
		return cfg, err
	}
	if cfg.Peer, err = newPeerConfig(peer); err != nil {
		return cfg, err
	}

	rpc, err := n.RequiredSub("rpc")
	if err != nil {
		return cfg, err
	}
	if cfg.Rpc, err = newRpcConfig(rpc); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newPeerConfig(n Node) (PeerConfig, error) {
	var cfg PeerConfig
	var err error
	if cfg.ConnectRetryDelay, err = n.RequiredDuration("connect-retry-delay"); err != nil {
		return cfg, err
	}
	if cfg.ConnectMaxRetries, err = n.RequiredInt("connect-max-retries"); err != nil {
		return cfg, err
	}
	if cfg.WaitForHelloTimeout, err = n.RequiredDuration("wait-for-hello-timeout"); err != nil {
		return cfg, err
	}
	if cfg.WaitForStatusTimeout, err = n.RequiredDuration("wait-for-status-timeout"); err != nil {
		return cfg, err
	}
	if cfg.DisconnectPoisonPillTimeout, err = n.RequiredDuration("disconnect-poison-pill-timeout"); err != nil {
		return cfg, err
	}
	if cfg.MaxPeers, err = n.RequiredInt("max-peers"); err != nil {
		return cfg, err
	}
	if cfg.NetworkID, err = n.RequiredInt("network-id"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newRpcConfig(n Node) (RpcConfig, error) {
	var cfg RpcConfig
	var err error
	if cfg.Enabled, err = n.RequiredBool("enabled"); err != nil {
		return cfg, err
	}
	if cfg.Interface, err = n.RequiredString("interface"); err != nil {
		return cfg, err
	}
	if cfg.Port, err = n.RequiredInt("port"); err != nil {
		return cfg, err
	}
	if cfg.Apis, err = n.RequiredStringList("apis"); err != nil {
		return cfg, err
	}
	if err = ValidateRPCApis(cfg.Apis); err != nil {
		return cfg, fmt.Errorf("config key %s: %v", n.fullKey("apis"), err)
	}
	// Raw origin strings only; the RPC transport owns the origin type.
	cfg.CorsAllowedOrigins, _ = n.OptionalStringList("cors-allowed-origins")
	return cfg, nil
}
