// Package sampleconfig provides the default configuration file for a
// Meridian mainnet node as an embedded constant, so the launcher can run
// without a config file on disk and tests have a complete fixture.
package sampleconfig

// FileContents is the full default configuration. Every required key is
// present; operators typically copy this file and edit the handful of values
// they care about.
const FileContents = `# Default configuration for a Meridian mainnet node.

[meridian.network]
protocol-version = 63

[meridian.network.server-address]
interface = "127.0.0.1"
port = 9076

[meridian.network.peer]
connect-retry-delay = "5s"
connect-max-retries = 2
wait-for-hello-timeout = "3s"
wait-for-status-timeout = "30s"
disconnect-poison-pill-timeout = "5s"
max-peers = 10
network-id = 1

[meridian.network.rpc]
enabled = true
interface = "127.0.0.1"
port = 8546
apis = ["eth", "web3", "net"]
cors-allowed-origins = []

[meridian.sync]
do-fast-sync = true
peers-scan-interval = "3s"
blacklist-duration = "200s"
start-retry-interval = "5s"
sync-retry-interval = "5s"
peer-response-timeout = "30s"
print-status-interval = "30s"
check-for-new-block-interval = "10s"
max-concurrent-requests = 50
block-headers-per-request = 200
block-bodies-per-request = 128
receipts-per-request = 60
nodes-per-request = 200
min-peers-to-choose-target-block = 2
target-block-offset = 500
block-resolving-depth = 20

[meridian.db.iodb]
path = "iodb"

[meridian.db.leveldb]
create-if-missing = true
paranoid-checks = true
verify-checksums = true
path = "leveldb"

[meridian.filter]
filter-ttl = "10m"
filter-manager-query-timeout = "3m"

[meridian.txPool]
tx-pool-size = 1000
pending-tx-manager-query-timeout = "5s"
transaction-timeout = "2m"

[meridian.mining]
coinbase = "0x0011223344556677889900112233445566778899"
header-extra-data = "0x6d6572696469616e"
ommers-pool-size = 30
block-cache-size = 30
active-timeout = "5s"
ommer-pool-query-timeout = "5s"

[meridian.blockchain]
frontier-block-number = 0
homestead-block-number = 1150000
eip106-block-number = "1000000000000000000000000000000"
eip150-block-number = 2500000
eip155-block-number = 3000000
eip160-block-number = 3000000
eip161-block-number = "1000000000000000000000000000000"
difficulty-bomb-pause-block-number = 3000000
difficulty-bomb-continue-block-number = 5000000
chain-id = "0x3d"
account-start-nonce = 0
gas-tie-breaker = false

[meridian.blockchain.dao]
fork-block-number = 1920000
fork-block-hash = "0x94365e3a8c0b35089c1d1195081fe7489b528a84b22199c916180db8b28ade7f"
block-extra-data = "0x64616f2d686172642d666f726b"
block-extra-data-range = 10
refund-contract-address = "0xbf4ed7b27f1d666546e30d74d50d173d20bca754"
drain-list = [
  "0xd4fe7bc31cedb7bfb8a345f31e668033056b2728",
  "0xb3fb0e5aba0e20e5c49d252dfd30e102b171a425",
]

[meridian.blockchain.monetary-policy]
era-duration = 5000000
reward-reduction-rate = 0.2
first-era-block-reward = "5000000000000000000"

[meridian.pruning]
mode = "basic"
history = 64000
`
