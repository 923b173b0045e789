package metrics

// Prometheus metric namespaces
const (
	namespaceRelayRoots = "relay_roots"
)

// Storage subsystems represent the various components of the storage layer.
const (
	subsystemCache  = "cache"
	subsystemLedger = "ledger"
)

// Block execution subsystems
const (
	subsystemExecutive = "executive"
)

// Operator facing subsystems
const (
	subsystemHTTP = "http"
)
