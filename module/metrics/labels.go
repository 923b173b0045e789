package metrics

const (
	LabelResource = "resource"
	LabelOutcome  = "outcome"
	LabelService  = "service"
	LabelHandler  = "handler"
	LabelMethod   = "method"
	LabelCode     = "code"
)

const (
	ResourceRelayStorageRoot = "relay_storage_root"
)

const (
	OutcomeRecorded  = "recorded"
	OutcomeDuplicate = "duplicate"
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
)
