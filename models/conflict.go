package models

// Conflict kinds produced by conflict detection.
const (
	// ConflictModified means both replicas changed the same command since
	// their respective last sync.
	ConflictModified = "modified"
	// ConflictDeletedLocal means the local replica tombstoned a command the
	// remote replica still holds live.
	ConflictDeletedLocal = "deleted_local"
	// ConflictDeletedRemote is the symmetric case: tombstoned remotely,
	// live locally.
	ConflictDeletedRemote = "deleted_remote"
)

// Resolution choices accepted for a conflict.
const (
	KeepLocal  = "keep_local"
	KeepRemote = "keep_remote"
	KeepBoth   = "keep_both"
)

// Conflict is one divergent command detected between the local and the
// remote snapshot. Both sides are carried in full so a resolver can show
// them and the applier can materialize either one.
type Conflict struct {
	SyncID string  `json:"syncId"`
	Local  Command `json:"local"`
	Remote Command `json:"remote"`
	Kind   string  `json:"kind"`
}

// Resolution is a human (or pre-configured) choice for a single conflict.
type Resolution struct {
	SyncID string `json:"syncId"`
	Choice string `json:"choice"`
}
