package models

// MigrationState is a state of the migration coordinator's state machine.
type MigrationState int

const (
	// MigrationIdle means there is nothing to offer or the user skipped.
	MigrationIdle MigrationState = iota
	// MigrationDetected means local progress was found after sign-in.
	MigrationDetected
	// MigrationPrompted means the user has been asked to migrate.
	MigrationPrompted
	// MigrationMigrating means the upsert is in progress.
	MigrationMigrating
	// MigrationCompleted means the upsert succeeded at transport level.
	MigrationCompleted
	// MigrationFailed means the mapping read or the upsert failed.
	MigrationFailed
)

// String implements [fmt.Stringer].
func (s MigrationState) String() string {
	switch s {
	case MigrationIdle:
		return "idle"
	case MigrationDetected:
		return "detected"
	case MigrationPrompted:
		return "prompted"
	case MigrationMigrating:
		return "migrating"
	case MigrationCompleted:
		return "completed"
	case MigrationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MigrationStats tells whether local progress exists that could be migrated.
// It is computed on demand and never persisted.
type MigrationStats struct {
	HasData bool `json:"hasData"`
	Count   int  `json:"count"`
}

// MigrationResult is the outcome of a migration attempt.
//
// Success reflects the transport result of the final upsert only. Cards whose
// word is unknown remotely are counted in Errors without flipping Success.
type MigrationResult struct {
	Success  bool `json:"success"`
	Migrated int  `json:"migrated"`
	Errors   int  `json:"errors"`
}
