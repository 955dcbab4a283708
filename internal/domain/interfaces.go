package domain

import "github.com/google/uuid"

// ResultFilter narrows a List query. Zero values mean "no constraint".
type ResultFilter struct {
	// DiscID limits results to one disc.
	DiscID string

	// Status limits results to one outcome. Use HasStatus to make the
	// zero status (complete) selectable.
	Status    RipStatus
	HasStatus bool

	// Device limits results to rips from one device path.
	Device string

	// Limit caps the number of rows returned, newest first.
	Limit int
}

// ResultStore is the persistence contract for rip results. The sqlite
// store implements it; the command layer and the browser consume it.
type ResultStore interface {
	// Insert adds a new result record.
	Insert(result RipResult) error

	// List returns results matching the filter, newest first.
	List(filter ResultFilter) ([]RipResult, error)

	// Latest returns the most recent result for a disc id. The bool
	// reports whether any record exists.
	Latest(discID string) (RipResult, bool, error)

	// UpdateStatus rewrites the status and ripped-track count of one
	// record and bumps its update timestamp.
	UpdateStatus(id uuid.UUID, status RipStatus, tracksRipped int) error

	// Close releases the underlying connection.
	Close() error
}
