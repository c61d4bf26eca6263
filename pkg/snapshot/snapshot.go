// Package snapshot stores named captures of a loaded dataset: the records
// plus their aggregate statistics at capture time. Snapshots let you compare
// ownership concentration across dataset revisions without keeping the
// original CSV files around.
//
// Two storage backends are provided:
//
//   - file: JSON files under a local directory (CLI default)
//   - mongo: a MongoDB collection for shared deployments
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medialens/medialens/pkg/outlet"
	"github.com/medialens/medialens/pkg/view"
)

// ErrNotFound is returned when a snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is a named capture of a dataset.
type Snapshot struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Source    string          `json:"source,omitempty" bson:"source,omitempty"` // originating CSV path
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	Records   []outlet.Record `json:"records" bson:"records"`
	Stats     view.Stats      `json:"stats" bson:"stats"`
}

// New captures the given records under a name. Stats are computed once at
// capture time so listings don't have to re-aggregate.
func New(name, source string, records []outlet.Record) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Stats:     view.ComputeStats(records),
	}
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save stores a snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Get retrieves a snapshot by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// List returns all snapshots sorted by creation time, newest first.
	// Record payloads are included; callers that only need metadata should
	// read Name/Stats and ignore Records.
	List(ctx context.Context) ([]*Snapshot, error)

	// Delete removes a snapshot. Deleting a missing snapshot returns
	// ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
