// Package datastore persists annotation snapshots. It implements the
// persistence collaborator boundary of the engine: sessions hand it
// serializable snapshots and have no opinion on the storage format.
package datastore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/conf"
)

// ErrSnapshotNotFound is returned when no snapshot exists for an artifact.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Interface defines the operations for snapshot persistence.
type Interface interface {
	Open() error
	Close() error
	// SaveSnapshot stores the snapshot, replacing any previous snapshot
	// for the same artifact.
	SaveSnapshot(snap *annotation.Snapshot) error
	// LoadSnapshot retrieves the stored snapshot for an artifact.
	// Returns ErrSnapshotNotFound when none exists.
	LoadSnapshot(artifact string) (*annotation.Snapshot, error)
	// DeleteSnapshot removes the stored snapshot for an artifact.
	// Deleting a missing snapshot is not an error.
	DeleteSnapshot(artifact string) error
	// ListArtifacts returns the names of all stored artifacts.
	ListArtifacts() ([]string, error)
}

// DataStore implements the snapshot operations over a GORM database.
// Driver-specific stores embed it and provide Open.
type DataStore struct {
	DB *gorm.DB
}

// New creates the datastore matching the output settings. SQLite is the
// only supported driver; a single-user local store has no need for more.
func New(settings *conf.Settings) Interface {
	return &SQLiteStore{Settings: settings}
}
