// Package storage persists derived snapshots outside the recording
// files. It never touches a recording itself; recordings stay
// sequential-scan only.
package storage

import (
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// SnapshotArchive stores serialized snapshots in a local pebble
// database, keyed by generated ksuid. Ids carry the creation time, so
// iterating the archive lists snapshots in rough creation order.
type SnapshotArchive struct {
	db *pebble.DB
}

// Open opens (or creates) the archive at path
func Open(path string) (*SnapshotArchive, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &SnapshotArchive{db: db}, nil
}

// Create stores data under a fresh id and returns the id
func (a *SnapshotArchive) Create(data []byte) (*ksuid.KSUID, error) {
	id := ksuid.New()
	if err := a.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return nil, err
	}
	return &id, nil
}

// Read returns the data stored under id
func (a *SnapshotArchive) Read(id *ksuid.KSUID) ([]byte, error) {
	data, closer, err := a.db.Get(id.Bytes())
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Update replaces the data stored under id
func (a *SnapshotArchive) Update(id *ksuid.KSUID, data []byte) error {
	return a.db.Set(id.Bytes(), data, pebble.Sync)
}

// Delete removes the data stored under id
func (a *SnapshotArchive) Delete(id *ksuid.KSUID) error {
	return a.db.Delete(id.Bytes(), pebble.Sync)
}

// List returns the ids of every archived snapshot in key order
func (a *SnapshotArchive) List() ([]ksuid.KSUID, error) {
	iter, err := a.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, iter.Error()
}

// Close closes the underlying database
func (a *SnapshotArchive) Close() error {
	return a.db.Close()
}
