package repository

import (
	"context"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

// LoadStatus describes how a snapshot was obtained.
type LoadStatus string

const (
	LoadOK         LoadStatus = "ok"
	LoadMissing    LoadStatus = "missing"
	LoadUnreadable LoadStatus = "unreadable"
	LoadCorrupt    LoadStatus = "corrupt"
)

// Snapshot is one full read of the store.
// For any status other than LoadOK, Data is empty and Cause (if set) says why.
type Snapshot struct {
	Data   *entity.Store
	Status LoadStatus
	Cause  error
}

// Degraded reports whether existing data may have been discarded: the document was
// present but could not be read or decoded. Saving over a degraded snapshot loses it.
func (s Snapshot) Degraded() bool {
	return s.Status == LoadUnreadable || s.Status == LoadCorrupt
}

// StoreRepository is the persistence port for the whole dataset.
// Every mutation is Load, change in memory, Save. There is no locking between the two,
// so concurrent writers lose updates at whole-document granularity.
type StoreRepository interface {
	// Load never fails for a missing, unreadable or corrupt document; those come back
	// as an empty snapshot with the matching status. The error is reserved for
	// backends that could not be reached at all.
	Load(ctx context.Context) (Snapshot, error)
	// Save overwrites the whole document. Readers see either the old or the new one.
	Save(ctx context.Context, s *entity.Store) error
}
