package flatstore

import (
	"context"
	"errors"
)

var (
	// ErrNoDocument is returned by Backend.Read when nothing has been saved yet.
	ErrNoDocument = errors.New("flatstore: no document")
	// ErrUnreadable wraps local read failures that should be treated as an empty store.
	ErrUnreadable = errors.New("flatstore: document unreadable")
)

// Backend stores the serialized document as one opaque blob.
// Write replaces the blob as a unit; no backend supports partial access.
type Backend interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
