// Package flatstore keeps the whole dataset in a single JSON document.
package flatstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/domain/repository"
)

// Store implements repository.StoreRepository on top of a Backend.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// BackendName names the backend for health output and logs.
func (s *Store) BackendName() string {
	return s.backend.Name()
}

func (s *Store) Load(ctx context.Context) (repository.Snapshot, error) {
	raw, err := s.backend.Read(ctx)
	switch {
	case errors.Is(err, ErrNoDocument):
		return emptySnapshot(repository.LoadMissing, nil), nil
	case errors.Is(err, ErrUnreadable):
		return emptySnapshot(repository.LoadUnreadable, err), nil
	case err != nil:
		return repository.Snapshot{}, fmt.Errorf("read %s store: %w", s.backend.Name(), err)
	}

	data, err := Decode(raw)
	if err != nil {
		return emptySnapshot(repository.LoadCorrupt, err), nil
	}
	return repository.Snapshot{Data: data, Status: repository.LoadOK}, nil
}

func (s *Store) Save(ctx context.Context, data *entity.Store) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}
	if err := s.backend.Write(ctx, raw); err != nil {
		return fmt.Errorf("write %s store: %w", s.backend.Name(), err)
	}
	return nil
}

// Encode renders the document as indented JSON so it stays readable on disk.
func Encode(data *entity.Store) ([]byte, error) {
	if data == nil {
		data = entity.NewStore()
	}
	data.Normalize()
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return append(raw, '\n'), nil
}

// Decode parses a document produced by Encode.
func Decode(raw []byte) (*entity.Store, error) {
	var data entity.Store
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	data.Normalize()
	return &data, nil
}

func emptySnapshot(status repository.LoadStatus, cause error) repository.Snapshot {
	return repository.Snapshot{Data: entity.NewStore(), Status: status, Cause: cause}
}

var _ repository.StoreRepository = (*Store)(nil)
