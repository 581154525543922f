// Package gcsstore keeps the store document as one Cloud Storage object.
package gcsstore

import (
	"bytes"
	"context"
	"errors"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// DocumentBackend relies on GCS object writes becoming visible only once complete.
type DocumentBackend struct {
	client *storage.Client
	bucket string
	object string
}

func NewDocumentBackend(client *storage.Client, bucket, object string) *DocumentBackend {
	return &DocumentBackend{client: client, bucket: bucket, object: object}
}

func (b *DocumentBackend) Name() string { return "gcs" }

func (b *DocumentBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := helpers.ReadObject(ctx, b.client, b.bucket, b.object)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, flatstore.ErrNoDocument
	}
	return data, err
}

func (b *DocumentBackend) Write(ctx context.Context, data []byte) error {
	_, err := helpers.UploadObject(ctx, b.client, b.bucket, b.object, "application/json", bytes.NewReader(data))
	return err
}

var _ flatstore.Backend = (*DocumentBackend)(nil)
