package helpers

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// UploadObject uploads bytes from r into bucket/objectPath with the provided contentType.
// The object only becomes visible when the writer closes successfully.
func UploadObject(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, r io.Reader) (int64, error) {
	wc := client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // single request; store documents are small
	n, err := io.Copy(wc, r)
	if err != nil {
		_ = wc.Close()
		return 0, err
	}
	if err := wc.Close(); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadObject returns the full contents of bucket/objectPath.
// A missing object yields storage.ErrObjectNotExist.
func ReadObject(ctx context.Context, client *storage.Client, bucket, objectPath string) ([]byte, error) {
	rc, err := client.Bucket(bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
