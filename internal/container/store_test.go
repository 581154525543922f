package container

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenStoreFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store, closeStore, err := OpenStore(context.Background(), &config.Config{StoreBackend: "file", DataFile: path}, quietLogger())
	require.NoError(t, err)
	defer closeStore()
	require.Equal(t, "file", store.BackendName())

	require.NoError(t, store.Save(context.Background(), entity.NewStore()))
	require.FileExists(t, path)
}

func TestOpenStoreMemoryBackend(t *testing.T) {
	store, closeStore, err := OpenStore(context.Background(), &config.Config{StoreBackend: "memory"}, quietLogger())
	require.NoError(t, err)
	defer closeStore()
	require.Equal(t, "memory", store.BackendName())
}

func TestOpenStoreRejectsBadConfig(t *testing.T) {
	_, _, err := OpenStore(context.Background(), &config.Config{StoreBackend: "sqlite"}, quietLogger())
	require.ErrorContains(t, err, "sqlite")

	_, _, err = OpenStore(context.Background(), &config.Config{StoreBackend: "gcs"}, quietLogger())
	require.ErrorContains(t, err, "GCS_BUCKET")
}
