package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/config"
)

func TestRunReturnsStoreErrors(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(&config.Config{StoreBackend: "tape", JWTSecret: "s"}, logger)
	require.ErrorContains(t, err, "open store")
}
