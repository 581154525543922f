package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

func TestNewESClientDisabledWithoutAddrs(t *testing.T) {
	es, err := helpers.NewESClient(helpers.ESOptions{})
	require.NoError(t, err)
	require.Nil(t, es)
}

func TestNewESClient(t *testing.T) {
	es, err := helpers.NewESClient(helpers.ESOptions{Addrs: []string{"http://localhost:9200"}, Username: "elastic", Password: "x"})
	require.NoError(t, err)
	require.NotNil(t, es)
}
