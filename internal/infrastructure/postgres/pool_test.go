package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolConfigParse(t *testing.T) {
	cfg, err := PoolConfig{
		DSN:             "postgres://u:p@localhost:5432/newsroom?sslmode=disable",
		AppName:         "newsroom",
		MaxConns:        6,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
	}.parse()
	require.NoError(t, err)
	require.EqualValues(t, 6, cfg.MaxConns)
	require.EqualValues(t, 2, cfg.MinConns)
	require.Equal(t, 30*time.Minute, cfg.MaxConnLifetime)
	require.Equal(t, "newsroom", cfg.ConnConfig.RuntimeParams["application_name"])
	require.Equal(t, "newsroom", cfg.ConnConfig.Database)
}

func TestPoolConfigKeepsDSNDefaults(t *testing.T) {
	cfg, err := PoolConfig{DSN: "postgres://u:p@localhost:5432/newsroom?pool_max_conns=9", MinConns: 20}.parse()
	require.NoError(t, err)
	require.EqualValues(t, 9, cfg.MaxConns)
	require.EqualValues(t, 0, cfg.MinConns)
}

func TestPoolConfigRejectsBadDSN(t *testing.T) {
	_, err := PoolConfig{DSN: "postgres://u:p@localhost:notaport/db"}.parse()
	require.Error(t, err)
}
