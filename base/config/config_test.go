package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/dasgo/domain/das"
)

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestLoadDas(t *testing.T) {
	req := require.New(t)

	file := writeConfig(t, `
debug: true
das:
  network: testnet
  avatarResolver: https://example.com/avatar
  timeout: 3s
`)
	v := viper.New()
	req.NoError(Init(v, file))

	cfg := LoadDas(v)
	req.Equal(das.NetworkTestnet, cfg.Network)
	req.Equal("https://example.com/avatar", cfg.AvatarResolver)
	req.Equal(3*time.Second, cfg.Timeout)
	req.Equal(5*time.Second, cfg.ProbeTimeout)
	req.Empty(cfg.Url)
	req.True(v.GetBool("debug"))
	req.Equal(":9090", v.GetString("server.address"))
}

func TestLoadDasFromEnv(t *testing.T) {
	req := require.New(t)

	t.Setenv("DAS_NETWORK", das.NetworkAuto)
	t.Setenv("DAS_URL", "http://localhost:8121")
	file := writeConfig(t, "das:\n  network: mainnet\n")
	v := viper.New()
	req.NoError(Init(v, file))

	cfg := LoadDas(v)
	req.Equal(das.NetworkAuto, cfg.Network)
	req.Equal("http://localhost:8121", cfg.Url)
}

func TestSetup(t *testing.T) {
	req := require.New(t)

	t.Setenv("DAS_PROBETIMEOUT", "1s")
	v := viper.New()
	Setup(v)

	cfg := LoadDas(v)
	req.Equal(das.NetworkMainnet, cfg.Network)
	req.Equal(10*time.Second, cfg.Timeout)
	req.Equal(time.Second, cfg.ProbeTimeout)
}

func TestInitMissingFile(t *testing.T) {
	require.Error(t, Init(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")))
}
