package config

import (
	"context"
	"testing"
	"time"

	"github.com/shruggr/go-bpu/lib"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Network.Type)
	assert.Equal(t, "https://junglebus.gorillapool.io", cfg.Network.JungleBus)
	assert.Equal(t, "", cfg.Cache.Redis)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "bob", cfg.Parse.Preset)
	assert.Equal(t, 64, cfg.Parse.MaxDepth)
	assert.Equal(t, 8, cfg.Parse.Concurrency)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BPU_PARSE_PRESET", "ord")
	t.Setenv("BPU_NETWORK_TYPE", "test")
	t.Setenv("BPU_SERVER_PORT", "9000")

	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "ord", cfg.Parse.Preset)
	assert.Equal(t, "test", cfg.Network.Type)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestSetDefaults_Prefix(t *testing.T) {
	v := viper.New()
	(&Config{}).SetDefaults(v, "bpu")
	assert.Equal(t, "bob", v.GetString("bpu.parse.preset"))
}

func TestCreatePresets(t *testing.T) {
	presets := CreatePresets()
	for _, name := range []string{"bob", "bitcom", "ord"} {
		p, ok := presets[name]
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Config().Split)
	}
}

func TestInitialize(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadWith(viper.New())
	require.NoError(t, err)
	cfg.Network.Type = "test"
	cfg.Network.JungleBus = ""

	services, err := cfg.Initialize(context.Background(), nil)
	require.NoError(t, err)
	defer services.Close()

	assert.Equal(t, lib.Testnet, services.Network)
	assert.Equal(t, "bob", services.Ingest.Default)
	assert.Equal(t, 64, services.Ingest.MaxDepth)
	assert.Len(t, services.Ingest.Presets, 3)

	cfg.Parse.Preset = "nope"
	_, err = cfg.Initialize(context.Background(), nil)
	assert.Error(t, err)
}
