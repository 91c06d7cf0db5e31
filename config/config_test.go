package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/jaxnet/cryptonote-consensus/hardfork"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, defaultNetwork, cfg.Network)
	assert.Equal(t, defaultBitmessageAddress, cfg.BitmessageAddress)
	assert.Equal(t, defaultBitmessageLogin, cfg.BitmessageLogin)

	network, err := cfg.NetworkValue()
	require.NoError(t, err)
	assert.Equal(t, hardfork.Mainnet, network)
}

func TestNetworkValueRejectsUnknown(t *testing.T) {
	cfg := Default()
	cfg.Network = "regtest"
	_, err := cfg.NetworkValue()
	assert.Error(t, err)
}

func TestWriteSampleThenLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cnconsensus.yaml")
	require.NoError(t, WriteSample(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, yaml.Unmarshal(raw, &onDisk))
	assert.Equal(t, defaultNetwork, onDisk.Network)

	onDisk.Network = "testnet"
	onDisk.BitmessageAddress = "http://example.invalid:8442/"
	out, err := yaml.Marshal(onDisk)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, out, 0o600))

	cfg, _, err := Load([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, "http://example.invalid:8442/", cfg.BitmessageAddress)

	network, err := cfg.NetworkValue()
	require.NoError(t, err)
	assert.Equal(t, hardfork.Testnet, network)
}

func TestLoadCommandLineOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cnconsensus.yaml")
	require.NoError(t, WriteSample(path))

	cfg, _, err := Load([]string{"-c", path, "--network", "stagenet", "--mms-file", "custom.bin"})
	require.NoError(t, err)
	assert.Equal(t, "stagenet", cfg.Network)
	assert.Equal(t, "custom.bin", cfg.MMSFile)
}

func TestLoadWithoutExistingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.yaml")

	cfg, _, err := Load([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, defaultNetwork, cfg.Network)
	assert.Equal(t, defaultMMSFile, cfg.MMSFile)
}
