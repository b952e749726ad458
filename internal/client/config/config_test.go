package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.ServerEndpointAddr, "http://localhost:5050")
	assert.NotEmpty(t, c.StateDir)
	assert.Equal(t, ".pennywise", filepath.Base(c.StateDir))
}

func TestParseJson_Overlay(t *testing.T) {
	content := `{"server_endpoint_addr": "http://example.com:8080", "state_dir": "/tmp/pw-state"}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.ServerEndpointAddr, "http://example.com:8080")
	assert.Equal(t, c.StateDir, "/tmp/pw-state")
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin", "-s", "http://flagged:1234"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.ServerEndpointAddr, "http://flagged:1234")
	assert.Equal(t, ".pennywise", filepath.Base(c.StateDir))
}
