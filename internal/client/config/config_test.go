package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.ServerAddr, "http://localhost:8080")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"client", "-s", "http://example.com:9090", "-t", "3"}

	c := LoadConfig()
	require.NotNil(t, c)

	assert.Equal(t, c.ServerAddr, "http://example.com:9090")
	assert.Equal(t, c.RequestTimeout, 3*time.Second)
}
