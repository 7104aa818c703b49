package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "pipeline.db", cfg.DBPath)
	assert.Equal(t, "outputs", cfg.OutputDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PIPELINE_ADDR", ":9090")
	t.Setenv("PIPELINE_OUTPUT_DIR", "/var/data/out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/data/out", cfg.OutputDir)
	assert.Equal(t, "pipeline.db", cfg.DBPath, "unset values keep defaults")
}
