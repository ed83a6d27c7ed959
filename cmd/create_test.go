package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd verifies the create command definition.
func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("force")
	require.NotNil(t, flag, "--force flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

// TestGetMigrateCmd verifies the migrate command definition.
func TestGetMigrateCmd(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd, "Migrate command should exist")
	assert.Equal(t, "migrate", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "non-destructive")
	assert.NotNil(t, cmd.RunE)
}

// TestGetExportCmd verifies the export command definition.
func TestGetExportCmd(t *testing.T) {
	cmd := getExportCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "export", cmd.Use)
	assert.Contains(t, cmd.Long, "training_rows")

	flag := cmd.Flags().Lookup("out")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, DefaultExportPath, flag.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("min-rows"))
	assert.NotNil(t, cmd.Flags().Lookup("metrics-file"))
}

// TestGetStatusCmd verifies the status command definition.
func TestGetStatusCmd(t *testing.T) {
	cmd := getStatusCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "status", cmd.Use)

	flag := cmd.Flags().Lookup("runs")
	require.NotNil(t, flag)
	assert.Equal(t, "5", flag.DefValue)
}
