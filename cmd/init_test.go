package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmi3/freshreadme/internal/domain"
	m "github.com/dmi3/freshreadme/internal/model"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	output, err := executeRoot(t, newInitCmd(), "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &written))

	marker, ok := written["marker"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, viper.GetString(markerTagKey), marker["tag"])
	assert.Equal(t, domain.DefaultMarkerTag, marker["tag"])
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeRoot(t, newInitCmd(), "init")

	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrConfiguration)
	assert.Equal(t, exitConfig, exitCode(err))
}
