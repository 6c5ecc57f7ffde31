package hypergrasp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveAndLoadConfig(t *testing.T) {
	config := NewDefaultConfig()
	config.MOCOProblem = ProblemMOMST
	config.Maximization = true
	config.Alpha = 0.2
	config.InputFile = "instances/momst/random/2D/100_1.in"

	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, SaveConfigToFile(config, path))

	loaded, err := LoadConfigFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, config.MOCOProblem, loaded.MOCOProblem)
	assert.Equal(t, config.Maximization, loaded.Maximization)
	assert.Equal(t, config.Alpha, loaded.Alpha)
	assert.Equal(t, config.InputFile, loaded.InputFile)
}

func TestLoadConfigFromFileRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, SaveConfigToFile(&Config{Alpha: 5}, path))

	_, err := LoadConfigFromFile(path)
	assert.ErrorIs(t, err, ErrUserInput)
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	_, err := LoadConfigFromFile("/nonexistent/path/config.json")
	assert.ErrorIs(t, err, ErrUserInput)
}
