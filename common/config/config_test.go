package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"gotest.tools/v3/assert"
)

// cmdZero returns an empty cobra command. Since the config flag is not set,
// GetConfig falls back to the environment variable and the working directory.
func cmdZero() *cobra.Command {
	return &cobra.Command{}
}

// cmdWithConfig creates a command that has the --config flag set to the given filename
func cmdWithConfig(filename string) *cobra.Command {
	cmd := cmdZero()
	AddConfigFlag(cmd)
	cmd.Flags().Set(flagForConfigFile, filename)
	return cmd
}

const sampleConfig = `target = "huggingface-spaces"

[huggingface]
username = "alice"
space_name = "resume-ai-helper"

[cloudrun]
project_id = "my-project"
region = "europe-west1"
api_key = "k1"

[heroku]
app_name = "resumeai-alice"
`

func makeConfigAt(t *testing.T, path string) {
	t.Helper()
	assert.NilError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
}

func TestCanLoadConfigWithFlag(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "resumeai.toml")
	makeConfigAt(t, filename)

	cfg, err := GetConfig(cmdWithConfig(filename))
	assert.NilError(t, err)
	assert.Equal(t, "huggingface-spaces", cfg.Target)
	assert.Equal(t, "alice", cfg.HuggingFace.Username)
	assert.Equal(t, "resume-ai-helper", cfg.HuggingFace.SpaceName)
	assert.Equal(t, "europe-west1", cfg.CloudRun.Region)
	assert.Equal(t, "resumeai-alice", cfg.Heroku.AppName)
}

func TestCanLoadConfigWithEnvVariable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "other.toml")
	makeConfigAt(t, filename)
	t.Setenv(ConfigFileEnvVariable, filename)

	cfg, err := GetConfig(cmdZero())
	assert.NilError(t, err)
	assert.Equal(t, "my-project", cfg.CloudRun.ProjectID)
}

func TestCanLoadConfigFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	makeConfigAt(t, filepath.Join(dir, ConfigFilename))
	t.Chdir(dir)

	cfg, err := GetConfig(cmdZero())
	assert.NilError(t, err)
	assert.Equal(t, "k1", cfg.CloudRun.APIKey)
}

func TestMissingConfigIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetConfig(cmdZero())
	assert.NilError(t, err)
	assert.Assert(t, cfg == nil)
}

func TestExplicitMissingConfigIsAnError(t *testing.T) {
	_, err := GetConfig(cmdWithConfig(filepath.Join(t.TempDir(), "nope.toml")))
	assert.ErrorContains(t, err, "failed to open config file")
}

func TestPartialConfigLeavesRestZero(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "partial.toml")
	assert.NilError(t, os.WriteFile(filename, []byte("[docker]\napi_key = \"k2\"\n"), 0o600))

	cfg, err := GetConfig(cmdWithConfig(filename))
	assert.NilError(t, err)
	assert.Equal(t, "k2", cfg.Docker.APIKey)
	assert.Equal(t, "", cfg.Target)
	assert.Equal(t, "", cfg.HuggingFace.Username)
}
