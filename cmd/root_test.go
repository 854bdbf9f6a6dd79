package cmd

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/resumeai-labs/resumeai-cli/internal/deployer"
)

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.Assert(t, names["deploy"], "deploy command not registered")
	assert.Assert(t, names["doctor"], "doctor command not registered")
	assert.Assert(t, names["version"], "version command not registered")
}

func TestDeployOptionsFromFlags(t *testing.T) {
	t.Chdir(t.TempDir()) // keep any real resumeai.toml out of the test

	assert.NilError(t, deployCmd.Flags().Set(flagTarget, "heroku"))
	assert.NilError(t, deployCmd.Flags().Set(flagYes, "true"))
	t.Cleanup(func() {
		deployCmd.Flags().Set(flagTarget, "")
		deployCmd.Flags().Set(flagYes, "false")
	})

	opts, err := deployOptions(deployCmd)
	assert.NilError(t, err)
	assert.Equal(t, deployer.TargetHeroku, opts.Target)
	assert.Assert(t, opts.Yes)
}

func TestDeployOptionsRejectsUnknownTarget(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NilError(t, deployCmd.Flags().Set(flagTarget, "vercel"))
	t.Cleanup(func() {
		deployCmd.Flags().Set(flagTarget, "")
	})

	_, err := deployOptions(deployCmd)
	assert.ErrorContains(t, err, "unknown deployment target")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
