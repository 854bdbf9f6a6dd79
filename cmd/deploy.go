package cmd

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/resumeai-labs/resumeai-cli/common/config"
	"github.com/resumeai-labs/resumeai-cli/common/terminal"
	"github.com/resumeai-labs/resumeai-cli/internal/deployer"
	"github.com/resumeai-labs/resumeai-cli/internal/services/input"
)

const (
	flagTarget = "target"
	flagYes    = "yes"
)

func init() {
	deployCmd.Flags().StringP(flagTarget, "t", "", "deployment target (streamlit-cloud, huggingface-spaces, cloud-run, heroku, local-docker)")
	deployCmd.Flags().BoolP(flagYes, "y", false, "skip the confirmation prompt")
	config.AddConfigFlag(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish ResumeAI Helper to a hosting platform",
	Long: `Publish ResumeAI Helper to a hosting platform.

Validates that the app files and the required CLI tooling are present, collects
the target-specific parameters, and runs the publish sequence for exactly one of:
- Streamlit Cloud
- Hugging Face Spaces
- Google Cloud Run
- Heroku
- Local Docker

Parameters are prompted for interactively. A resumeai.toml config file can supply
them up front; anything it provides is not prompted for again.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := deployOptions(cmd)
		if err != nil {
			return err
		}

		d := deployer.New(terminal.New(), input.NewService())
		return d.Run(cmd.Context(), opts)
	},
}

// deployOptions assembles deployer options from the config file and flags.
// Flags win over the config file.
func deployOptions(cmd *cobra.Command) (deployer.Options, error) {
	var opts deployer.Options

	cfg, err := config.GetConfig(cmd)
	if err != nil {
		return opts, eris.Wrap(err, "failed to load config")
	}
	if cfg != nil {
		if cfg.Target != "" {
			target, err := deployer.ParseTarget(cfg.Target)
			if err != nil {
				return opts, err
			}
			opts.Target = target
		}
		opts.Params = deployer.Params{
			RepoURL:   cfg.Streamlit.RepoURL,
			Username:  cfg.HuggingFace.Username,
			SpaceName: cfg.HuggingFace.SpaceName,
			ProjectID: cfg.CloudRun.ProjectID,
			Region:    cfg.CloudRun.Region,
			AppName:   cfg.Heroku.AppName,
			APIKey:    firstNonEmpty(cfg.CloudRun.APIKey, cfg.Heroku.APIKey, cfg.Docker.APIKey),
		}
	}

	if flagVal, _ := cmd.Flags().GetString(flagTarget); flagVal != "" {
		target, err := deployer.ParseTarget(flagVal)
		if err != nil {
			return opts, err
		}
		opts.Target = target
	}
	opts.Yes, _ = cmd.Flags().GetBool(flagYes)

	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
