package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/resumeai-labs/resumeai-cli/common/logger"
)

const (
	// ConfigFileEnvVariable can point at a config file outside the working directory.
	ConfigFileEnvVariable = "RESUMEAI_CONFIG_FILE"
	// ConfigFilename is looked up in the working directory when no flag or env var is set.
	ConfigFilename = "resumeai.toml"

	flagForConfigFile = "config"
)

// Config carries deployment parameters supplied up front so the deploy command
// does not have to prompt for them. Every field is optional; missing values are
// collected interactively.
type Config struct {
	Target string `toml:"target"`

	Streamlit   StreamlitConfig   `toml:"streamlit"`
	HuggingFace HuggingFaceConfig `toml:"huggingface"`
	CloudRun    CloudRunConfig    `toml:"cloudrun"`
	Heroku      HerokuConfig      `toml:"heroku"`
	Docker      DockerConfig      `toml:"docker"`
}

type StreamlitConfig struct {
	RepoURL string `toml:"repo_url"`
}

type HuggingFaceConfig struct {
	Username  string `toml:"username"`
	SpaceName string `toml:"space_name"`
}

type CloudRunConfig struct {
	ProjectID string `toml:"project_id"`
	Region    string `toml:"region"`
	APIKey    string `toml:"api_key"`
}

type HerokuConfig struct {
	AppName string `toml:"app_name"`
	APIKey  string `toml:"api_key"`
}

type DockerConfig struct {
	APIKey string `toml:"api_key"`
}

func AddConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagForConfigFile, "", "a toml encoded config file")
}

// GetConfig loads the config file named by the --config flag, the
// RESUMEAI_CONFIG_FILE environment variable, or the working directory, in that
// order. A config file is optional: when none is found, (nil, nil) is returned.
func GetConfig(cmd *cobra.Command) (*Config, error) {
	if cmd.Flags().Changed(flagForConfigFile) {
		// The config flag was explicitly set, so a missing file is an error.
		configFile, err := cmd.Flags().GetString(flagForConfigFile)
		if err != nil {
			return nil, err
		}
		if configFile == "" {
			return nil, errors.New("config cannot be empty")
		}
		return loadConfigFromFile(configFile)
	}

	if filename := os.Getenv(ConfigFileEnvVariable); filename != "" {
		return loadConfigFromFile(filename)
	}

	currDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfigFromFile(filepath.Join(currDir, ConfigFilename))
	if os.IsNotExist(eris.Cause(err)) {
		return nil, nil
	}
	return cfg, err
}

func loadConfigFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open config file %q", filename)
	}
	defer file.Close()

	var cfg Config
	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, eris.Wrapf(err, "failed to decode config file %q", filename)
	}

	logger.Debugf("successfully loaded config from %q", filename)

	return &cfg, nil
}
