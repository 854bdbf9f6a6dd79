// Package deployer publishes the ResumeAI Helper app to a hosting platform.
//
// A run is a linear check -> confirm -> publish -> report sequence: local file
// preconditions, per-target tool and auth checks, parameter collection through
// the injected input service, a confirmation gate, and then exactly one
// platform publish sequence. Every failure is terminal for the invocation;
// nothing is retried.
package deployer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
	"github.com/resumeai-labs/resumeai-cli/common/terminal"
	"github.com/resumeai-labs/resumeai-cli/internal/services/input"
	"github.com/resumeai-labs/resumeai-cli/tea/style"
)

type Deployer struct {
	terminal terminal.Terminal
	input    input.ServiceInterface
}

func New(term terminal.Terminal, in input.ServiceInterface) *Deployer {
	return &Deployer{
		terminal: term,
		input:    in,
	}
}

// Run executes one deployment attempt. Parameters live for this call only;
// whatever state survives is owned by the remote platform.
func (d *Deployer) Run(ctx context.Context, opts Options) error {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := d.terminal.GetWd()
		if err != nil {
			return eris.Wrap(err, "failed to resolve working directory")
		}
		workDir = wd
	}

	target := opts.Target
	if target == "" {
		selected, err := d.selectTarget(ctx)
		if err != nil {
			return err
		}
		target = selected
	}

	if err := checkAppFiles(workDir); err != nil {
		return err
	}
	if err := d.checkTools(target); err != nil {
		return err
	}

	params, err := d.collect(ctx, target, opts.Params, workDir)
	if err != nil {
		return err
	}

	d.printSummary(target, params)
	if !opts.Yes {
		confirmed, err := d.input.Confirm(ctx, style.QuestionIcon.Render()+"Proceed with deployment? (y/N)", "n")
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrCanceled
		}
	}

	switch target {
	case TargetStreamlitCloud:
		return d.publishStreamlitCloud(params)
	case TargetHuggingFace:
		return d.publishHuggingFace(params)
	case TargetCloudRun:
		return d.publishCloudRun(params)
	case TargetHeroku:
		return d.publishHeroku(params)
	case TargetLocalDocker:
		return d.publishLocalDocker(params)
	default:
		return eris.Errorf("unknown deployment target %q", target)
	}
}

func (d *Deployer) selectTarget(ctx context.Context) (Target, error) {
	targets := Targets()
	options := make([]string, 0, len(targets))
	for _, t := range targets {
		options = append(options, t.Label())
	}

	idx, err := d.input.Select(ctx, "Where do you want to deploy ResumeAI Helper?", "Select a target", options, -1)
	if err != nil {
		return "", eris.Wrap(err, "failed to select a deployment target")
	}
	return targets[idx], nil
}

// checkAppFiles verifies the working directory holds the app's entry point and
// container descriptor before anything touches a remote.
func checkAppFiles(dir string) error {
	for _, name := range []string{EntrypointFile, ContainerFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return eris.Errorf("required file %q not found in %s; run this command from the ResumeAI Helper root", name, dir)
		}
	}
	return nil
}

// checkTools verifies the CLI tooling and authenticated sessions the selected
// target relies on. Credentials themselves are never managed here.
func (d *Deployer) checkTools(target Target) error {
	switch target {
	case TargetStreamlitCloud, TargetHuggingFace:
		return d.requireTool("git", "https://github.com/git-guides/install-git")
	case TargetCloudRun:
		if err := d.requireTool("gcloud", "https://cloud.google.com/sdk/docs/install"); err != nil {
			return err
		}
		return d.checkGcloudAuth()
	case TargetHeroku:
		if err := d.requireTool("git", "https://github.com/git-guides/install-git"); err != nil {
			return err
		}
		if err := d.requireTool("heroku", "https://devcenter.heroku.com/articles/heroku-cli"); err != nil {
			return err
		}
		return d.checkHerokuAuth()
	case TargetLocalDocker:
		if err := d.requireTool("docker", "https://docs.docker.com/engine/install/"); err != nil {
			return err
		}
		if _, err := d.terminal.Exec("docker", "info"); err != nil {
			return eris.Wrap(err, "the Docker daemon is not running; start it and try again")
		}
		return nil
	default:
		return eris.Errorf("unknown deployment target %q", target)
	}
}

func (d *Deployer) requireTool(name, installURL string) error {
	if _, err := d.terminal.Exec(name, "--version"); err != nil {
		return eris.Errorf("%s is required for this target but was not found. Install it first: %s", name, installURL)
	}
	return nil
}

func (d *Deployer) checkGcloudAuth() error {
	out, err := d.terminal.Exec("gcloud", "auth", "list", "--filter=status:ACTIVE", "--format=value(account)")
	if err != nil {
		return eris.Wrap(err, "failed to check gcloud authentication")
	}
	if strings.TrimSpace(out) == "" {
		return eris.New("no active gcloud authentication session found. Run 'gcloud auth login' and try again")
	}
	return nil
}

func (d *Deployer) checkHerokuAuth() error {
	if _, err := d.terminal.Exec("heroku", "auth:whoami"); err != nil {
		return eris.Wrap(err, "not authenticated with Heroku. Run 'heroku login' and try again")
	}
	return nil
}

// collect fills in the target's parameters, prompting only for what the seed
// does not already carry.
func (d *Deployer) collect(ctx context.Context, target Target, seed Params, workDir string) (Params, error) {
	p := seed
	var err error

	switch target {
	case TargetStreamlitCloud:
		if p.RepoURL == "" {
			// Blank keeps the existing origin remote.
			p.RepoURL, err = d.input.Prompt(ctx, "GitHub repository URL (blank to reuse the origin remote)", "")
			if err != nil {
				return p, eris.Wrap(err, "failed to read repository URL")
			}
			p.RepoURL = strings.TrimSpace(p.RepoURL)
		}
	case TargetHuggingFace:
		if p.Username == "" {
			p.Username, err = d.promptRequired(ctx, "Hugging Face username", "")
			if err != nil {
				return p, err
			}
		}
		if p.SpaceName == "" {
			p.SpaceName, err = d.promptRequired(ctx, "Space name", DefaultSpaceName)
			if err != nil {
				return p, err
			}
		}
	case TargetCloudRun:
		if p.ProjectID == "" {
			p.ProjectID, err = d.promptRequired(ctx, "Google Cloud project ID", "")
			if err != nil {
				return p, err
			}
		}
		if p.Region == "" {
			p.Region, err = d.promptRequired(ctx, "Region", DefaultRegion)
			if err != nil {
				return p, err
			}
		}
		if err := d.promptAPIKey(ctx, &p, workDir); err != nil {
			return p, err
		}
	case TargetHeroku:
		if p.AppName == "" {
			p.AppName, err = d.promptRequired(ctx, "Heroku app name", "")
			if err != nil {
				return p, err
			}
		}
		if err := d.promptAPIKey(ctx, &p, workDir); err != nil {
			return p, err
		}
	case TargetLocalDocker:
		if err := d.promptAPIKey(ctx, &p, workDir); err != nil {
			return p, err
		}
	}

	return p, nil
}

func (d *Deployer) promptRequired(ctx context.Context, label, defaultValue string) (string, error) {
	value, err := d.input.Prompt(ctx, label, defaultValue)
	if err != nil {
		return "", eris.Wrapf(err, "failed to read %s", label)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", eris.Errorf("%s is required", label)
	}
	return value, nil
}

// promptAPIKey asks for the Gemini key. A .env file in the app root, the app's
// own convention, pre-fills the default.
func (d *Deployer) promptAPIKey(ctx context.Context, p *Params, workDir string) error {
	if p.APIKey != "" {
		return nil
	}

	defaultValue := ""
	if env, err := godotenv.Read(filepath.Join(workDir, ".env")); err == nil {
		defaultValue = env[APIKeyEnvVar]
	}

	key, err := d.promptRequired(ctx, "Google Gemini API key", defaultValue)
	if err != nil {
		return err
	}
	p.APIKey = key
	return nil
}

func (d *Deployer) printSummary(target Target, p Params) {
	printer.NewLine(1)
	printer.Headerln("Deployment summary")
	printSummaryLine("Target", target.Label())

	switch target {
	case TargetStreamlitCloud:
		if p.RepoURL != "" {
			printSummaryLine("Repository", p.RepoURL)
		} else {
			printSummaryLine("Repository", "existing origin remote")
		}
	case TargetHuggingFace:
		printSummaryLine("Space", SpaceURL(p.Username, p.SpaceName))
	case TargetCloudRun:
		printSummaryLine("Project", p.ProjectID)
		printSummaryLine("Region", p.Region)
		printSummaryLine("API key", maskKey(p.APIKey))
	case TargetHeroku:
		printSummaryLine("App", p.AppName)
		printSummaryLine("API key", maskKey(p.APIKey))
	case TargetLocalDocker:
		printSummaryLine("Image", ImageName)
		printSummaryLine("Port", AppPort)
		printSummaryLine("API key", maskKey(p.APIKey))
	}
}

func printSummaryLine(name, value string) {
	printer.Infof("%s%s: %s\n", style.ChevronIcon.Render(), name, value)
}

// maskKey hides all but the last four characters of a key in the summary. The
// real value still passes through to the publish sequence untouched.
func maskKey(key string) string {
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
