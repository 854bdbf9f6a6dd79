package deployer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

// SpaceURL computes the address of a Hugging Face Space. The same URL doubles
// as the Space's git remote.
func SpaceURL(username, spaceName string) string {
	return fmt.Sprintf("https://huggingface.co/spaces/%s/%s", username, spaceName)
}

func (d *Deployer) git(args ...string) (string, error) {
	return d.terminal.Exec("git", args...)
}

// stageAndCommit stages everything and commits with the fixed deploy message.
// A clean tree is not an error; the push can still carry earlier commits.
func (d *Deployer) stageAndCommit() error {
	if _, err := d.git("add", "-A"); err != nil {
		return eris.Wrap(err, "failed to stage changes")
	}

	out, err := d.git("commit", "-m", CommitMessage)
	if err != nil && !strings.Contains(out, "nothing to commit") {
		return eris.Wrap(err, "failed to commit changes")
	}
	return nil
}

// ensureRemote makes sure a remote with the given name points at url. An empty
// url accepts whatever the remote already points at.
func (d *Deployer) ensureRemote(name, url string) error {
	current, err := d.git("remote", "get-url", name)
	if err == nil {
		if url == "" || strings.TrimSpace(current) == url {
			return nil
		}
		if _, err := d.git("remote", "set-url", name, url); err != nil {
			return eris.Wrapf(err, "failed to update the %q remote", name)
		}
		return nil
	}

	if url == "" {
		return eris.Errorf("no %q remote is configured and no repository URL was provided", name)
	}
	if _, err := d.git("remote", "add", name, url); err != nil {
		return eris.Wrapf(err, "failed to add the %q remote", name)
	}
	return nil
}

func (d *Deployer) publishStreamlitCloud(p Params) error {
	if err := d.stageAndCommit(); err != nil {
		return err
	}
	if err := d.ensureRemote(originRemoteName, p.RepoURL); err != nil {
		return err
	}
	if _, err := d.git("push", "-u", originRemoteName, mainBranch); err != nil {
		return eris.Wrap(err, "failed to push to GitHub")
	}

	printer.Successln("Pushed ResumeAI Helper to GitHub")
	printer.Infoln("Next steps:")
	printer.Infoln("  1. Open https://share.streamlit.io and sign in with GitHub")
	printer.Infoln("  2. Create an app from the repository with main file " + EntrypointFile)
	printer.Infoln("  3. Add " + APIKeyEnvVar + " under the app's Secrets settings")
	return nil
}

func (d *Deployer) publishHuggingFace(p Params) error {
	spaceURL := SpaceURL(p.Username, p.SpaceName)

	if err := d.stageAndCommit(); err != nil {
		return err
	}
	if err := d.ensureRemote(spaceRemoteName, spaceURL); err != nil {
		return err
	}
	if _, err := d.git("push", "-u", spaceRemoteName, mainBranch); err != nil {
		return eris.Wrap(err, "failed to push to the Space")
	}

	printer.Successf("Space published at %s\n", spaceURL)
	printer.Infoln("Set " + APIKeyEnvVar + " under the Space's Settings > Variables and secrets")
	return nil
}
