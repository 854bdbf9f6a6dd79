package deployer

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

// publishHeroku creates or reuses the named app, sets the API key as a config
// var, and pushes to Heroku's git remote.
func (d *Deployer) publishHeroku(p Params) error {
	if _, err := d.terminal.Exec("heroku", "apps:info", "--app", p.AppName); err != nil {
		if _, err := d.terminal.Exec("heroku", "create", p.AppName); err != nil {
			return eris.Wrapf(err, "failed to create Heroku app %q", p.AppName)
		}
	} else {
		printer.Infof("Reusing existing Heroku app %s\n", p.AppName)
	}

	if _, err := d.terminal.Exec("heroku", "config:set", APIKeyEnvVar+"="+p.APIKey, "--app", p.AppName); err != nil {
		return eris.Wrap(err, "failed to set the API key config var")
	}

	if err := d.ensureRemote(herokuRemoteName, fmt.Sprintf("https://git.heroku.com/%s.git", p.AppName)); err != nil {
		return err
	}
	if _, err := d.git("push", herokuRemoteName, mainBranch); err != nil {
		return eris.Wrap(err, "failed to push to Heroku")
	}

	printer.Successf("Deployed at https://%s.herokuapp.com\n", p.AppName)
	return nil
}
