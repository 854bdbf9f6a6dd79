package deployer

import (
	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

// publishLocalDocker builds the image from the local Dockerfile and starts a
// detached container with the API key injected and the app port published.
func (d *Deployer) publishLocalDocker(p Params) error {
	if _, err := d.terminal.Exec("docker", "build", "-t", ImageName, "."); err != nil {
		return eris.Wrap(err, "docker build failed")
	}

	if _, err := d.terminal.Exec("docker", "run", "-d",
		"-p", AppPort+":"+AppPort,
		"-e", APIKeyEnvVar+"="+p.APIKey,
		ImageName,
	); err != nil {
		return eris.Wrap(err, "docker run failed")
	}

	printer.Successf("ResumeAI Helper is running at http://localhost:%s\n", AppPort)
	printer.Infof("Stop it with: docker ps --filter ancestor=%s and docker stop <id>\n", ImageName)
	return nil
}
