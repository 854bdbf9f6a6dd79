package deployer

import (
	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/printer"
)

const cloudRunAPI = "run.googleapis.com"

// publishCloudRun runs a source-based deploy: gcloud builds the container from
// the local Dockerfile and creates the service in the given region.
func (d *Deployer) publishCloudRun(p Params) error {
	if _, err := d.terminal.Exec("gcloud", "config", "set", "project", p.ProjectID); err != nil {
		return eris.Wrapf(err, "failed to set the active project to %q", p.ProjectID)
	}
	if _, err := d.terminal.Exec("gcloud", "services", "enable", cloudRunAPI); err != nil {
		return eris.Wrap(err, "failed to enable the Cloud Run API")
	}

	out, err := d.terminal.Exec("gcloud", "run", "deploy", ImageName,
		"--source", ".",
		"--region", p.Region,
		"--allow-unauthenticated",
		"--set-env-vars", APIKeyEnvVar+"="+p.APIKey,
	)
	if err != nil {
		return eris.Wrap(err, "cloud run deploy failed")
	}
	if out != "" {
		printer.Infoln(out)
	}

	printer.Successln("Deployed to Google Cloud Run")
	printer.Infoln("The service URL is shown in the gcloud output above. To see it again, run:")
	printer.Infof("  gcloud run services describe %s --region %s\n", ImageName, p.Region)
	return nil
}
