package dependency

import (
	"errors"
	"os/exec"

	"github.com/rotisserie/eris"
)

var (
	Git = Dependency{
		Name: "Git",
		Cmd:  exec.Command("git", "--version"),
		Help: `Git is required to push the app to Streamlit Cloud, Hugging Face Spaces, and Heroku.
Learn how to install Git: https://github.com/git-guides/install-git`,
	}
	Docker = Dependency{
		Name: "Docker",
		Cmd:  exec.Command("docker", "--version"),
		Help: `Docker is required to build and run the app locally.
Learn how to install Docker: https://docs.docker.com/engine/install/`,
	}
	DockerDaemon = Dependency{
		Name: "Docker daemon is running",
		Cmd:  exec.Command("docker", "info"),
		Help: `Docker daemon needs to be running.
If you use Docker Desktop, make sure that you have ran it`,
	}
	GCloud = Dependency{
		Name: "Google Cloud CLI",
		Cmd:  exec.Command("gcloud", "--version"),
		Help: `The gcloud CLI is required to deploy to Google Cloud Run.
Learn how to install it: https://cloud.google.com/sdk/docs/install`,
	}
	Heroku = Dependency{
		Name: "Heroku CLI",
		Cmd:  exec.Command("heroku", "--version"),
		Help: `The Heroku CLI is required to deploy to Heroku.
Learn how to install it: https://devcenter.heroku.com/articles/heroku-cli`,
	}
	AlwaysFail = Dependency{
		Name: "Always fails",
		Cmd:  exec.Command("false"),
		Help: `This dependency check will always fail. It can be used for testing.`,
	}
)

// DeployDependencies is the set of tools checked by `resumeai doctor`.
// Not every deployment target needs every one of them.
var DeployDependencies = []Dependency{Git, Docker, DockerDaemon, GCloud, Heroku}

type Dependency struct {
	Name string
	Cmd  *exec.Cmd
	Help string
}

func (d Dependency) Check() error {
	if err := d.Cmd.Run(); err != nil {
		return eris.Wrapf(err, "dependency check %q failed with", d.Name)
	}
	return nil
}

func Check(deps ...Dependency) error {
	errs := make([]error, 0, len(deps))
	for _, dep := range deps {
		errs = append(errs, dep.Check())
	}
	return errors.Join(errs...)
}
