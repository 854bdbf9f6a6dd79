package deployer

import (
	"github.com/rotisserie/eris"
)

// The app's collaborator contract: these names are fixed by the ResumeAI Helper
// app itself and by its Dockerfile.
const (
	// EntrypointFile is the Streamlit entry point the app must expose.
	EntrypointFile = "app.py"
	// ContainerFile is the container descriptor used by the container targets.
	ContainerFile = "Dockerfile"
	// APIKeyEnvVar is the environment variable the app reads its Gemini key from.
	APIKeyEnvVar = "GEMINI_API_KEY"
	// AppPort is the port the app listens on inside its container.
	AppPort = "8501"
)

const (
	// ImageName doubles as the local docker image tag and the Cloud Run service name.
	ImageName = "resumeai-helper"
	// DefaultSpaceName is used when no Hugging Face space name is given.
	DefaultSpaceName = "resume-ai-helper"
	// DefaultRegion is the default Cloud Run region.
	DefaultRegion = "us-central1"
	// CommitMessage is the fixed message used by the git-based targets.
	CommitMessage = "Deploy ResumeAI Helper"

	mainBranch       = "main"
	originRemoteName = "origin"
	spaceRemoteName  = "space"
	herokuRemoteName = "heroku"
)

// ErrCanceled is returned when the user declines the confirmation prompt.
var ErrCanceled = eris.New("deployment canceled")

// Params holds the per-target deployment parameters. Values pass through to the
// external tools verbatim; only non-emptiness is checked.
type Params struct {
	// RepoURL is the GitHub repository pushed to for Streamlit Cloud. Empty
	// means reuse the existing origin remote.
	RepoURL string
	// Username and SpaceName address the Hugging Face Space as owner/name.
	Username  string
	SpaceName string
	// ProjectID and Region select where the Cloud Run service is created.
	ProjectID string
	Region    string
	// AppName is the Heroku application name.
	AppName string
	// APIKey is the Google Gemini key handed to the deployed app.
	APIKey string
}

// Options configures a single dispatcher run. Anything left zero is resolved
// interactively through the input service.
type Options struct {
	// Target to publish to; empty prompts with a numbered menu.
	Target Target
	// Params seeds parameter collection; missing fields are prompted for.
	Params Params
	// Yes skips the confirmation gate.
	Yes bool
	// WorkDir is the app root; empty means the current directory.
	WorkDir string
}
