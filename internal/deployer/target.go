package deployer

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Target selects which publish sequence runs. Exactly one target is published
// per invocation.
type Target string

const (
	TargetStreamlitCloud Target = "streamlit-cloud"
	TargetHuggingFace    Target = "huggingface-spaces"
	TargetCloudRun       Target = "cloud-run"
	TargetHeroku         Target = "heroku"
	TargetLocalDocker    Target = "local-docker"
)

// Targets returns all supported targets in menu order.
func Targets() []Target {
	return []Target{
		TargetStreamlitCloud,
		TargetHuggingFace,
		TargetCloudRun,
		TargetHeroku,
		TargetLocalDocker,
	}
}

// Label returns the user-facing name of the target.
func (t Target) Label() string {
	switch t {
	case TargetStreamlitCloud:
		return "Streamlit Cloud"
	case TargetHuggingFace:
		return "Hugging Face Spaces"
	case TargetCloudRun:
		return "Google Cloud Run"
	case TargetHeroku:
		return "Heroku"
	case TargetLocalDocker:
		return "Local Docker"
	default:
		return string(t)
	}
}

// ParseTarget parses a target name as given on the command line or in a config
// file. Matching is case-insensitive.
func ParseTarget(s string) (Target, error) {
	normalized := Target(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Targets() {
		if normalized == t {
			return t, nil
		}
	}

	valid := make([]string, 0, len(Targets()))
	for _, t := range Targets() {
		valid = append(valid, string(t))
	}
	return "", eris.Errorf("unknown deployment target %q (valid targets: %s)", s, strings.Join(valid, ", "))
}
