package deployer_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/resumeai-labs/resumeai-cli/internal/deployer"
)

func TestParseTarget(t *testing.T) {
	test := []struct {
		name    string
		in      string
		want    deployer.Target
		wantErr bool
	}{
		{name: "streamlit cloud", in: "streamlit-cloud", want: deployer.TargetStreamlitCloud},
		{name: "hugging face", in: "huggingface-spaces", want: deployer.TargetHuggingFace},
		{name: "cloud run", in: "cloud-run", want: deployer.TargetCloudRun},
		{name: "heroku", in: "heroku", want: deployer.TargetHeroku},
		{name: "local docker", in: "local-docker", want: deployer.TargetLocalDocker},
		{name: "case insensitive", in: "Cloud-Run", want: deployer.TargetCloudRun},
		{name: "surrounding whitespace", in: "  heroku ", want: deployer.TargetHeroku},
		{name: "unknown", in: "vercel", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deployer.ParseTarget(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown deployment target")
			} else {
				assert.NilError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTargetsMenuOrder(t *testing.T) {
	targets := deployer.Targets()
	assert.Equal(t, 5, len(targets))
	assert.Equal(t, deployer.TargetStreamlitCloud, targets[0])
	assert.Equal(t, deployer.TargetLocalDocker, targets[4])
}

func TestTargetLabels(t *testing.T) {
	assert.Equal(t, "Hugging Face Spaces", deployer.TargetHuggingFace.Label())
	assert.Equal(t, "Google Cloud Run", deployer.TargetCloudRun.Label())
}
