package terminal

import (
	"bytes"
	"os"
	"strings"

	"github.com/magefile/mage/sh"
	"github.com/rotisserie/eris"

	"github.com/resumeai-labs/resumeai-cli/common/logger"
)

// Terminal runs external commands. Publish sequences go through this interface
// so tests can swap in a mock instead of invoking real tooling.
type Terminal interface {
	Exec(name string, args ...string) (string, error)
	GetWd() (string, error)
}

type terminal struct {
}

func New() Terminal {
	return &terminal{}
}

// Exec runs a command and returns its combined output. On failure the tool's
// own output is carried in the error so it reaches the user verbatim.
func (t *terminal) Exec(name string, args ...string) (string, error) {
	logger.Debugf("Executing: %s %s", name, strings.Join(args, " "))

	var outBuff, errBuff bytes.Buffer
	_, err := sh.Exec(nil, &outBuff, &errBuff, name, args...)
	output := strings.TrimSpace(outBuff.String() + errBuff.String())
	if err != nil {
		return output, eris.Errorf("%s %s failed: %s", name, strings.Join(args, " "), output)
	}
	return output, nil
}

func (t *terminal) GetWd() (string, error) {
	return os.Getwd()
}
