package rebot

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-version"
)

// Oldest Robot Framework release whose output schema this tool is tested
// against.
const minSupportedRobotFrameworkMajorVersion = 4

// First line of `rebot --version`: "Rebot 6.1.1 (Robot Framework 6.1.1 on ...)".
var versionPattern = regexp.MustCompile(`Rebot (\d+(?:\.\d+)*)`)

// Runner generates HTML logs from chunk XML files via the rebot tool.
type Runner interface {
	CheckInstall() (*version.Version, error)
	WriteLog(xmlPath, logPath, testName string, additionalArgs []string) error
}

type runner struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewRunner ...
func NewRunner(logger log.Logger, commandFactory command.Factory) Runner {
	return &runner{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// CheckInstall detects the installed rebot tool and returns its version.
func (r *runner) CheckInstall() (*version.Version, error) {
	cmd := r.commandFactory.Create("rebot", []string{"--version"}, nil)

	// rebot exits with a non-zero information return code after printing its
	// version, so the exit status alone does not mean the tool is missing.
	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	match := versionPattern.FindStringSubmatch(out)
	if match == nil {
		if err != nil {
			return nil, fmt.Errorf("rebot is not installed or not in PATH: %s", err)
		}
		return nil, fmt.Errorf("failed to parse rebot version from: %s", out)
	}

	rebotVersion, err := version.NewVersion(match[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse rebot version (%s): %s", match[1], err)
	}

	if rebotVersion.Segments()[0] < minSupportedRobotFrameworkMajorVersion {
		r.logger.Warnf("Robot Framework %s is older than the oldest supported major version (%d), generated logs may be incomplete", rebotVersion, minSupportedRobotFrameworkMajorVersion)
	}

	return rebotVersion, nil
}

// WriteLog renders the HTML log of one chunk XML file. The chunk's test
// status must not drive the exit code, so --nostatusrc is always passed:
// a non-zero exit means a real rebot error.
func (r *runner) WriteLog(xmlPath, logPath, testName string, additionalArgs []string) error {
	args := []string{"--output", "NONE", "--log", logPath, "--name", testName, "--nostatusrc"}
	args = append(args, additionalArgs...)
	args = append(args, xmlPath)

	var outBuffer bytes.Buffer
	cmd := r.commandFactory.Create("rebot", args, &command.Opts{
		Stdout: &outBuffer,
		Stderr: &outBuffer,
	})

	r.logger.Debugf("$ %s", cmd.PrintableCommandArgs())

	var err error
	progress.SimpleProgress(".", 10*time.Second, func() {
		err = cmd.Run()
	})
	if err != nil {
		return fmt.Errorf("rebot failed: %s, output: %s", err, outBuffer.String())
	}
	return nil
}
