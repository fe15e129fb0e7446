package analysis

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// Report is the verbatim output of one static-analysis run. A non-zero
// exit code means findings, not failure.
type Report struct {
	Path     string `json:"path"`
	Output   string `json:"output"`
	ExitCode int    `json:"exit_code"`
	Clean    bool   `json:"clean"`
}

// Runner shells out to the app's phpstan binary.
type Runner struct {
	appPath string
	timeout time.Duration
}

// NewRunner builds a runner rooted at the Laravel app path.
func NewRunner(appPath string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Runner{appPath: appPath, timeout: timeout}
}

// Analyze runs `vendor/bin/phpstan analyse <relPath>` and captures its
// combined output verbatim. Only a failure to run the process at all
// (missing binary, timeout) is an error; analysis findings come back as a
// normal Report.
func (r *Runner) Analyze(ctx context.Context, relPath string) (*Report, error) {
	if relPath == "" {
		return nil, types.Usagef("path is required")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	bin := filepath.Join(r.appPath, "vendor", "bin", "phpstan")
	cmd := exec.CommandContext(ctx, bin, "analyse", "--no-progress", relPath)
	cmd.Dir = r.appPath

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, types.Collaboratorf(ctx.Err(), "phpstan timed out after %s", r.timeout)
	}

	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, types.Collaboratorf(err, "unable to run phpstan")
		}
		exitCode = exitErr.ExitCode()
	}

	return &Report{
		Path:     relPath,
		Output:   out.String(),
		ExitCode: exitCode,
		Clean:    exitCode == 0,
	}, nil
}
