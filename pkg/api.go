package pkg

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/ndsanders/pyvgk/internal/casefile"
	"github.com/ndsanders/pyvgk/internal/rundir"
	"github.com/ndsanders/pyvgk/pkg/logging"
	"github.com/ndsanders/pyvgk/pkg/vgk"
)

// RunCase drives a full VGK pass from a JSON case file: assemble the
// deck, feed it to vgkcon.exe and, when solve is set, hand the
// resulting .sir artifact to the vgk.exe solver. The return value is
// the process exit code for the CLI.
func RunCase(casePath, dir string, timeout time.Duration, deckOnly, solve bool) int {
	return RunCaseWithLogLevel(casePath, dir, timeout, deckOnly, solve, "")
}

// RunCaseWithLogLevel runs a case with explicit log level control.
func RunCaseWithLogLevel(casePath, dir string, timeout time.Duration, deckOnly, solve bool, cliLogLevel string) int {
	logger := logging.NewCommandLogger("pyvgk-runner", cliLogLevel)
	logger.Info("PyVGK runner starting...", "case", casePath)

	c, err := casefile.Load(casePath)
	if err != nil {
		logger.Error("❌ Failed to load case file", "error", err)
		return vgk.ExitCaseError
	}

	cfg, err := c.Config()
	if err != nil {
		logger.Error("❌ Case rejected", "error", err)
		return vgk.ExitDeckError
	}

	deck := cfg.Encode()
	logger.Debug("📝 Deck assembled", "filename", cfg.Filename(), "bytes", len(deck))

	if deckOnly {
		if err := cfg.WriteDeck(os.Stdout); err != nil {
			logger.Error("❌ Failed to write deck", "error", err)
			return vgk.ExitIOError
		}
		return vgk.ExitOK
	}

	if err := rundir.CheckTools(dir, solve); err != nil {
		logger.Error("❌ Run directory unusable", "error", err, "dir", dir)
		return vgk.ExitIOError
	}

	runner := vgk.NewRunner(vgk.WithDir(dir), vgk.WithTimeout(timeout), vgk.WithLogger(logger))
	ctx := context.Background()

	res, err := runner.RunVGKCON(ctx, deck)
	if err != nil {
		return exitFor(err)
	}
	if res.Failed() {
		logger.Error("❌ vgkcon reported failure", "code", res.ExitCode, "stderr", res.Stderr)
		return vgk.ExitToolFailure
	}
	logger.Info("✅ vgkcon completed", "duration", res.Duration)

	if !solve {
		return vgk.ExitOK
	}

	sir := cfg.Filename() + ".sir"
	if !rundir.HasArtifact(sir) {
		logger.Error("❌ Solver input missing", "artifact", sir)
		return vgk.ExitIOError
	}

	res, err = runner.RunVGK(ctx, sir)
	if err != nil {
		return exitFor(err)
	}
	if res.Failed() {
		logger.Error("❌ vgk reported failure", "code", res.ExitCode, "stderr", res.Stderr)
		return vgk.ExitToolFailure
	}
	logger.Info("✅ vgk completed", "duration", res.Duration)

	return vgk.ExitOK
}

// exitFor maps runner errors to exit codes. The runner has already
// logged the failure and killed the child where applicable.
func exitFor(err error) int {
	if errors.Is(err, vgk.ErrTimeout) {
		return vgk.ExitTimeout
	}
	return vgk.ExitIOError
}
