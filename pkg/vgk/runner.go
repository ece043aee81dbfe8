// SPDX-License-Identifier: Apache-2.0
package vgk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Runner invokes the VGK executables out of a fixed directory. The two
// tools share identical spawn, timeout and error-capture mechanics and
// differ only in the payload written to their standard input.
//
// Invocations are synchronous and independent; a Runner holds no state
// between calls and is safe to reuse. Tool outputs land in the
// caller's working directory, not beside the executables.
type Runner struct {
	dir     string
	timeout time.Duration
	logger  hclog.Logger
}

// RunnerOption configures a Runner at construction.
type RunnerOption func(*Runner)

// WithDir sets the directory holding vgkcon.exe and vgk.exe.
func WithDir(dir string) RunnerOption {
	return func(r *Runner) { r.dir = dir }
}

// WithTimeout bounds how long each tool may run before it is killed.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = timeout }
}

// WithLogger routes the Runner's diagnostics. The default discards
// them.
func WithLogger(logger hclog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a Runner with the default directory and timeout.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		dir:     DefaultDir,
		timeout: DefaultTimeout,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunVGKCON streams a configuration deck to vgkcon.exe.
func (r *Runner) RunVGKCON(ctx context.Context, deck []byte) (Result, error) {
	return r.run(ctx, VGKCONExe, deck)
}

// RunVGK hands the named artifact to the vgk.exe solver. The filename
// must carry the .sir extension; vgkcon writes it during a successful
// pass over the same base name.
func (r *Runner) RunVGK(ctx context.Context, filename string) (Result, error) {
	return r.run(ctx, VGKExe, []byte(filename+"\n"))
}

// run spawns one tool, writes the payload to its stdin and waits for
// it, bounded by the Runner's timeout. The child is killed on every
// abnormal exit path before run returns.
func (r *Runner) run(ctx context.Context, tool string, payload []byte) (Result, error) {
	exe := filepath.Join(r.dir, tool)
	if filepath.Base(exe) == exe {
		// A bare name would fall through to a $PATH lookup; the tools
		// always live in the run directory.
		exe = "." + string(filepath.Separator) + exe
	}
	r.logger.Debug("🚀 Launching tool", "exe", exe, "timeout", r.timeout, "payload_bytes", len(payload))

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		r.logger.Error("❌ Tool timed out", "exe", exe, "timeout", r.timeout)
		return Result{}, &TimeoutError{Tool: tool, Timeout: r.timeout}
	}
	if ctx.Err() == context.Canceled {
		return Result{}, ctx.Err()
	}

	res := Result{
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: elapsed,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Debug("⏹️ Tool exited", "exe", exe, "code", res.ExitCode, "duration", elapsed)
			return res, nil
		}
		r.logger.Error("❌ Failed to launch tool", "exe", exe, "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}

	r.logger.Debug("✅ Tool completed", "exe", exe, "duration", elapsed)
	return res, nil
}
