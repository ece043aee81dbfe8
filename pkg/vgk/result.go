// SPDX-License-Identifier: Apache-2.0
package vgk

import "time"

// Result captures the outcome of a completed tool invocation. A
// nonzero ExitCode is the tool reporting failure, not a wrapper error:
// the caller decides how to treat it.
type Result struct {
	ExitCode int
	Stderr   string // whitespace-trimmed; "" when the tool was silent
	Duration time.Duration
}

// Failed reports whether the tool exited nonzero.
func (r Result) Failed() bool { return r.ExitCode != 0 }
