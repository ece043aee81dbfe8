package vgk

import "time"

// =================================
// Tool executables
// =================================
const (
	// VGKCONExe assembles the run from a configuration deck on stdin.
	VGKCONExe = "vgkcon.exe"
	// VGKExe solves the flow from the .sir artifact vgkcon leaves behind.
	VGKExe = "vgk.exe"
)

// =================================
// Invocation defaults
// =================================
const (
	DefaultDir     = "."
	DefaultTimeout = 5 * time.Second
)

// =================================
// Deck tokens
// =================================
const (
	TokenYes        = "yes"
	TokenNo         = "no"
	ViscousToken    = "1"
	InviscidToken   = "0"
	DefaultSentinel = "d" // advanced parameter left to the tool's default
)

// =================================
// Field limits
// =================================
const (
	TitleMaxLength = 68
	MinReynolds    = 1e5
	ReynoldsScale  = 1e6 // the tools expect Reynolds divided by a million
)

// =================================
// Runner CLI exit codes
// =================================
const (
	ExitOK          = 0
	ExitCaseError   = 102
	ExitDeckError   = 103
	ExitToolFailure = 104
	ExitTimeout     = 105
	ExitIOError     = 106
)
