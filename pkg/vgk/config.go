// Package vgk builds validated input decks for ESDU's VGK aerofoil
// analysis tools and runs them as subprocesses.
//
// A deck is assembled through Config, rendered with Encode and fed to
// vgkcon.exe by a Runner; a successful pass leaves a .sir artifact in
// the working directory which the vgk.exe solver consumes on a second
// invocation. Every parameter is validated at assignment time, so a
// Config that exists always serializes to a deck the tools accept.
package vgk

import (
	"regexp"
	"unicode/utf8"
)

var (
	filenameRe     = regexp.MustCompile(`^[a-zA-Z0-9]{1,8}$`)
	datfileRe      = regexp.MustCompile(`^[a-zA-Z0-9]{1,8}\.dat$`)
	continuationRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,8}$`)
)

// Config holds one validated VGK parameter set. Fields store the
// canonical form the tools expect on the wire: booleans as their
// literal tokens, Reynolds already divided by a million. The zero
// value is not usable; construct through New.
type Config struct {
	filename  string
	title     string
	viscous   string // ViscousToken or InviscidToken
	datfile   string
	mach      float64
	incidence float64
	reynolds  float64 // caller value / ReynoldsScale
	xtu       float64
	xtl       float64

	continuation string     // "" means a fresh run
	lift         floatParam // unset means the tool derives it

	outputTOS        string
	outputGridData   string
	outputBinaryDump string // accepted but absent from the deck

	// tuned latches the first real advanced-parameter assignment and
	// stays set for the life of the Config, even across ResetAdvanced.
	tuned bool

	fineMeshGridlines        intParam
	coarseMeshIterations     intParam
	fineMeshIterations       intParam
	overRelaxation           floatParam
	underRelaxation          floatParam
	coarseRelaxationFactor   floatParam
	coarseInviscidIterations intParam
	fineRelaxationFactor     floatParam
	fineInviscidIterations   intParam
	dd21                     floatParam
	dd22                     floatParam
	artificialViscosity      floatParam
	partiallyConservative    floatParam
}

// Option applies an optional parameter during New. Each option routes
// through the matching exported setter, so it validates the same way.
type Option func(*Config) error

func WithTitle(title string) Option {
	return func(c *Config) error { return c.SetTitle(title) }
}

func WithContinuation(id string) Option {
	return func(c *Config) error { return c.SetContinuation(id) }
}

func WithLift(lift float64) Option {
	return func(c *Config) error { return c.SetLift(lift) }
}

func WithOutputTOS(enabled bool) Option {
	return func(c *Config) error { c.SetOutputTOS(enabled); return nil }
}

func WithOutputGridData(enabled bool) Option {
	return func(c *Config) error { c.SetOutputGridData(enabled); return nil }
}

func WithOutputBinaryDump(enabled bool) Option {
	return func(c *Config) error { c.SetOutputBinaryDump(enabled); return nil }
}

// New constructs a Config from the mandatory parameters and applies
// any options. The first validation failure aborts construction.
func New(filename string, viscous bool, datfile string, mach, incidence, reynolds, xtu, xtl float64, opts ...Option) (*Config, error) {
	c := &Config{
		outputTOS:        TokenNo,
		outputGridData:   TokenNo,
		outputBinaryDump: TokenNo,
	}
	c.SetViscous(viscous)

	if err := c.SetFilename(filename); err != nil {
		return nil, err
	}
	if err := c.SetDatfile(datfile); err != nil {
		return nil, err
	}
	if err := c.SetMach(mach); err != nil {
		return nil, err
	}
	if err := c.SetIncidence(incidence); err != nil {
		return nil, err
	}
	if err := c.SetReynolds(reynolds); err != nil {
		return nil, err
	}
	if err := c.SetXTU(xtu); err != nil {
		return nil, err
	}
	if err := c.SetXTL(xtl); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetFilename sets the input/output base name shared by the whole run.
func (c *Config) SetFilename(filename string) error {
	if !filenameRe.MatchString(filename) {
		return &ArgumentError{Field: "filename", Value: filename, Constraint: "1-8 alphanumeric characters"}
	}
	c.filename = filename
	return nil
}

// Filename returns the run's base name, used to locate tool outputs.
func (c *Config) Filename() string { return c.filename }

// SetTitle sets the free-text description written into the deck.
func (c *Config) SetTitle(title string) error {
	if utf8.RuneCountInString(title) > TitleMaxLength {
		return &ArgumentError{Field: "title", Value: title, Constraint: "at most 68 characters"}
	}
	c.title = title
	return nil
}

// SetViscous selects a viscous (true) or inviscid (false) run.
func (c *Config) SetViscous(viscous bool) {
	if viscous {
		c.viscous = ViscousToken
	} else {
		c.viscous = InviscidToken
	}
}

// SetDatfile names the aerofoil design-coordinates file, extension
// included.
func (c *Config) SetDatfile(datfile string) error {
	if !datfileRe.MatchString(datfile) {
		return &ArgumentError{Field: "datfile", Value: datfile, Constraint: "1-8 alphanumeric characters followed by .dat"}
	}
	c.datfile = datfile
	return nil
}

// SetMach sets the freestream Mach number.
func (c *Config) SetMach(mach float64) error {
	if mach < 0.05 || mach > 0.95 {
		return &ArgumentError{Field: "mach", Value: mach, Constraint: "in the range [0.05, 0.95]"}
	}
	c.mach = mach
	return nil
}

// SetIncidence sets the angle of incidence in degrees.
func (c *Config) SetIncidence(incidence float64) error {
	if incidence < -20 || incidence > 20 {
		return &ArgumentError{Field: "incidence", Value: incidence, Constraint: "in the range [-20, 20]"}
	}
	c.incidence = incidence
	return nil
}

// SetReynolds sets the Reynolds number. The value is stored divided by
// a million, the unit the tools read.
func (c *Config) SetReynolds(reynolds float64) error {
	if reynolds < MinReynolds {
		return &ArgumentError{Field: "reynolds", Value: reynolds, Constraint: "at least 1e5"}
	}
	c.reynolds = reynolds / ReynoldsScale
	return nil
}

// SetXTU sets the upper-surface transition location as a chord
// fraction.
func (c *Config) SetXTU(xtu float64) error {
	if xtu < 0.01 || xtu > 1 {
		return &ArgumentError{Field: "xtu", Value: xtu, Constraint: "in the range [0.01, 1.00]"}
	}
	c.xtu = xtu
	return nil
}

// SetXTL sets the lower-surface transition location as a chord
// fraction.
func (c *Config) SetXTL(xtl float64) error {
	if xtl < 0.01 || xtl > 1 {
		return &ArgumentError{Field: "xtl", Value: xtl, Constraint: "in the range [0.01, 1.00]"}
	}
	c.xtl = xtl
	return nil
}

// SetContinuation resumes the run from a previously saved binary dump.
// The id is the dump's base name only; the tool appends its own file
// extension.
func (c *Config) SetContinuation(id string) error {
	if !continuationRe.MatchString(id) {
		return &ArgumentError{Field: "continuation", Value: id, Constraint: "1-8 characters of [A-Za-z0-9_-]"}
	}
	c.continuation = id
	return nil
}

// ClearContinuation returns the Config to a fresh run.
func (c *Config) ClearContinuation() { c.continuation = "" }

// SetLift pins the coefficient of lift instead of letting the tool
// derive it from the angle of incidence. Zero is a legitimate pinned
// value and still serializes.
func (c *Config) SetLift(lift float64) error {
	if lift < 0 || lift > 1 {
		return &ArgumentError{Field: "lift", Value: lift, Constraint: "in the range [0, 1]"}
	}
	c.lift = floatParam{value: lift, set: true}
	return nil
}

// ClearLift hands the coefficient of lift back to the tool.
func (c *Config) ClearLift() { c.lift = floatParam{} }

// UserDefinedLift reports whether a caller-pinned lift coefficient
// will be written to the deck.
func (c *Config) UserDefinedLift() bool { return c.lift.set }

// SetOutputTOS toggles writing the TOS output file.
func (c *Config) SetOutputTOS(enabled bool) { c.outputTOS = yesNo(enabled) }

// SetOutputGridData toggles writing the grid-data output file.
func (c *Config) SetOutputGridData(enabled bool) { c.outputGridData = yesNo(enabled) }

// SetOutputBinaryDump toggles writing the binary state dump. The flag
// is held for callers to inspect but the deck has no line for it; the
// tool decides from the continuation state alone.
func (c *Config) SetOutputBinaryDump(enabled bool) { c.outputBinaryDump = yesNo(enabled) }

// OutputBinaryDump reports the stored binary-dump preference.
func (c *Config) OutputBinaryDump() bool { return c.outputBinaryDump == TokenYes }

func yesNo(enabled bool) string {
	if enabled {
		return TokenYes
	}
	return TokenNo
}
