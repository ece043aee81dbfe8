package vgk

import (
	"errors"
	"strings"
	"testing"
)

// newTestConfig builds the reference configuration used across tests:
// a viscous RAE 2822 pass at Mach 0.7.
func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := New("example", true, "rae2822.dat", 0.7, 2.0, 6.04e6, 0.05, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

func TestNew_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		datfile   string
		mach      float64
		incidence float64
		reynolds  float64
		xtu       float64
		xtl       float64
		wantField string // "" means construction must succeed
	}{
		{
			name:     "reference case",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
		},
		{
			name:     "boundaries low",
			filename: "a", datfile: "a.dat",
			mach: 0.05, incidence: -20, reynolds: 1e5, xtu: 0.01, xtl: 0.01,
		},
		{
			name:     "boundaries high",
			filename: "abcd1234", datfile: "abcd1234.dat",
			mach: 0.95, incidence: 20, reynolds: 9e9, xtu: 1, xtl: 1,
		},
		{
			name:     "filename too long",
			filename: "toolongname", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "filename",
		},
		{
			name:     "filename empty",
			filename: "", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "filename",
		},
		{
			name:     "filename with separator",
			filename: "ex.mple", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "filename",
		},
		{
			name:     "datfile missing extension",
			filename: "example", datfile: "rae2822",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "datfile",
		},
		{
			name:     "datfile wrong extension",
			filename: "example", datfile: "rae2822.unf",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "datfile",
		},
		{
			name:     "datfile stem too long",
			filename: "example", datfile: "rae2822toolong.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "datfile",
		},
		{
			name:     "mach below range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.04, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "mach",
		},
		{
			name:     "mach above range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.96, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "mach",
		},
		{
			name:     "incidence above range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: 21, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "incidence",
		},
		{
			name:     "incidence below range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: -20.5, reynolds: 6.04e6, xtu: 0.05, xtl: 0.05,
			wantField: "incidence",
		},
		{
			name:     "reynolds below minimum",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 9.9e4, xtu: 0.05, xtl: 0.05,
			wantField: "reynolds",
		},
		{
			name:     "xtu below range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.005, xtl: 0.05,
			wantField: "xtu",
		},
		{
			name:     "xtl above range",
			filename: "example", datfile: "rae2822.dat",
			mach: 0.7, incidence: 2.0, reynolds: 6.04e6, xtu: 0.05, xtl: 1.01,
			wantField: "xtl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.filename, true, tt.datfile, tt.mach, tt.incidence, tt.reynolds, tt.xtu, tt.xtl)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("New() = %v, want success", err)
				}
				if cfg == nil {
					t.Fatal("New() returned nil Config without error")
				}
				return
			}

			if err == nil {
				t.Fatal("New() succeeded, want validation error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("errors.Is(err, ErrInvalidArgument) = false for %v", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error %v is not an *ArgumentError", err)
			}
			if argErr.Field != tt.wantField {
				t.Errorf("ArgumentError.Field = %q, want %q", argErr.Field, tt.wantField)
			}
		})
	}
}

func TestNew_OptionFailureAborts(t *testing.T) {
	_, err := New("example", true, "rae2822.dat", 0.7, 2.0, 6.04e6, 0.05, 0.05,
		WithLift(1.5))
	if err == nil {
		t.Fatal("New() succeeded with out-of-range lift option")
	}
	var argErr *ArgumentError
	if !errors.As(err, &argErr) || argErr.Field != "lift" {
		t.Errorf("got %v, want ArgumentError for lift", err)
	}
}

func TestSetTitle(t *testing.T) {
	cfg := newTestConfig(t)

	if err := cfg.SetTitle(strings.Repeat("x", 68)); err != nil {
		t.Errorf("SetTitle rejected a 68-character title: %v", err)
	}
	if err := cfg.SetTitle(strings.Repeat("x", 69)); err == nil {
		t.Error("SetTitle accepted a 69-character title")
	}
	// The limit counts characters, not bytes.
	if err := cfg.SetTitle(strings.Repeat("å", 68)); err != nil {
		t.Errorf("SetTitle rejected 68 multibyte characters: %v", err)
	}
}

func TestSetContinuation(t *testing.T) {
	cfg := newTestConfig(t)

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "dump1"},
		{name: "with hyphen and underscore", id: "a-b_c"},
		{name: "max length", id: "12345678"},
		{name: "too long", id: "123456789", wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "embedded extension", id: "dump.unf", wantErr: true},
		{name: "trailing junk rejected", id: "dump1!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.SetContinuation(tt.id)
			if tt.wantErr && err == nil {
				t.Errorf("SetContinuation(%q) succeeded, want error", tt.id)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("SetContinuation(%q) = %v, want success", tt.id, err)
			}
		})
	}

	if err := cfg.SetContinuation("dump1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ClearContinuation()
	if !strings.Contains(cfg.String(), "rae2822.dat") {
		t.Error("ClearContinuation did not restore the fresh-run block")
	}
}

func TestSetLift(t *testing.T) {
	cfg := newTestConfig(t)

	if cfg.UserDefinedLift() {
		t.Error("UserDefinedLift() = true before any lift was set")
	}
	if err := cfg.SetLift(1.01); err == nil {
		t.Error("SetLift accepted a value above 1")
	}
	if err := cfg.SetLift(-0.01); err == nil {
		t.Error("SetLift accepted a negative value")
	}
	if err := cfg.SetLift(0); err != nil {
		t.Errorf("SetLift rejected zero: %v", err)
	}
	if !cfg.UserDefinedLift() {
		t.Error("UserDefinedLift() = false after SetLift(0)")
	}
	cfg.ClearLift()
	if cfg.UserDefinedLift() {
		t.Error("UserDefinedLift() = true after ClearLift")
	}
}

func TestAdvancedSetters_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		apply   func(*Config) error
		wantErr bool
	}{
		{name: "gridlines lower bound", apply: func(c *Config) error { return c.SetFineMeshGridlines(96) }},
		{name: "gridlines upper bound", apply: func(c *Config) error { return c.SetFineMeshGridlines(169) }},
		{name: "gridlines below range", apply: func(c *Config) error { return c.SetFineMeshGridlines(95) }, wantErr: true},
		{name: "gridlines above range", apply: func(c *Config) error { return c.SetFineMeshGridlines(170) }, wantErr: true},
		{name: "coarse iterations positive", apply: func(c *Config) error { return c.SetCoarseMeshIterations(1) }},
		{name: "coarse iterations zero", apply: func(c *Config) error { return c.SetCoarseMeshIterations(0) }, wantErr: true},
		{name: "fine iterations positive", apply: func(c *Config) error { return c.SetFineMeshIterations(500) }},
		{name: "fine iterations negative", apply: func(c *Config) error { return c.SetFineMeshIterations(-1) }, wantErr: true},
		{name: "over relaxation zero allowed", apply: func(c *Config) error { return c.SetOverRelaxation(0) }},
		{name: "over relaxation upper bound", apply: func(c *Config) error { return c.SetOverRelaxation(2) }},
		{name: "over relaxation above range", apply: func(c *Config) error { return c.SetOverRelaxation(2.1) }, wantErr: true},
		{name: "under relaxation zero excluded", apply: func(c *Config) error { return c.SetUnderRelaxation(0) }, wantErr: true},
		{name: "under relaxation upper bound", apply: func(c *Config) error { return c.SetUnderRelaxation(1) }},
		{name: "coarse factor zero excluded", apply: func(c *Config) error { return c.SetCoarseRelaxationFactor(0) }, wantErr: true},
		{name: "coarse factor upper bound", apply: func(c *Config) error { return c.SetCoarseRelaxationFactor(0.5) }},
		{name: "coarse factor above range", apply: func(c *Config) error { return c.SetCoarseRelaxationFactor(0.51) }, wantErr: true},
		{name: "coarse inviscid lower bound", apply: func(c *Config) error { return c.SetCoarseInviscidIterations(1) }},
		{name: "coarse inviscid upper bound", apply: func(c *Config) error { return c.SetCoarseInviscidIterations(20) }},
		{name: "coarse inviscid above range", apply: func(c *Config) error { return c.SetCoarseInviscidIterations(21) }, wantErr: true},
		{name: "fine factor upper bound", apply: func(c *Config) error { return c.SetFineRelaxationFactor(0.5) }},
		{name: "fine factor zero excluded", apply: func(c *Config) error { return c.SetFineRelaxationFactor(0) }, wantErr: true},
		{name: "fine inviscid zero", apply: func(c *Config) error { return c.SetFineInviscidIterations(0) }, wantErr: true},
		{name: "fine inviscid upper bound", apply: func(c *Config) error { return c.SetFineInviscidIterations(20) }},
		{name: "dd21 zero allowed", apply: func(c *Config) error { return c.SetDD21(0) }},
		{name: "dd21 upper bound", apply: func(c *Config) error { return c.SetDD21(0.01) }},
		{name: "dd21 above range", apply: func(c *Config) error { return c.SetDD21(0.011) }, wantErr: true},
		{name: "dd22 negative", apply: func(c *Config) error { return c.SetDD22(-0.001) }, wantErr: true},
		{name: "artificial viscosity bounds", apply: func(c *Config) error { return c.SetArtificialViscosity(1) }},
		{name: "artificial viscosity above range", apply: func(c *Config) error { return c.SetArtificialViscosity(1.1) }, wantErr: true},
		{name: "partially conservative bounds", apply: func(c *Config) error { return c.SetPartiallyConservative(0) }},
		{name: "partially conservative negative", apply: func(c *Config) error { return c.SetPartiallyConservative(-0.1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			err := tt.apply(cfg)

			if tt.wantErr {
				if err == nil {
					t.Fatal("setter succeeded, want range error")
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("errors.Is(err, ErrInvalidArgument) = false for %v", err)
				}
				if cfg.AdvancedChanged() {
					t.Error("rejected value still latched the advanced flag")
				}
				return
			}

			if err != nil {
				t.Fatalf("setter failed: %v", err)
			}
			if !cfg.AdvancedChanged() {
				t.Error("accepted value did not latch the advanced flag")
			}
		})
	}
}

func TestSetters_KeepPreviousValueOnFailure(t *testing.T) {
	cfg := newTestConfig(t)
	before := cfg.String()

	if err := cfg.SetMach(0.96); err == nil {
		t.Fatal("SetMach accepted an out-of-range value")
	}
	if err := cfg.SetFilename("far/away"); err == nil {
		t.Fatal("SetFilename accepted an invalid name")
	}
	if err := cfg.SetReynolds(1); err == nil {
		t.Fatal("SetReynolds accepted a value below the minimum")
	}

	if after := cfg.String(); after != before {
		t.Errorf("failed assignments changed the deck:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestAdvancedFlag_Latches(t *testing.T) {
	cfg := newTestConfig(t)

	if cfg.AdvancedChanged() {
		t.Fatal("AdvancedChanged() = true on a fresh Config")
	}
	if err := cfg.SetFineMeshGridlines(120); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AdvancedChanged() {
		t.Fatal("AdvancedChanged() = false after a successful set")
	}

	cfg.ResetAdvanced()
	if !cfg.AdvancedChanged() {
		t.Error("ResetAdvanced cleared the latched flag")
	}
}

func TestOutputBinaryDump_StoredButNotSerialized(t *testing.T) {
	plain := newTestConfig(t)

	dumped, err := New("example", true, "rae2822.dat", 0.7, 2.0, 6.04e6, 0.05, 0.05,
		WithOutputBinaryDump(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !dumped.OutputBinaryDump() {
		t.Error("OutputBinaryDump() = false after enabling it")
	}
	if plain.String() != dumped.String() {
		t.Error("binary-dump preference leaked into the deck")
	}
}
