package vgk

import "strconv"

// intParam and floatParam are tagged optionals for the advanced tuning
// block: unset renders as the default sentinel, set renders the value.

type intParam struct {
	value int
	set   bool
}

func (p intParam) token() string {
	if !p.set {
		return DefaultSentinel
	}
	return strconv.Itoa(p.value)
}

type floatParam struct {
	value float64
	set   bool
}

func (p floatParam) token() string {
	if !p.set {
		return DefaultSentinel
	}
	return formatFloat(p.value)
}

// AdvancedChanged reports whether any advanced tuning parameter was
// ever given a real value. The flag latches: it survives ResetAdvanced
// and selects the full thirteen-token block at serialization time.
func (c *Config) AdvancedChanged() bool { return c.tuned }

// ResetAdvanced returns every advanced tuning parameter to the tool's
// default. The deck keeps the full block, with each slot rendered as
// the default sentinel, once any parameter was ever set.
func (c *Config) ResetAdvanced() {
	c.fineMeshGridlines = intParam{}
	c.coarseMeshIterations = intParam{}
	c.fineMeshIterations = intParam{}
	c.overRelaxation = floatParam{}
	c.underRelaxation = floatParam{}
	c.coarseRelaxationFactor = floatParam{}
	c.coarseInviscidIterations = intParam{}
	c.fineRelaxationFactor = floatParam{}
	c.fineInviscidIterations = intParam{}
	c.dd21 = floatParam{}
	c.dd22 = floatParam{}
	c.artificialViscosity = floatParam{}
	c.partiallyConservative = floatParam{}
}

// SetFineMeshGridlines sets the number of fine-mesh gridlines.
func (c *Config) SetFineMeshGridlines(n int) error {
	if n < 96 || n > 169 {
		return &ArgumentError{Field: "finemesh_gridlines", Value: n, Constraint: "an integer in the range [96, 169]"}
	}
	c.fineMeshGridlines = intParam{value: n, set: true}
	c.tuned = true
	return nil
}

// SetCoarseMeshIterations sets the number of coarse-mesh iterations.
func (c *Config) SetCoarseMeshIterations(n int) error {
	if n <= 0 {
		return &ArgumentError{Field: "coarsemesh_iterations", Value: n, Constraint: "an integer greater than 0"}
	}
	c.coarseMeshIterations = intParam{value: n, set: true}
	c.tuned = true
	return nil
}

// SetFineMeshIterations sets the number of fine-mesh iterations.
func (c *Config) SetFineMeshIterations(n int) error {
	if n <= 0 {
		return &ArgumentError{Field: "finemesh_iterations", Value: n, Constraint: "an integer greater than 0"}
	}
	c.fineMeshIterations = intParam{value: n, set: true}
	c.tuned = true
	return nil
}

// SetOverRelaxation sets the over-relaxation parameter.
func (c *Config) SetOverRelaxation(relaxation float64) error {
	if relaxation < 0 || relaxation > 2 {
		return &ArgumentError{Field: "over_relaxation", Value: relaxation, Constraint: "in the range [0, 2]"}
	}
	c.overRelaxation = floatParam{value: relaxation, set: true}
	c.tuned = true
	return nil
}

// SetUnderRelaxation sets the under-relaxation parameter.
func (c *Config) SetUnderRelaxation(relaxation float64) error {
	if relaxation <= 0 || relaxation > 1 {
		return &ArgumentError{Field: "under_relaxation", Value: relaxation, Constraint: "in the range (0, 1]"}
	}
	c.underRelaxation = floatParam{value: relaxation, set: true}
	c.tuned = true
	return nil
}

// SetCoarseRelaxationFactor sets the coarse-mesh relaxation factor at
// the boundary layer.
func (c *Config) SetCoarseRelaxationFactor(relaxation float64) error {
	if relaxation <= 0 || relaxation > 0.5 {
		return &ArgumentError{Field: "coarse_relaxation_factor", Value: relaxation, Constraint: "in the range (0, 0.5]"}
	}
	c.coarseRelaxationFactor = floatParam{value: relaxation, set: true}
	c.tuned = true
	return nil
}

// SetCoarseInviscidIterations sets the number of coarse-mesh inviscid
// flow iterations between successive boundary-layer calculations.
func (c *Config) SetCoarseInviscidIterations(n int) error {
	if n < 1 || n > 20 {
		return &ArgumentError{Field: "coarse_inviscid_iterations", Value: n, Constraint: "an integer in {1, 2, ..., 20}"}
	}
	c.coarseInviscidIterations = intParam{value: n, set: true}
	c.tuned = true
	return nil
}

// SetFineRelaxationFactor sets the fine-mesh relaxation factor at the
// boundary layer.
func (c *Config) SetFineRelaxationFactor(relaxation float64) error {
	if relaxation <= 0 || relaxation > 0.5 {
		return &ArgumentError{Field: "fine_relaxation_factor", Value: relaxation, Constraint: "in the range (0, 0.5]"}
	}
	c.fineRelaxationFactor = floatParam{value: relaxation, set: true}
	c.tuned = true
	return nil
}

// SetFineInviscidIterations sets the number of fine-mesh inviscid flow
// iterations between successive boundary-layer calculations.
func (c *Config) SetFineInviscidIterations(n int) error {
	if n < 1 || n > 20 {
		return &ArgumentError{Field: "fine_inviscid_iterations", Value: n, Constraint: "an integer in {1, 2, ..., 20}"}
	}
	c.fineInviscidIterations = intParam{value: n, set: true}
	c.tuned = true
	return nil
}

// SetDD21 sets the increment in non-dimensional momentum thickness at
// the upper-surface transition location.
func (c *Config) SetDD21(increment float64) error {
	if increment < 0 || increment > 0.01 {
		return &ArgumentError{Field: "dd21", Value: increment, Constraint: "in the range [0, 0.01]"}
	}
	c.dd21 = floatParam{value: increment, set: true}
	c.tuned = true
	return nil
}

// SetDD22 sets the increment in non-dimensional momentum thickness at
// the lower-surface transition location.
func (c *Config) SetDD22(increment float64) error {
	if increment < 0 || increment > 0.01 {
		return &ArgumentError{Field: "dd22", Value: increment, Constraint: "in the range [0, 0.01]"}
	}
	c.dd22 = floatParam{value: increment, set: true}
	c.tuned = true
	return nil
}

// SetArtificialViscosity sets the artificial viscosity parameter.
func (c *Config) SetArtificialViscosity(viscosity float64) error {
	if viscosity < 0 || viscosity > 1 {
		return &ArgumentError{Field: "artificial_viscosity", Value: viscosity, Constraint: "in the range [0, 1]"}
	}
	c.artificialViscosity = floatParam{value: viscosity, set: true}
	c.tuned = true
	return nil
}

// SetPartiallyConservative sets the partially-conservative parameter.
func (c *Config) SetPartiallyConservative(value float64) error {
	if value < 0 || value > 1 {
		return &ArgumentError{Field: "partially_conservative", Value: value, Constraint: "in the range [0, 1]"}
	}
	c.partiallyConservative = floatParam{value: value, set: true}
	c.tuned = true
	return nil
}

func WithFineMeshGridlines(n int) Option {
	return func(c *Config) error { return c.SetFineMeshGridlines(n) }
}

func WithCoarseMeshIterations(n int) Option {
	return func(c *Config) error { return c.SetCoarseMeshIterations(n) }
}

func WithFineMeshIterations(n int) Option {
	return func(c *Config) error { return c.SetFineMeshIterations(n) }
}

func WithOverRelaxation(relaxation float64) Option {
	return func(c *Config) error { return c.SetOverRelaxation(relaxation) }
}

func WithUnderRelaxation(relaxation float64) Option {
	return func(c *Config) error { return c.SetUnderRelaxation(relaxation) }
}

func WithCoarseRelaxationFactor(relaxation float64) Option {
	return func(c *Config) error { return c.SetCoarseRelaxationFactor(relaxation) }
}

func WithCoarseInviscidIterations(n int) Option {
	return func(c *Config) error { return c.SetCoarseInviscidIterations(n) }
}

func WithFineRelaxationFactor(relaxation float64) Option {
	return func(c *Config) error { return c.SetFineRelaxationFactor(relaxation) }
}

func WithFineInviscidIterations(n int) Option {
	return func(c *Config) error { return c.SetFineInviscidIterations(n) }
}

func WithDD21(increment float64) Option {
	return func(c *Config) error { return c.SetDD21(increment) }
}

func WithDD22(increment float64) Option {
	return func(c *Config) error { return c.SetDD22(increment) }
}

func WithArtificialViscosity(viscosity float64) Option {
	return func(c *Config) error { return c.SetArtificialViscosity(viscosity) }
}

func WithPartiallyConservative(value float64) Option {
	return func(c *Config) error { return c.SetPartiallyConservative(value) }
}
