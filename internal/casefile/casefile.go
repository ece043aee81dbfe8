// Package casefile loads VGK run cases from JSON documents.
package casefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ndsanders/pyvgk/pkg/vgk"
)

// ErrMissingKey reports a mandatory parameter absent from the case
// document.
var ErrMissingKey = errors.New("❌ missing mandatory key")

// Case mirrors the JSON run-case document. Mandatory parameters are
// pointer-typed so an omitted key is detected as absent rather than
// read as its zero value; nil optional pointers leave the tool's own
// default in place.
type Case struct {
	Filename  *string  `json:"filename"`
	Title     string   `json:"title,omitempty"`
	Viscous   *bool    `json:"viscous"`
	Datfile   *string  `json:"datfile"`
	Mach      *float64 `json:"mach"`
	Incidence *float64 `json:"incidence"`
	Reynolds  *float64 `json:"reynolds"`
	XTU       *float64 `json:"xtu"`
	XTL       *float64 `json:"xtl"`

	Continuation *string  `json:"continuation,omitempty"`
	Lift         *float64 `json:"lift,omitempty"`

	OutputTOS        *bool `json:"output_tos,omitempty"`
	OutputGridData   *bool `json:"output_griddata,omitempty"`
	OutputBinaryDump *bool `json:"output_binarydump,omitempty"`

	Advanced *Advanced `json:"advanced,omitempty"`
}

// Advanced carries the optional solver tuning block. Any present field
// switches the deck to the full tuning section.
type Advanced struct {
	FineMeshGridlines        *int     `json:"finemesh_gridlines,omitempty"`
	CoarseMeshIterations     *int     `json:"coarsemesh_iterations,omitempty"`
	FineMeshIterations       *int     `json:"finemesh_iterations,omitempty"`
	OverRelaxation           *float64 `json:"over_relaxation,omitempty"`
	UnderRelaxation          *float64 `json:"under_relaxation,omitempty"`
	CoarseRelaxationFactor   *float64 `json:"coarse_relaxation_factor,omitempty"`
	CoarseInviscidIterations *int     `json:"coarse_inviscid_iterations,omitempty"`
	FineRelaxationFactor     *float64 `json:"fine_relaxation_factor,omitempty"`
	FineInviscidIterations   *int     `json:"fine_inviscid_iterations,omitempty"`
	DD21                     *float64 `json:"dd21,omitempty"`
	DD22                     *float64 `json:"dd22,omitempty"`
	ArtificialViscosity      *float64 `json:"artificial_viscosity,omitempty"`
	PartiallyConservative    *float64 `json:"partially_conservative,omitempty"`
}

// Load reads and parses a case document from a file.
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a case document. Unknown keys are rejected so a typo
// in a parameter name fails loudly instead of running with defaults.
func Parse(data []byte) (*Case, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var c Case
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse case: %w", err)
	}
	return &c, nil
}

// Config validates the case and builds the tool configuration from it.
// Documents that omit a mandatory key are rejected with ErrMissingKey;
// present values then validate through the configuration's own setters,
// whose argument errors name the offending field.
func (c *Case) Config() (*vgk.Config, error) {
	if err := c.checkMandatory(); err != nil {
		return nil, err
	}

	var opts []vgk.Option

	if c.Title != "" {
		opts = append(opts, vgk.WithTitle(c.Title))
	}
	if c.Continuation != nil {
		opts = append(opts, vgk.WithContinuation(*c.Continuation))
	}
	if c.Lift != nil {
		opts = append(opts, vgk.WithLift(*c.Lift))
	}
	if c.OutputTOS != nil {
		opts = append(opts, vgk.WithOutputTOS(*c.OutputTOS))
	}
	if c.OutputGridData != nil {
		opts = append(opts, vgk.WithOutputGridData(*c.OutputGridData))
	}
	if c.OutputBinaryDump != nil {
		opts = append(opts, vgk.WithOutputBinaryDump(*c.OutputBinaryDump))
	}
	opts = append(opts, c.advancedOptions()...)

	return vgk.New(*c.Filename, *c.Viscous, *c.Datfile, *c.Mach, *c.Incidence, *c.Reynolds, *c.XTU, *c.XTL, opts...)
}

// checkMandatory reports the first mandatory key the document omits.
// Incidence 0 and an inviscid run are both legitimate settings, so
// absence has to be caught here and not inferred from decoded values.
func (c *Case) checkMandatory() error {
	mandatory := []struct {
		key     string
		present bool
	}{
		{"filename", c.Filename != nil},
		{"viscous", c.Viscous != nil},
		{"datfile", c.Datfile != nil},
		{"mach", c.Mach != nil},
		{"incidence", c.Incidence != nil},
		{"reynolds", c.Reynolds != nil},
		{"xtu", c.XTU != nil},
		{"xtl", c.XTL != nil},
	}
	for _, m := range mandatory {
		if !m.present {
			return fmt.Errorf("%w: %s", ErrMissingKey, m.key)
		}
	}
	return nil
}

func (c *Case) advancedOptions() []vgk.Option {
	if c.Advanced == nil {
		return nil
	}

	var opts []vgk.Option
	a := c.Advanced
	if a.FineMeshGridlines != nil {
		opts = append(opts, vgk.WithFineMeshGridlines(*a.FineMeshGridlines))
	}
	if a.CoarseMeshIterations != nil {
		opts = append(opts, vgk.WithCoarseMeshIterations(*a.CoarseMeshIterations))
	}
	if a.FineMeshIterations != nil {
		opts = append(opts, vgk.WithFineMeshIterations(*a.FineMeshIterations))
	}
	if a.OverRelaxation != nil {
		opts = append(opts, vgk.WithOverRelaxation(*a.OverRelaxation))
	}
	if a.UnderRelaxation != nil {
		opts = append(opts, vgk.WithUnderRelaxation(*a.UnderRelaxation))
	}
	if a.CoarseRelaxationFactor != nil {
		opts = append(opts, vgk.WithCoarseRelaxationFactor(*a.CoarseRelaxationFactor))
	}
	if a.CoarseInviscidIterations != nil {
		opts = append(opts, vgk.WithCoarseInviscidIterations(*a.CoarseInviscidIterations))
	}
	if a.FineRelaxationFactor != nil {
		opts = append(opts, vgk.WithFineRelaxationFactor(*a.FineRelaxationFactor))
	}
	if a.FineInviscidIterations != nil {
		opts = append(opts, vgk.WithFineInviscidIterations(*a.FineInviscidIterations))
	}
	if a.DD21 != nil {
		opts = append(opts, vgk.WithDD21(*a.DD21))
	}
	if a.DD22 != nil {
		opts = append(opts, vgk.WithDD22(*a.DD22))
	}
	if a.ArtificialViscosity != nil {
		opts = append(opts, vgk.WithArtificialViscosity(*a.ArtificialViscosity))
	}
	if a.PartiallyConservative != nil {
		opts = append(opts, vgk.WithPartiallyConservative(*a.PartiallyConservative))
	}
	return opts
}
