package vgk

import (
	"io"
	"strconv"
	"strings"
)

// String renders the configuration as the line-oriented deck vgkcon.exe
// reads from standard input: one token per line, fixed order, trailing
// newline. Rendering never mutates the Config, so repeated calls yield
// identical output.
func (c *Config) String() string {
	args := []string{c.filename, c.title, c.viscous}

	if c.continuation != "" {
		args = append(args, "0", c.continuation)
	} else {
		args = append(args, "1", c.datfile, c.outputTOS, c.outputGridData)
	}

	args = append(args, formatFloat(c.mach), formatFloat(c.incidence))

	if c.lift.set {
		args = append(args, "1", formatFloat(c.lift.value))
	} else {
		args = append(args, "0")
	}

	args = append(args, formatFloat(c.reynolds), formatFloat(c.xtu), formatFloat(c.xtl))

	if c.tuned {
		args = append(args, "y",
			c.fineMeshGridlines.token(),
			c.coarseMeshIterations.token(),
			c.fineMeshIterations.token(),
			c.overRelaxation.token(),
			c.underRelaxation.token(),
			c.coarseRelaxationFactor.token(),
			c.coarseInviscidIterations.token(),
			c.fineRelaxationFactor.token(),
			c.fineInviscidIterations.token(),
			c.dd21.token(),
			c.dd22.token(),
			c.artificialViscosity.token(),
			c.partiallyConservative.token(),
		)
	} else {
		args = append(args, "n")
	}

	return strings.Join(args, "\n") + "\n"
}

// Encode returns the deck as UTF-8 bytes, ready to stream to the tool.
func (c *Config) Encode() []byte {
	return []byte(c.String())
}

// WriteDeck writes the deck to w.
func (c *Config) WriteDeck(w io.Writer) error {
	_, err := w.Write(c.Encode())
	return err
}

// formatFloat renders floats the way the tools expect: shortest plain
// decimal, never exponent notation (2.0 -> "2", 6.04 -> "6.04").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
