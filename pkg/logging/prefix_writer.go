package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and inserts a prefix at the start of
// every line. Data is written through immediately; a line split across
// multiple Write calls is prefixed exactly once.
type PrefixWriter struct {
	prefix      []byte
	writer      io.Writer
	atLineStart bool
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix:      []byte(prefix),
		writer:      w,
		atLineStart: true,
	}
}

// Write implements the io.Writer interface. The returned count covers
// the caller's bytes only, never the injected prefixes.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if pw.atLineStart {
			if _, err := pw.writer.Write(pw.prefix); err != nil {
				return written, err
			}
			pw.atLineStart = false
		}

		end := len(p)
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			end = i + 1
			pw.atLineStart = true
		}

		n, err := pw.writer.Write(p[:end])
		written += n
		if err != nil {
			return written, err
		}
		p = p[end:]
	}
	return written, nil
}
