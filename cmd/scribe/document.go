package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/scribe/engine/scratch"
	"github.com/hubastard/scribe/engine/textbuf"
)

// document is the file shown in the editor.
type document struct {
	path  string
	buf   *textbuf.Buffer
	dirty bool
}

// openDocument reads path into a buffer rounded up to the editor capacity.
// A missing file opens empty.
func openDocument(path string) (*document, error) {
	d := &document{path: path}
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		data = b
	}
	s := string(data)
	d.buf = textbuf.FromString(s, textbuf.RoundCapacity(len([]rune(s))+1))
	return d, nil
}

func (d *document) save(path string) error {
	if path == "" {
		return errors.New("save: no file name")
	}
	if err := os.WriteFile(path, []byte(d.buf.String()), 0o644); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	d.path = path
	d.dirty = false
	return nil
}

// status formats the status bar into b and returns a view valid until b.Reset.
func (d *document) status(b *scratch.Buffer, cursor, scale int, readOnly bool) string {
	m := b.Mark()
	line, col := textbuf.LineColumn(d.buf, cursor)
	lines, _ := textbuf.LineStats(d.buf)
	lines = max(lines, 1)
	b.S("Ln ").I(line + 1).S(", Col ").I(col + 1).
		S("  ").I(lines).S(" lines  ").I(scale).S("x")
	if readOnly {
		b.S("  [read-only]")
	}
	if d.dirty {
		b.S("  *")
	}
	return b.View(m)
}
