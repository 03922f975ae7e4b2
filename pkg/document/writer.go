package document

import (
	"io"
	"strings"
)

// String serializes the document. With comment preservation enabled and
// no mutations since parsing, the result is byte-identical to the input.
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// WriteTo serializes the document to w. Tombstoned lines are skipped;
// everything else is written in original order with its original
// terminator.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64

	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}

	for _, line := range d.leading {
		if err := write(line.raw + line.eol); err != nil {
			return total, err
		}
	}

	for _, g := range d.groups {
		if err := write(g.headerRaw + g.headerEOL); err != nil {
			return total, err
		}
		for _, line := range g.lines {
			if line.kind == LineRemoved {
				continue
			}
			if err := write(line.raw + line.eol); err != nil {
				return total, err
			}
		}
	}

	return total, nil
}
