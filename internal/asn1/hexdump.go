package asn1

import (
	"fmt"
	"io"
)

// dumpBytes writes the canonical hex/ASCII rendering of raw value bytes,
// HexWidth bytes per line, indented one level deeper than the owning node.
func (d *Dumper) dumpBytes(value []byte, depth int) {
	width := d.HexWidth
	if width <= 0 {
		width = 16
	}

	for lineStart := 0; lineStart < len(value); lineStart += width {
		lineEnd := lineStart + width
		if lineEnd > len(value) {
			lineEnd = len(value)
		}
		line := value[lineStart:lineEnd]

		d.indent(depth + 1)
		for _, b := range line {
			fmt.Fprintf(d.W, "%02x ", b)
		}

		// Pad short final lines so the ASCII column stays aligned.
		for i := len(line); i < width; i++ {
			io.WriteString(d.W, "   ")
		}

		io.WriteString(d.W, "| ")
		for _, b := range line {
			if b >= 0x20 && b < 0x7F {
				fmt.Fprintf(d.W, "%c", b)
			} else {
				io.WriteString(d.W, ".")
			}
		}
		io.WriteString(d.W, "\n")
	}
}
