package asn1

import (
	"fmt"
	"io"
	"strings"

	"github.com/asn1view/asn1view/internal/tlv"
)

// Dumper pretty-prints TLV trees with semantic interpretation of known tags.
// Output is best-effort diagnostic text; write errors on W are ignored.
type Dumper struct {
	W io.Writer

	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int

	// HexWidth is the number of bytes per raw dump line.
	HexWidth int
}

// NewDumper returns a Dumper writing to w with default layout (three-space
// indent, sixteen bytes per hex line).
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{
		W:           w,
		IndentWidth: 3,
		HexWidth:    16,
	}
}

// Print parses the buffer into a TLV tree and dumps every node. The only
// reported failure is the tree build itself; per-node rendering problems
// degrade to a raw dump and never abort the walk.
func (d *Dumper) Print(buf []byte) error {
	nodes, err := tlv.ParseMulti(buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotParse, err)
	}

	tlv.Visit(nodes, d.visit)
	return nil
}

// visit renders one node. It always continues the traversal; content never
// alters the walk.
func (d *Dumper) visit(node *tlv.Node, depth int, isLeaf bool) bool {
	d.indent(depth)
	entry := LookupTag(node.Tag)
	fmt.Fprintf(d.W, "--%2x[%02x] '%s':", node.Tag, node.Len(), entry.Name)

	text, consumed := FormatValue(node)
	fmt.Fprintf(d.W, "%s\n", text)

	if isLeaf && !consumed {
		d.dumpBytes(node.Value, depth)
	}

	return true
}

func (d *Dumper) indent(depth int) {
	io.WriteString(d.W, strings.Repeat(" ", d.IndentWidth*depth))
}
