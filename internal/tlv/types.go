// Package tlv builds navigable trees from BER/DER Tag-Length-Value data
// as specified in ITU-T X.690.
package tlv

// Tag class constants (bits 7-8 of the tag byte)
const (
	ClassUniversal       = 0x00 // 00xxxxxx
	ClassApplication     = 0x40 // 01xxxxxx
	ClassContextSpecific = 0x80 // 10xxxxxx
	ClassPrivate         = 0xC0 // 11xxxxxx
)

// Constructed flag (bit 6 of the tag byte)
const (
	TypePrimitive   = 0x00 // xx0xxxxx
	TypeConstructed = 0x20 // xx1xxxxx
)

// Universal tag numbers for common types
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagBitString   = 0x03
	TagOctetString = 0x04
	TagNull        = 0x05
	TagOID         = 0x06
	TagUTF8String  = 0x0C
	TagSequence    = 0x10
	TagSet         = 0x11
)

// Length encoding constants
const (
	// LengthLongFormBit indicates long form length encoding (bit 8 set)
	LengthLongFormBit = 0x80
	// MaxShortFormLength is the maximum length encodable in short form (0-127)
	MaxShortFormLength = 127
)

// TagNumberMask selects the tag number bits of the first tag byte.
// All five bits set means the number continues in following bytes.
const TagNumberMask = 0x1F

// Node is one parsed TLV element. Tag holds the raw tag bytes (one or two)
// as an integer, Value the content octets, and Children the parsed contents
// of constructed elements. Value and Children alias the parse input; callers
// must not mutate either.
type Node struct {
	Tag      uint16
	Value    []byte
	Children []*Node
}

// Len returns the length of the node's content octets.
func (n *Node) Len() int {
	return len(n.Value)
}

// Constructed reports whether the node's tag carries the constructed flag.
func (n *Node) Constructed() bool {
	return firstTagByte(n.Tag)&TypeConstructed != 0
}

// Class returns the tag class bits of the node's tag.
func (n *Node) Class() int {
	return int(firstTagByte(n.Tag) & 0xC0)
}

// firstTagByte extracts the leading tag byte from a one- or two-byte tag code.
func firstTagByte(tag uint16) byte {
	if tag > 0xFF {
		return byte(tag >> 8)
	}
	return byte(tag)
}
