package tlv

import "errors"

// parser walks an immutable byte buffer strictly forward.
type parser struct {
	data   []byte
	offset int
}

// readTag reads a raw one- or two-byte tag code from the current position.
func (p *parser) readTag() (uint16, error) {
	startOffset := p.offset

	if p.offset >= len(p.data) {
		return 0, NewDecodeError(startOffset, "cannot read tag", ErrUnexpectedEOF)
	}

	firstByte := p.data[p.offset]
	p.offset++

	tag := uint16(firstByte)

	// Long form: all five tag number bits set, number continues in the
	// following bytes. Codes are capped at 16 bits, so at most one
	// continuation byte is accepted.
	if firstByte&TagNumberMask == TagNumberMask {
		if p.offset >= len(p.data) {
			return 0, NewDecodeError(startOffset, "truncated long form tag", ErrUnexpectedEOF)
		}
		next := p.data[p.offset]
		p.offset++

		if next&0x80 != 0 {
			return 0, NewDecodeError(startOffset, "tag number wider than 16 bits", ErrInvalidTag)
		}
		tag = tag<<8 | uint16(next)
	}

	return tag, nil
}

// readLength reads a BER length value from the current position.
func (p *parser) readLength() (int, error) {
	startOffset := p.offset

	if p.offset >= len(p.data) {
		return 0, NewDecodeError(startOffset, "cannot read length", ErrUnexpectedEOF)
	}

	firstByte := p.data[p.offset]
	p.offset++

	// Short form: bit 8 is 0, bits 1-7 contain the length
	if firstByte&LengthLongFormBit == 0 {
		return int(firstByte), nil
	}

	// Long form: bit 8 is 1, bits 1-7 contain the number of subsequent length bytes
	numBytes := int(firstByte & 0x7F)

	// Check for indefinite length (0x80)
	if numBytes == 0 {
		return 0, NewDecodeError(startOffset, "indefinite length encoding", ErrIndefiniteLength)
	}

	if p.offset+numBytes > len(p.data) {
		return 0, NewDecodeError(startOffset, "truncated length encoding", ErrUnexpectedEOF)
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		// Check for overflow
		if length > (1 << 24) {
			return 0, NewDecodeError(startOffset, "length value overflow", ErrInvalidLength)
		}
		length = (length << 8) | int(p.data[p.offset])
		p.offset++
	}

	return length, nil
}

// readNode reads one complete TLV element, recursing into constructed values.
func (p *parser) readNode() (*Node, error) {
	tag, err := p.readTag()
	if err != nil {
		return nil, err
	}

	length, err := p.readLength()
	if err != nil {
		return nil, err
	}

	if p.offset+length > len(p.data) {
		return nil, NewDecodeError(p.offset, "truncated value", ErrUnexpectedEOF)
	}

	node := &Node{
		Tag:   tag,
		Value: p.data[p.offset : p.offset+length],
	}
	p.offset += length

	if node.Constructed() && length > 0 {
		children, err := parseSiblings(node.Value)
		if err != nil {
			// Offsets inside a nested value are relative to the value;
			// rebase them on the value's position in the outer buffer.
			valueStart := p.offset - length
			var de *DecodeError
			if errors.As(err, &de) {
				de.Offset += valueStart
			}
			return nil, err
		}
		node.Children = children
	}

	return node, nil
}

// parseSiblings parses the whole buffer as consecutive TLV elements.
func parseSiblings(data []byte) ([]*Node, error) {
	p := &parser{data: data}

	var nodes []*Node
	for p.offset < len(p.data) {
		node, err := p.readNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// Parse decodes exactly one TLV element from the buffer. Bytes remaining
// after the element are a structural error.
func Parse(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	p := &parser{data: data}
	node, err := p.readNode()
	if err != nil {
		return nil, err
	}

	if p.offset != len(p.data) {
		return nil, NewDecodeError(p.offset, "trailing data after element", ErrInvalidLength)
	}

	return node, nil
}

// ParseMulti decodes the buffer as one or more sibling TLV elements,
// consuming it completely.
func ParseMulti(data []byte) ([]*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return parseSiblings(data)
}
