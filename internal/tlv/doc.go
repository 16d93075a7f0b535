// Package tlv parses BER/DER Tag-Length-Value data into navigable node trees
// and provides a low-level encoder for building BER data.
//
// # Parsing
//
// Use ParseMulti to decode a buffer holding one or more top-level elements:
//
//	nodes, err := tlv.ParseMulti(data)
//	if err != nil {
//	    // handle error
//	}
//
// Constructed elements (SEQUENCE, SET, constructed context tags) have their
// content octets parsed recursively into Node.Children. Node values alias the
// input buffer and must be treated as read-only.
//
// # Traversal
//
// Visit walks parsed trees depth-first in pre-order, reporting the nesting
// depth and whether each node is a leaf:
//
//	tlv.Visit(nodes, func(n *tlv.Node, depth int, isLeaf bool) bool {
//	    // inspect n
//	    return true
//	})
//
// # Encoding
//
// Encoder appends BER elements to a buffer. Constructed elements are built
// with BeginConstructed/EndConstructed, which patches the length on close:
//
//	enc := tlv.NewEncoder(64)
//	pos, _ := enc.BeginSequence()
//	enc.WriteInteger(1)
//	enc.WriteInteger(2)
//	enc.EndConstructed(pos)
//	data := enc.Bytes()
//
// # Limitations
//
// Tag codes are capped at 16 bits (one continuation byte). Indefinite length
// encoding is rejected with ErrIndefiniteLength.
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
package tlv
