package asn1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asn1view/asn1view/internal/tlv"
)

// oidTextCap bounds the rendered dotted-decimal OID text. Longer OIDs are
// truncated at a component boundary rather than overflowing.
const oidTextCap = 300

// FormatValue renders a node's value according to its registered tag type.
// consumed reports whether the renderer fully explains the value; when false
// (generic tags and the unimplemented time types) the caller should fall
// back to a raw dump.
func FormatValue(node *tlv.Node) (text string, consumed bool) {
	entry := LookupTag(node.Tag)

	switch entry.Type {
	case TypeBoolean:
		return formatBoolean(node.Value), true
	case TypeInteger:
		return formatInteger(node.Value), true
	case TypeString:
		return formatString(node.Value), true
	case TypeObjectID:
		oid, err := DecodeOID(node.Value)
		if err != nil {
			// Undecodable OID degrades to the raw dump.
			return "", false
		}
		return " " + oid, true
	case TypeUTCTime:
		// UTCTime/GeneralizedTime decoding is not implemented.
		return "", false
	default:
		return "", false
	}
}

func formatBoolean(value []byte) string {
	if len(value) == 0 {
		return "\tn/a"
	}
	if value[0] != 0 {
		return "\tvalue: true"
	}
	return "\tvalue: false"
}

func formatInteger(value []byte) string {
	return fmt.Sprintf("\tvalue: %d", decodePackedDecimal(value, 0, 2*len(value)))
}

func formatString(value []byte) string {
	return fmt.Sprintf("\tvalue: '%s'", value)
}

// decodePackedDecimal reads packed decimal digits, two per byte, from the
// nibble range [start, end). An odd start consumes the low nibble of its
// byte first; an odd end consumes a trailing high nibble. Out-of-range
// requests return 0 without touching the buffer.
func decodePackedDecimal(value []byte, start, end int) uint64 {
	var ret uint64

	if end > 2*len(value) {
		return ret
	}
	if start >= end {
		return ret
	}

	i := start
	if start&1 != 0 {
		ret += uint64(value[start/2] & 0xF)
		i = start + 1
	}

	for ; i < end-1; i += 2 {
		ret *= 10
		ret += uint64(value[i/2] >> 4)
		ret *= 10
		ret += uint64(value[i/2] & 0xF)
	}

	if end&1 != 0 {
		ret *= 10
		ret += uint64(value[end/2] >> 4)
	}

	return ret
}

// DecodeOID decodes DER object identifier content octets into dotted
// decimal form, e.g. "1.2.840.10045.2.1". The first two components are
// packed into the leading byte(s) as 40*c0+c1. Output is capped at 300
// bytes; an OID that would render longer is truncated at the last complete
// component.
func DecodeOID(value []byte) (string, error) {
	if len(value) == 0 {
		return "", fmt.Errorf("%w: empty object identifier", ErrMalformedOID)
	}

	var b strings.Builder
	offset := 0

	first, n, err := readBase128(value, offset)
	if err != nil {
		return "", err
	}
	offset += n

	// The leading subidentifier packs the first two components. Component
	// zero is capped at 2; everything at or above 80 belongs to arc 2.
	switch {
	case first < 40:
		b.WriteString("0." + strconv.FormatUint(first, 10))
	case first < 80:
		b.WriteString("1." + strconv.FormatUint(first-40, 10))
	default:
		b.WriteString("2." + strconv.FormatUint(first-80, 10))
	}

	for offset < len(value) {
		component, n, err := readBase128(value, offset)
		if err != nil {
			return "", err
		}
		offset += n

		part := "." + strconv.FormatUint(component, 10)
		if b.Len()+len(part) > oidTextCap {
			break
		}
		b.WriteString(part)
	}

	return b.String(), nil
}

// readBase128 reads one base-128 continuation-bit subidentifier starting at
// offset, returning the value and the number of bytes consumed.
func readBase128(value []byte, offset int) (uint64, int, error) {
	var result uint64
	n := 0

	for {
		if offset+n >= len(value) {
			return 0, 0, fmt.Errorf("%w: truncated component", ErrMalformedOID)
		}
		if n >= 9 {
			return 0, 0, fmt.Errorf("%w: component overflow", ErrMalformedOID)
		}

		b := value[offset+n]
		n++

		result = result<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return result, n, nil
		}
	}
}

// EncodeOID encodes a dotted decimal object identifier string into DER
// content octets, the inverse of DecodeOID.
func EncodeOID(oid string) ([]byte, error) {
	parts := strings.Split(oid, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need at least two components", ErrMalformedOID)
	}

	components := make([]uint64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad component %q", ErrMalformedOID, part)
		}
		components = append(components, v)
	}

	if components[0] > 2 {
		return nil, fmt.Errorf("%w: first component out of range", ErrMalformedOID)
	}
	if components[0] < 2 && components[1] >= 40 {
		return nil, fmt.Errorf("%w: second component out of range", ErrMalformedOID)
	}

	out := appendBase128(nil, 40*components[0]+components[1])
	for _, component := range components[2:] {
		out = appendBase128(out, component)
	}

	return out, nil
}

// appendBase128 appends one subidentifier in base-128 continuation-bit form.
func appendBase128(dst []byte, value uint64) []byte {
	var tmp [10]byte
	i := len(tmp)

	tmp[i-1] = byte(value & 0x7F)
	i--
	value >>= 7

	for value > 0 {
		i--
		tmp[i] = byte(value&0x7F) | 0x80
		value >>= 7
	}

	return append(dst, tmp[i:]...)
}
