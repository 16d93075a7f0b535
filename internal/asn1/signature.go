package asn1

import (
	"fmt"
	"math/big"

	"github.com/asn1view/asn1view/internal/tlv"
)

// SignatureComponentSize is the fixed width of each extracted signature
// component in bytes (256-bit curves).
const SignatureComponentSize = 32

// sigCursor walks the signature buffer strictly forward between offset and
// end. It never escapes DecomposeSignature.
type sigCursor struct {
	data   []byte
	offset int
	end    int
}

// DecomposeSignature parses a DER ECDSA-Sig-Value, SEQUENCE of two INTEGERs,
// and writes the r and s magnitudes as exactly 32 big-endian zero-padded
// bytes each. On failure the output buffers may be partially written and
// must not be used.
func DecomposeSignature(signature []byte, r, s *[SignatureComponentSize]byte) error {
	if len(signature) == 0 || r == nil || s == nil {
		return ErrSignatureEmpty
	}

	c := &sigCursor{data: signature, end: len(signature)}

	contentLen, err := c.readHeader(tlv.ClassUniversal|tlv.TypeConstructed|tlv.TagSequence, "sequence")
	if err != nil {
		return err
	}

	// The sequence content must end exactly at the end of the input.
	if c.offset+contentLen != len(signature) {
		return fmt.Errorf("%w: %d bytes after sequence end", ErrTrailingData, len(signature)-c.offset-contentLen)
	}
	c.end = c.offset + contentLen

	if err := c.readIntegerInto(r); err != nil {
		return err
	}
	if err := c.readIntegerInto(s); err != nil {
		return err
	}

	if c.offset != c.end {
		return fmt.Errorf("%w: %d bytes after second integer", ErrTrailingData, c.end-c.offset)
	}

	return nil
}

// readHeader consumes a tag byte that must equal want, then a definite DER
// length, returning the content length.
func (c *sigCursor) readHeader(want byte, what string) (int, error) {
	if c.offset >= c.end {
		return 0, fmt.Errorf("%w: missing %s tag at offset %d", ErrSignatureMalformed, what, c.offset)
	}

	if c.data[c.offset] != want {
		return 0, fmt.Errorf("%w: expected %s tag 0x%02x at offset %d, got 0x%02x",
			ErrSignatureMalformed, what, want, c.offset, c.data[c.offset])
	}
	c.offset++

	length, err := c.readLength(what)
	if err != nil {
		return 0, err
	}

	if c.offset+length > c.end {
		return 0, fmt.Errorf("%w: %s content truncated at offset %d", ErrSignatureMalformed, what, c.offset)
	}

	return length, nil
}

// readLength reads a definite short or long form DER length.
func (c *sigCursor) readLength(what string) (int, error) {
	if c.offset >= c.end {
		return 0, fmt.Errorf("%w: missing %s length at offset %d", ErrSignatureMalformed, what, c.offset)
	}

	first := c.data[c.offset]
	c.offset++

	if first&0x80 == 0 {
		return int(first), nil
	}

	numBytes := int(first & 0x7F)
	if numBytes == 0 || numBytes > 4 {
		return 0, fmt.Errorf("%w: bad %s length form at offset %d", ErrSignatureMalformed, what, c.offset-1)
	}
	if c.offset+numBytes > c.end {
		return 0, fmt.Errorf("%w: truncated %s length at offset %d", ErrSignatureMalformed, what, c.offset)
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		length = length<<8 | int(c.data[c.offset])
		c.offset++
	}

	return length, nil
}

// readIntegerInto reads one DER INTEGER and writes its magnitude into out as
// 32 big-endian bytes, left-padded with zeros.
func (c *sigCursor) readIntegerInto(out *[SignatureComponentSize]byte) error {
	length, err := c.readHeader(tlv.ClassUniversal|tlv.TypePrimitive|tlv.TagInteger, "integer")
	if err != nil {
		return err
	}

	if length == 0 {
		return fmt.Errorf("%w: zero-length integer at offset %d", ErrSignatureMalformed, c.offset)
	}

	// SetBytes absorbs the canonical leading 0x00 sign padding of DER
	// non-negative integers.
	value := new(big.Int).SetBytes(c.data[c.offset : c.offset+length])
	c.offset += length

	if (value.BitLen()+7)/8 > SignatureComponentSize {
		return fmt.Errorf("%w: %d-bit magnitude", ErrComponentTooLarge, value.BitLen())
	}

	value.FillBytes(out[:])
	return nil
}
