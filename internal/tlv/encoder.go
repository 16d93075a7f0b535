package tlv

import "errors"

// Encoder errors
var (
	ErrInvalidTagClass  = errors.New("tlv: invalid tag class")
	ErrInvalidTagNumber = errors.New("tlv: invalid tag number")
	ErrLengthOverflow   = errors.New("tlv: length value overflow")
	ErrNegativeLength   = errors.New("tlv: negative length not allowed")
)

// Encoder builds BER-encoded data in an append-only buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new encoder with an optional initial capacity.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &Encoder{
		buf: make([]byte, 0, capacity),
	}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Len returns the current length of encoded data.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteTag writes a BER tag byte(s) to the buffer.
// class: ClassUniversal, ClassApplication, ClassContextSpecific, or ClassPrivate
// constructed: TypePrimitive or TypeConstructed
// number: tag number (0-30 for short form, >30 for long form)
func (e *Encoder) WriteTag(class, constructed, number int) error {
	if class != ClassUniversal && class != ClassApplication &&
		class != ClassContextSpecific && class != ClassPrivate {
		return ErrInvalidTagClass
	}

	if number < 0 {
		return ErrInvalidTagNumber
	}

	// Short form: tag number fits in 5 bits (0-30)
	if number <= 30 {
		tag := byte(class) | byte(constructed) | byte(number)
		e.buf = append(e.buf, tag)
		return nil
	}

	// Long form: first byte has all 5 tag number bits set, number follows
	// in base-128
	firstByte := byte(class) | byte(constructed) | TagNumberMask
	e.buf = append(e.buf, firstByte)
	e.writeBase128(number)
	return nil
}

// writeBase128 encodes an integer in base-128 format (high bit indicates continuation)
func (e *Encoder) writeBase128(value int) {
	if value == 0 {
		e.buf = append(e.buf, 0)
		return
	}

	var bytes []byte
	for value > 0 {
		bytes = append(bytes, byte(value&0x7F))
		value >>= 7
	}

	// Write bytes in reverse order with continuation bits
	for i := len(bytes) - 1; i >= 0; i-- {
		b := bytes[i]
		if i > 0 {
			b |= 0x80
		}
		e.buf = append(e.buf, b)
	}
}

// WriteLength writes a BER length value to the buffer.
// Uses short form for lengths 0-127, long form for larger values.
func (e *Encoder) WriteLength(length int) error {
	if length < 0 {
		return ErrNegativeLength
	}

	if length <= MaxShortFormLength {
		e.buf = append(e.buf, byte(length))
		return nil
	}

	// Long form: first byte indicates number of length bytes
	numBytes := 0
	temp := length
	for temp > 0 {
		numBytes++
		temp >>= 8
	}

	if numBytes > 127 {
		return ErrLengthOverflow
	}

	e.buf = append(e.buf, byte(LengthLongFormBit|numBytes))

	for i := numBytes - 1; i >= 0; i-- {
		e.buf = append(e.buf, byte(length>>(i*8)))
	}

	return nil
}

// WriteBoolean writes a BER-encoded boolean value.
// Per X.690, FALSE is encoded as 0x00, TRUE as any non-zero value (we use 0xFF).
func (e *Encoder) WriteBoolean(v bool) error {
	if err := e.WriteTag(ClassUniversal, TypePrimitive, TagBoolean); err != nil {
		return err
	}
	if err := e.WriteLength(1); err != nil {
		return err
	}
	if v {
		e.buf = append(e.buf, 0xFF)
	} else {
		e.buf = append(e.buf, 0x00)
	}
	return nil
}

// WriteInteger writes a BER-encoded integer value.
// Uses the minimum number of octets with two's complement representation.
func (e *Encoder) WriteInteger(v int64) error {
	if err := e.WriteTag(ClassUniversal, TypePrimitive, TagInteger); err != nil {
		return err
	}

	encoded := encodeInteger(v)

	if err := e.WriteLength(len(encoded)); err != nil {
		return err
	}
	e.buf = append(e.buf, encoded...)
	return nil
}

// encodeInteger encodes an int64 as a minimal two's complement byte slice.
func encodeInteger(v int64) []byte {
	if v == 0 {
		return []byte{0x00}
	}

	var bytes []byte
	uv := uint64(v)

	if v < 0 {
		// A negative number needs enough bytes to preserve the sign bit
		for i := 7; i >= 0; i-- {
			b := byte(uv >> (i * 8))
			if len(bytes) > 0 || b != 0xFF || (i > 0 && (uv>>((i-1)*8))&0x80 == 0) {
				bytes = append(bytes, b)
			}
		}
		if len(bytes) == 0 {
			bytes = []byte{0xFF}
		}
		if bytes[0]&0x80 == 0 {
			bytes = append([]byte{0xFF}, bytes...)
		}
	} else {
		for i := 7; i >= 0; i-- {
			b := byte(uv >> (i * 8))
			if len(bytes) > 0 || b != 0 {
				bytes = append(bytes, b)
			}
		}
		// If high bit is set, prepend 0x00 to keep the value positive
		if len(bytes) > 0 && bytes[0]&0x80 != 0 {
			bytes = append([]byte{0x00}, bytes...)
		}
	}

	return bytes
}

// WriteOctetString writes a BER-encoded octet string.
func (e *Encoder) WriteOctetString(v []byte) error {
	if err := e.WriteTag(ClassUniversal, TypePrimitive, TagOctetString); err != nil {
		return err
	}
	if err := e.WriteLength(len(v)); err != nil {
		return err
	}
	e.buf = append(e.buf, v...)
	return nil
}

// WriteRaw writes raw bytes directly to the buffer.
// Useful for pre-encoded data or custom encoding.
func (e *Encoder) WriteRaw(data []byte) {
	e.buf = append(e.buf, data...)
}

// BeginConstructed starts a constructed element with the given class and tag
// number, returning a position token for EndConstructed. The length is
// written as a placeholder and patched when the element is closed.
func (e *Encoder) BeginConstructed(class, number int) (int, error) {
	if err := e.WriteTag(class, TypeConstructed, number); err != nil {
		return 0, err
	}
	// Placeholder length byte, patched by EndConstructed
	e.buf = append(e.buf, 0x00)
	return len(e.buf), nil
}

// BeginSequence starts a universal SEQUENCE element.
func (e *Encoder) BeginSequence() (int, error) {
	return e.BeginConstructed(ClassUniversal, TagSequence)
}

// EndConstructed closes a constructed element opened by BeginConstructed,
// rewriting the length to cover everything written since.
func (e *Encoder) EndConstructed(pos int) error {
	if pos < 1 || pos > len(e.buf) {
		return ErrNegativeLength
	}

	contentLen := len(e.buf) - pos
	if contentLen <= MaxShortFormLength {
		e.buf[pos-1] = byte(contentLen)
		return nil
	}

	// Long form needed: re-encode the length and shift the content up.
	content := make([]byte, contentLen)
	copy(content, e.buf[pos:])
	e.buf = e.buf[:pos-1]
	if err := e.WriteLength(contentLen); err != nil {
		return err
	}
	e.buf = append(e.buf, content...)
	return nil
}
