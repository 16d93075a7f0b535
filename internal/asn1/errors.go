package asn1

import "errors"

var (
	// ErrMalformedOID is returned for object identifier content that cannot
	// be decoded, or dotted strings that cannot be encoded.
	ErrMalformedOID = errors.New("asn1: malformed object identifier")

	// ErrSignatureEmpty is returned when the signature input or an output
	// buffer is missing.
	ErrSignatureEmpty = errors.New("asn1: empty signature input")

	// ErrSignatureMalformed is returned for structural problems in the DER
	// signature: bad tags, bad lengths, truncation.
	ErrSignatureMalformed = errors.New("asn1: malformed DER signature")

	// ErrComponentTooLarge is returned when an integer component does not
	// fit the fixed 32-byte output width.
	ErrComponentTooLarge = errors.New("asn1: signature component exceeds 32 bytes")

	// ErrTrailingData is returned when bytes remain after both signature
	// integers have been read.
	ErrTrailingData = errors.New("asn1: trailing data after signature")

	// ErrCannotParse is returned by Dumper.Print when the input cannot be
	// built into a TLV tree at all.
	ErrCannotParse = errors.New("asn1: cannot parse data as TLV tree")
)
