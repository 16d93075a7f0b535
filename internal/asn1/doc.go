// Package asn1 interprets parsed BER/DER tag trees and DER ECDSA signatures.
//
// # Tag registry
//
// LookupTag resolves a raw tag code to a display name and a formatting
// category. Lookup never fails; unknown codes resolve to a sentinel entry
// with the Generic category. The registry interleaves single-byte codes and
// full two-byte codes in one sorted order by ranking single-byte codes
// shifted up eight bits.
//
// # Value formatting
//
// FormatValue renders a node's value per its category: booleans, packed
// decimal integers, quoted strings and dotted-decimal object identifiers.
// Categories without a renderer (including the deliberately unimplemented
// UTCTime/GeneralizedTime) report consumed=false so callers can fall back
// to a raw hex/ASCII dump.
//
// # Dumping
//
//	d := asn1.NewDumper(os.Stdout)
//	if err := d.Print(data); err != nil {
//	    // data could not be built into a TLV tree
//	}
//
// # Signature extraction
//
// DecomposeSignature splits a DER ECDSA-Sig-Value, the standard
// SEQUENCE{r INTEGER, s INTEGER}, into two fixed 32-byte big-endian
// buffers:
//
//	var r, s [32]byte
//	if err := asn1.DecomposeSignature(der, &r, &s); err != nil {
//	    // handle error
//	}
//
// Structural problems, oversized components and trailing data are distinct
// errors matched with errors.Is.
package asn1
