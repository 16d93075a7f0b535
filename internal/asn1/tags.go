// Package asn1 renders parsed BER/DER tag trees with semantic interpretation
// of known ASN.1 tags and extracts ECDSA signature components from DER.
package asn1

import "sort"

// TagType categorizes a registered tag for value formatting. The set is
// closed; every type has exactly one renderer in format.go.
type TagType int

const (
	TypeGeneric TagType = iota
	TypeBoolean
	TypeInteger
	TypeString
	TypeUTCTime
	TypeObjectID
)

// TagEntry describes one registered ASN.1 tag.
type TagEntry struct {
	Tag  uint16
	Name string
	Type TagType
}

// tagTable is the registry of known tags, ordered by sortRank. The first
// entry is the sentinel returned for unknown tags and must keep rank zero.
var tagTable = []TagEntry{
	// internal
	{0x00, "Unknown ???", TypeGeneric},

	// ASN.1
	{0x01, "BOOLEAN", TypeBoolean},
	{0x02, "INTEGER", TypeInteger},
	{0x03, "BIT STRING", TypeGeneric},
	{0x04, "OCTET STRING", TypeGeneric},
	{0x05, "NULL", TypeGeneric},
	{0x06, "OBJECT IDENTIFIER", TypeObjectID},
	{0x0C, "UTF8String", TypeString},
	{0x10, "SEQUENCE", TypeGeneric},
	{0x11, "SET", TypeGeneric},
	{0x13, "PrintableString", TypeString},
	{0x14, "T61String", TypeString},
	{0x16, "IA5String", TypeString},
	{0x17, "UTCTime", TypeUTCTime},
	{0x18, "GeneralizedTime", TypeUTCTime},
	{0x30, "SEQUENCE", TypeGeneric},
	{0x31, "SET", TypeGeneric},
	{0xa0, "[0]", TypeGeneric},
	{0xa1, "[1]", TypeGeneric},
	{0xa2, "[2]", TypeGeneric},
	{0xa3, "[3]", TypeGeneric},
	{0xa4, "[4]", TypeGeneric},
	{0xa5, "[5]", TypeGeneric},
}

// sortRank normalizes a tag code for ordered comparison. Single-byte codes
// are shifted up so that short-form codes (0x10 SEQUENCE) and full two-byte
// codes interleave in one comparable space. Lookup correctness depends on
// the table being sorted under this exact rank.
func sortRank(tag uint16) int {
	if tag >= 0x100 {
		return int(tag)
	}
	return int(tag) << 8
}

// LookupTag returns the registry entry for the given tag code. It never
// fails: unknown codes resolve to the sentinel entry at index 0.
func LookupTag(tag uint16) TagEntry {
	rank := sortRank(tag)
	i := sort.Search(len(tagTable), func(i int) bool {
		return sortRank(tagTable[i].Tag) >= rank
	})
	if i < len(tagTable) && tagTable[i].Tag == tag {
		return tagTable[i]
	}
	return tagTable[0]
}
