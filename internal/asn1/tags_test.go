package asn1

import "testing"

func TestTagTable_SortedByRank(t *testing.T) {
	for i := 1; i < len(tagTable); i++ {
		if sortRank(tagTable[i-1].Tag) >= sortRank(tagTable[i].Tag) {
			t.Errorf("table out of order at %d: 0x%02x before 0x%02x",
				i, tagTable[i-1].Tag, tagTable[i].Tag)
		}
	}
}

func TestLookupTag_AllRegistered(t *testing.T) {
	for _, entry := range tagTable {
		got := LookupTag(entry.Tag)
		if got.Tag != entry.Tag {
			t.Errorf("LookupTag(0x%02x) returned tag 0x%02x", entry.Tag, got.Tag)
		}
		if got.Name != entry.Name {
			t.Errorf("LookupTag(0x%02x) returned name %q, want %q", entry.Tag, got.Name, entry.Name)
		}
	}
}

func TestLookupTag_Unknown(t *testing.T) {
	for _, tag := range []uint16{0x07, 0x42, 0xa6, 0x9F02, 0xFFFF} {
		got := LookupTag(tag)
		if got.Name != "Unknown ???" {
			t.Errorf("LookupTag(0x%02x) returned %q, want sentinel", tag, got.Name)
		}
		if got.Type != TypeGeneric {
			t.Errorf("LookupTag(0x%02x) returned type %d, want TypeGeneric", tag, got.Type)
		}
	}
}

func TestLookupTag_Deterministic(t *testing.T) {
	first := LookupTag(0x30)
	for i := 0; i < 10; i++ {
		if got := LookupTag(0x30); got != first {
			t.Fatalf("lookup not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestSortRank(t *testing.T) {
	// Single-byte codes shift up so they interleave with two-byte codes.
	if sortRank(0x10) != 0x1000 {
		t.Errorf("expected rank 0x1000 for 0x10, got 0x%x", sortRank(0x10))
	}
	if sortRank(0x9F02) != 0x9F02 {
		t.Errorf("expected rank 0x9f02 for 0x9f02, got 0x%x", sortRank(0x9F02))
	}
	// 0xa0 (rank 0xa000) must sort after a hypothetical two-byte 0x3000.
	if sortRank(0xa0) <= sortRank(0x3000) {
		t.Error("short form 0xa0 must rank above two-byte 0x3000")
	}
}
