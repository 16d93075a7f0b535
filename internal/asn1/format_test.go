package asn1

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/asn1view/asn1view/internal/tlv"
)

func TestDecodePackedDecimal(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		start int
		end   int
		want  uint64
	}{
		{"full range", []byte{0x12, 0x34}, 0, 4, 1234},
		{"single byte", []byte{0x99}, 0, 2, 99},
		{"odd start", []byte{0x12, 0x34}, 1, 4, 234},
		{"odd end", []byte{0x12, 0x34}, 0, 3, 123},
		{"odd start and end", []byte{0x12, 0x34}, 1, 3, 23},
		{"empty value", nil, 0, 0, 0},
		{"end beyond buffer", []byte{0x12}, 0, 4, 0},
		{"start at end", []byte{0x12}, 2, 2, 0},
		{"start past end", []byte{0x12}, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodePackedDecimal(tt.value, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDecodePackedDecimal_NoOutOfBounds(t *testing.T) {
	// Any end past 2*len must return 0 without touching the buffer.
	value := []byte{0x12, 0x34}
	for end := 5; end < 64; end++ {
		if got := decodePackedDecimal(value, 0, end); got != 0 {
			t.Fatalf("end=%d: expected 0, got %d", end, got)
		}
	}
}

func TestFormatBoolean(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  string
	}{
		{"empty", nil, "\tn/a"},
		{"false", []byte{0x00}, "\tvalue: false"},
		{"true", []byte{0x01}, "\tvalue: true"},
		{"true 0xff", []byte{0xFF}, "\tvalue: true"},
		{"lenient extra bytes", []byte{0x01, 0x00}, "\tvalue: true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBoolean(tt.value); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeOID(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  string
	}{
		{
			name:  "ecPublicKey",
			value: []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x02, 0x01},
			want:  "1.2.840.10045.2.1",
		},
		{
			name:  "sha256",
			value: []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01},
			want:  "2.16.840.1.101.3.4.2.1",
		},
		{
			name:  "single subidentifier",
			value: []byte{0x2A},
			want:  "1.2",
		},
		{
			name:  "arc zero",
			value: []byte{0x01},
			want:  "0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOID(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeOID_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
	}{
		{"empty", nil},
		{"dangling continuation", []byte{0x2A, 0x86}},
		{"component overflow", bytes.Repeat([]byte{0xFF}, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeOID(tt.value); !errors.Is(err, ErrMalformedOID) {
				t.Errorf("expected ErrMalformedOID, got %v", err)
			}
		})
	}
}

func TestOID_RoundTrip(t *testing.T) {
	oids := []string{
		"1.2.840.10045.2.1",
		"1.2.840.113549.1.1.11",
		"2.16.840.1.101.3.4.2.1",
		"0.9.2342.19200300.100.1.25",
		"2.5.4.3",
	}

	for _, oid := range oids {
		t.Run(oid, func(t *testing.T) {
			encoded, err := EncodeOID(oid)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			decoded, err := DecodeOID(encoded)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded != oid {
				t.Errorf("round trip produced %q, want %q", decoded, oid)
			}
		})
	}
}

func TestEncodeOID_Invalid(t *testing.T) {
	for _, oid := range []string{"", "1", "3.1", "1.40", "x.y", "1.2.abc"} {
		if _, err := EncodeOID(oid); !errors.Is(err, ErrMalformedOID) {
			t.Errorf("EncodeOID(%q): expected ErrMalformedOID, got %v", oid, err)
		}
	}
}

func TestDecodeOID_Truncation(t *testing.T) {
	// An OID rendering past the 300 byte text cap is cut at a component
	// boundary, never overflowing.
	value := []byte{0x2A}
	for i := 0; i < 400; i++ {
		value = append(value, 0x7F)
	}

	got, err := DecodeOID(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > oidTextCap {
		t.Errorf("rendered OID is %d bytes, cap is %d", len(got), oidTextCap)
	}
	if !strings.HasPrefix(got, "1.2.") {
		t.Errorf("unexpected prefix in %q", got)
	}
	if strings.HasSuffix(got, ".") {
		t.Errorf("truncation left a dangling separator: %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name         string
		node         *tlv.Node
		wantText     string
		wantConsumed bool
	}{
		{
			name:         "boolean",
			node:         &tlv.Node{Tag: 0x01, Value: []byte{0xFF}},
			wantText:     "\tvalue: true",
			wantConsumed: true,
		},
		{
			name:         "integer packed decimal",
			node:         &tlv.Node{Tag: 0x02, Value: []byte{0x12, 0x34}},
			wantText:     "\tvalue: 1234",
			wantConsumed: true,
		},
		{
			name:         "utf8 string",
			node:         &tlv.Node{Tag: 0x0C, Value: []byte("hello")},
			wantText:     "\tvalue: 'hello'",
			wantConsumed: true,
		},
		{
			name:         "object identifier",
			node:         &tlv.Node{Tag: 0x06, Value: []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x02, 0x01}},
			wantText:     " 1.2.840.10045.2.1",
			wantConsumed: true,
		},
		{
			name:         "broken object identifier falls back",
			node:         &tlv.Node{Tag: 0x06, Value: []byte{0x2A, 0x86}},
			wantText:     "",
			wantConsumed: false,
		},
		{
			name:         "generic octet string",
			node:         &tlv.Node{Tag: 0x04, Value: []byte{0xDE, 0xAD}},
			wantText:     "",
			wantConsumed: false,
		},
		{
			name:         "utc time is stubbed",
			node:         &tlv.Node{Tag: 0x17, Value: []byte("990101000000Z")},
			wantText:     "",
			wantConsumed: false,
		},
		{
			name:         "unknown tag",
			node:         &tlv.Node{Tag: 0x42, Value: []byte{0x00}},
			wantText:     "",
			wantConsumed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, consumed := FormatValue(tt.node)
			if text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, text)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("expected consumed=%v, got %v", tt.wantConsumed, consumed)
			}
		})
	}
}
