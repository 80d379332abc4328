package dns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	b, err := EncodeName("google.com")
	require.NoError(t, err)
	exp := []byte{6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0}
	assert.Equal(t, exp, b)

	dotted, err := EncodeName("google.com.")
	require.NoError(t, err)
	assert.Equal(t, exp, dotted)

	root, err := EncodeName(".")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, root)
}

func TestEncodeName_Errors(t *testing.T) {
	tests := []struct {
		name   string
		domain string
	}{
		{"empty", ""},
		{"empty label", "a..b"},
		{"label too long", strings.Repeat("a", 64) + ".com"},
		{"name too long", strings.Repeat(strings.Repeat("a", 63)+".", 4) + "com"},
		{"non ascii", "bücher.de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeName(tt.domain)
			assert.ErrorIs(t, err, ErrDNSError)
		})
	}
}

func TestDecodeName_Uncompressed(t *testing.T) {
	msg := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	off := 0
	n, err := DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", n)
	assert.Equal(t, len(msg), off)
}

func TestDecodeName_Pointer(t *testing.T) {
	msg := []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0, 3, 'w', 'w', 'w', 0xC0, 0x00}
	off := 13
	n, err := DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", n)
	assert.Equal(t, len(msg), off)
}

func TestDecodeName_Errors(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
	}{
		{"empty", nil},
		{"missing terminator", []byte{3, 'c', 'o', 'm'}},
		{"pointer out of bounds", []byte{0xC0, 0x10}},
		{"truncated pointer", []byte{0xC0}},
		{"self pointer", []byte{0xC0, 0x00}},
		{"reserved label type", []byte{0x80, 0x00}},
		{"non ascii label", []byte{1, 0xE9, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := 0
			_, err := DecodeName(tt.msg, &off)
			assert.ErrorIs(t, err, ErrDNSError)
		})
	}
}

func TestFqdnAndCanonicalName(t *testing.T) {
	assert.Equal(t, ".", Fqdn(""))
	assert.Equal(t, ".", Fqdn("."))
	assert.Equal(t, "example.com.", Fqdn("example.com"))
	assert.Equal(t, "example.com.", Fqdn("example.com.."))
	assert.Equal(t, "example.com.", CanonicalName("Example.COM"))
	assert.True(t, EqualNames("Example.com", "example.COM."))
	assert.False(t, EqualNames("example.com", "example.org"))
}

func TestCountLabels(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{".", 0},
		{"", 0},
		{"com.", 1},
		{"example.com.", 2},
		{"www.example.com", 3},
		{"*.example.com.", 2},
		{"*", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLabels(tt.name), tt.name)
	}
}

func TestAbsoluteName(t *testing.T) {
	tests := []struct {
		name, origin, want string
	}{
		{"example.com.", "", "example.com."},
		{"@", "example.com", "example.com."},
		{"ns1", "example.com.", "ns1.example.com."},
		{"ns1", ".", "ns1."},
		{"Mixed.Case.", "", "Mixed.Case."},
	}
	for _, tt := range tests {
		got, err := AbsoluteName(tt.name, tt.origin)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []struct{ name, origin string }{
		{"", "example.com."},
		{"ns1", ""},
		{"@", ""},
		{"a..b.", ""},
	} {
		_, err := AbsoluteName(bad.name, bad.origin)
		assert.Error(t, err, bad.name)
	}
}

func TestAbsoluteName_RejectsEscapes(t *testing.T) {
	for _, tt := range []struct{ name, origin string }{
		{`a\.b.example.`, ""},
		{`host\032name`, "example.com."},
		{"www", `ex\.ample.com.`},
	} {
		_, err := AbsoluteName(tt.name, tt.origin)
		require.ErrorIs(t, err, ErrParse, tt.name)
		assert.ErrorIs(t, err, errEscaped, tt.name)
	}
}
