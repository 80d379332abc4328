package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNameCompressed_NilContext(t *testing.T) {
	plain, err := EncodeName("www.example.com.")
	require.NoError(t, err)

	got, err := EncodeNameCompressed("www.example.com.", 100, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestEncodeNameCompressed_Suffixes(t *testing.T) {
	c := NewCompression()

	first, err := EncodeNameCompressed("example.com.", 12, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}, first)
	assert.Equal(t, 2, c.Len())

	second, err := EncodeNameCompressed("WWW.Example.com", 40, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 'W', 'W', 'W', 0xC0, 12}, second)
	assert.Equal(t, 3, c.Len())

	third, err := EncodeNameCompressed("www.example.com.", 60, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC0, 40}, third)

	other, err := EncodeNameCompressed("mail.com.", 80, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 'm', 'a', 'i', 'l', 0xC0, 20}, other)
}

func TestEncodeNameCompressed_Root(t *testing.T) {
	c := NewCompression()
	got, err := EncodeNameCompressed(".", 0, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)
	assert.Equal(t, 0, c.Len())
}

func TestCompression_UnaddressableOffset(t *testing.T) {
	c := NewCompression()
	_, err := EncodeNameCompressed("example.com.", maxPointerOffset+1, c)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Add("example.org.", maxPointerOffset-7))
	// "example.org" fits, "org" starts past the pointer range.
	assert.Equal(t, 1, c.Len())
}

func TestCompression_Add(t *testing.T) {
	c := NewCompression()
	require.NoError(t, c.Add("a.b.c.", 5))
	assert.Equal(t, 3, c.Len())

	got, err := EncodeNameCompressed("x.b.c.", 30, c)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 'x', 0xC0, 7}, got)

	assert.Error(t, c.Add("a..b", 0))

	var nilCtx *Compression
	assert.Equal(t, 0, nilCtx.Len())
}

func TestCompression_DecodeRoundTrip(t *testing.T) {
	c := NewCompression()
	msg := make([]byte, 12)
	for _, name := range []string{"example.com.", "ns1.example.com.", "ns2.example.com.", "example.org."} {
		b, err := EncodeNameCompressed(name, len(msg), c)
		require.NoError(t, err)
		msg = append(msg, b...)
	}

	off := 12
	for _, want := range []string{"example.com", "ns1.example.com", "ns2.example.com", "example.org"} {
		got, err := DecodeName(msg, &off)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, len(msg), off)
}
