package dns_test

import (
	"testing"
	"time"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := dns.ParseSIGTime(s)
	require.NoError(t, err)
	return ts
}

// exampleSIG is the A/5/2/3600 record used throughout these tests.
func exampleSIG(t *testing.T) *dns.SIGRecord {
	t.Helper()
	return dns.NewSIGRecord(
		dns.NewRRHeader("example.com.", dns.ClassIN, 3600),
		dns.TypeA, 5, 3600,
		mustTime(t, "20040101000000"),
		mustTime(t, "20031201000000"),
		12345,
		"example.com.",
		dns.PresentSignature([]byte{0x01, 0x02, 0x03}),
	)
}

var exampleRData = []byte{
	0x00, 0x01, // type covered: A
	0x05,                   // algorithm
	0x02,                   // labels
	0x00, 0x00, 0x0e, 0x10, // original TTL 3600
	0x3f, 0xf3, 0x63, 0x00, // expiration 2004-01-01
	0x3f, 0xca, 0x84, 0x80, // inception 2003-12-01
	0x30, 0x39, // key tag 12345
	7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
	0x01, 0x02, 0x03,
}

func TestSIGRecord_MarshalRData_Layout(t *testing.T) {
	rec := exampleSIG(t)
	assert.Equal(t, uint8(2), rec.Labels, "labels derived from owner")

	b, err := rec.MarshalRData()
	require.NoError(t, err)
	assert.Equal(t, exampleRData, b)
}

func TestParseSIGRData_Example(t *testing.T) {
	off := 0
	rec, err := dns.ParseSIGRData(exampleRData, &off, len(exampleRData))
	require.NoError(t, err)
	assert.Equal(t, len(exampleRData), off)

	assert.Equal(t, dns.TypeA, rec.TypeCovered)
	assert.Equal(t, uint8(5), rec.Algorithm)
	assert.Equal(t, uint8(2), rec.Labels)
	assert.Equal(t, uint32(3600), rec.OrigTTL)
	assert.Equal(t, "20040101000000", dns.FormatSIGTime(rec.Expiration))
	assert.Equal(t, "20031201000000", dns.FormatSIGTime(rec.Inception))
	assert.Equal(t, uint16(12345), rec.KeyTag)
	assert.Equal(t, "example.com.", rec.SignerName)
	sig, ok := rec.Signature.Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, sig)
}

func TestSIGRecord_WireRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sig  dns.Signature
		key  uint16
	}{
		{"three bytes", dns.PresentSignature([]byte{1, 2, 3}), 12345},
		{"empty but present", dns.PresentSignature(nil), 1},
		{"long", dns.PresentSignature(make([]byte, 512)), 0},
		{"max key tag", dns.PresentSignature([]byte{0xff}), 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := exampleSIG(t)
			orig.Signature = tt.sig
			orig.KeyTag = tt.key

			b, err := orig.MarshalRData()
			require.NoError(t, err)

			off := 0
			got, err := dns.ParseSIGRData(b, &off, len(b))
			require.NoError(t, err)
			got.SetHeader(orig.Header())
			assert.True(t, orig.Equal(got), "got %v", got)
		})
	}
}

func TestSIGRecord_PresentEmptySignature(t *testing.T) {
	rec := exampleSIG(t)
	rec.Signature = dns.PresentSignature(nil)

	b, err := rec.MarshalRData()
	require.NoError(t, err)
	assert.Len(t, b, len(exampleRData)-3, "fixed fields and signer only")

	off := 0
	got, err := dns.ParseSIGRData(b, &off, len(b))
	require.NoError(t, err)
	assert.True(t, got.Signature.IsPresent())
	assert.Equal(t, 0, got.Signature.Len())
}

func TestSIGRecord_AbsentSignature(t *testing.T) {
	rec := exampleSIG(t)
	rec.Signature = dns.AbsentSignature()

	t.Run("encodes to nothing", func(t *testing.T) {
		b, err := rec.MarshalRData()
		require.NoError(t, err)
		assert.Empty(t, b)

		c, err := rec.MarshalCanonical()
		require.NoError(t, err)
		assert.Empty(t, c)

		comp := dns.NewCompression()
		b, err = rec.MarshalRDataCompressed(comp, 12)
		require.NoError(t, err)
		assert.Empty(t, b)
		assert.Zero(t, comp.Len(), "compression context untouched")
	})

	t.Run("zero rdlength decodes as absent", func(t *testing.T) {
		off := 0
		got, err := dns.ParseSIGRData(nil, &off, 0)
		require.NoError(t, err)
		assert.False(t, got.Signature.IsPresent())
		assert.False(t, got.IsSigned())
		assert.Equal(t, 0, off)
	})

	t.Run("signing prefix still available", func(t *testing.T) {
		p, err := rec.SigningPrefix()
		require.NoError(t, err)
		assert.Equal(t, exampleRData[:len(exampleRData)-3], p)
	})
}

func TestParseSIGRData_Errors(t *testing.T) {
	tests := []struct {
		name  string
		msg   []byte
		rdlen int
	}{
		{"rdlength beyond message", exampleRData, len(exampleRData) + 1},
		{"short fixed fields", exampleRData[:10], 10},
		{"truncated signer name", exampleRData[:22], 22},
		{"signer overruns rdata", exampleRData, 20},
		{"negative rdlength", exampleRData, -1},
		{"bad label type", append(append([]byte{}, exampleRData[:18]...), 0x40, 0x00), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := 0
			_, err := dns.ParseSIGRData(tt.msg, &off, tt.rdlen)
			require.Error(t, err)
			assert.ErrorIs(t, err, dns.ErrDNSError)
			assert.Equal(t, 0, off, "offset not advanced on error")
		})
	}
}

func TestParseSIGRData_CompressionLoop(t *testing.T) {
	msg := append([]byte{}, exampleRData[:18]...)
	msg = append(msg, 0xC0, 18) // points at itself
	off := 0
	_, err := dns.ParseSIGRData(msg, &off, len(msg))
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrDNSError)
}

func TestSIGRecord_CompressedSigner(t *testing.T) {
	// A message whose first name is example.com at offset 0.
	msg, err := dns.EncodeName("example.com")
	require.NoError(t, err)
	comp := dns.NewCompression()
	require.NoError(t, comp.Add("example.com", 0))

	rec := exampleSIG(t)
	rdata, err := rec.MarshalRDataCompressed(comp, len(msg))
	require.NoError(t, err)

	// 18 fixed bytes, a two-byte pointer to offset 0, 3 signature bytes.
	require.Len(t, rdata, 18+2+3)
	assert.Equal(t, []byte{0xC0, 0x00}, rdata[18:20])

	full := append(msg, rdata...)
	off := len(msg)
	got, err := dns.ParseSIGRData(full, &off, len(rdata))
	require.NoError(t, err)
	got.SetHeader(rec.Header())
	assert.True(t, rec.Equal(got))
}

func TestSIGRecord_CanonicalIgnoresCompression(t *testing.T) {
	rec := exampleSIG(t)
	rec.SignerName = "Example.COM."

	canon, err := rec.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, exampleRData, canon, "lowercased, uncompressed signer")

	signer := canon[18 : len(canon)-3]
	for i := 0; i < len(signer); {
		l := signer[i]
		assert.NotEqual(t, byte(0xC0), l&0xC0, "pointer in canonical signer at %d", i)
		if l == 0 {
			break
		}
		i += int(l) + 1
	}

	// A populated context must not change the canonical bytes.
	comp := dns.NewCompression()
	require.NoError(t, comp.Add("example.com", 0))
	again, err := rec.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, canon, again)
}

func TestSIGRecord_InvalidSigner(t *testing.T) {
	rec := exampleSIG(t)
	rec.SignerName = ""
	_, err := rec.MarshalRData()
	require.Error(t, err)
	assert.ErrorIs(t, err, dns.ErrDNSError)
}

func TestSIGRecord_ValidAt(t *testing.T) {
	rec := exampleSIG(t)
	assert.True(t, rec.ValidAt(mustTime(t, "20031215000000")))
	assert.True(t, rec.ValidAt(rec.Inception))
	assert.True(t, rec.ValidAt(rec.Expiration))
	assert.False(t, rec.ValidAt(mustTime(t, "20040101000001")))
	assert.False(t, rec.ValidAt(mustTime(t, "20031130235959")))
}
