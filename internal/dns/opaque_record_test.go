package dns_test

import (
	"testing"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpaqueRecord(t *testing.T) {
	h := dns.NewRRHeader("example.com.", dns.ClassIN, 300)
	data := []byte{0x01, 0x02, 0x03, 0x04}
	rec := dns.NewOpaqueRecord(h, dns.TypeKEY, data)

	assert.Equal(t, dns.TypeKEY, rec.Type())
	assert.Equal(t, "example.com.", rec.Header().Name)
	assert.Equal(t, data, rec.Data)
}

func TestOpaqueRecord_MarshalRData(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		h := dns.NewRRHeader("example.com.", dns.ClassIN, 300)
		data := []byte{0xAB, 0xCD, 0xEF}
		rec := dns.NewOpaqueRecord(h, dns.RecordType(99), data)

		out, err := rec.MarshalRData()
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("nil data", func(t *testing.T) {
		h := dns.NewRRHeader("example.com.", dns.ClassIN, 300)
		rec := dns.NewOpaqueRecord(h, dns.RecordType(99), nil)

		out, err := rec.MarshalRData()
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestParseOpaqueRData(t *testing.T) {
	msg := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	t.Run("copies rdata", func(t *testing.T) {
		off := 1
		rec, err := dns.ParseOpaqueRData(msg, &off, 3, dns.TypeNXT)
		require.NoError(t, err)
		assert.Equal(t, 4, off)
		assert.Equal(t, dns.TypeNXT, rec.Type())
		assert.Equal(t, []byte{0x02, 0x03, 0x04}, rec.Data)

		rec.Data[0] = 0xFF
		assert.Equal(t, byte(0x02), msg[1])
	})

	t.Run("truncated", func(t *testing.T) {
		off := 3
		_, err := dns.ParseOpaqueRData(msg, &off, 5, dns.TypeNXT)
		require.ErrorIs(t, err, dns.ErrDNSError)
		assert.Equal(t, 3, off)
	})
}

func TestOpaqueRecord_SetHeader(t *testing.T) {
	rec := &dns.OpaqueRecord{T: dns.RecordType(99), Data: []byte{1, 2, 3}}
	h := dns.NewRRHeader("test.com.", dns.ClassIN, 600)
	rec.SetHeader(h)

	assert.Equal(t, "test.com.", rec.Header().Name)
	assert.Equal(t, uint16(dns.ClassIN), rec.Header().Class)
	assert.Equal(t, uint32(600), rec.Header().TTL)
}
