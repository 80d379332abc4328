package dns_test

import (
	"testing"
	"time"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSIGTime(t *testing.T) {
	tests := []struct {
		in   string
		unix int64
	}{
		{"19700101000000", 0},
		{"20031201000000", 1070236800},
		{"20040101000000", 1072915200},
		{"20380119031407", 2147483647},
		{"20041301000000", 1104537600}, // month 13 rolls into 2005
		{"20040100000000", 1072828800}, // day 0 is the last day of December
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := dns.ParseSIGTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.unix, got.Unix())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseSIGTime_Errors(t *testing.T) {
	for _, in := range []string{"", "2004010100000", "200401010000000", "2004-1-010000", "2004010100000a", " 2004010100000"} {
		_, err := dns.ParseSIGTime(in)
		assert.ErrorIs(t, err, dns.ErrParse, in)
	}
}

func TestFormatSIGTime(t *testing.T) {
	assert.Equal(t, "20040101000000", dns.FormatSIGTime(time.Unix(1072915200, 0)))
	assert.Equal(t, "19700101000000", dns.FormatSIGTime(time.Unix(0, 0)))

	// Non-UTC input is rendered in UTC.
	loc := time.FixedZone("UTC+2", 2*3600)
	assert.Equal(t, "20031231220000", dns.FormatSIGTime(time.Date(2004, 1, 1, 0, 0, 0, 0, loc)))
}

func TestSIGTime_TextRoundTrip(t *testing.T) {
	for _, s := range []string{"20040101000000", "19991231235959", "21060207062815"} {
		tm, err := dns.ParseSIGTime(s)
		require.NoError(t, err)
		assert.Equal(t, s, dns.FormatSIGTime(tm))
	}
}

func TestSIGTime_Wire(t *testing.T) {
	tm := time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, uint32(0x3FF36300), dns.SIGTimeToWire(tm))
	assert.True(t, tm.Equal(dns.SIGTimeFromWire(0x3FF36300)))

	// Sub-second precision is dropped.
	assert.Equal(t, uint32(0x3FF36300), dns.SIGTimeToWire(tm.Add(900*time.Millisecond)))

	last := dns.SIGTimeFromWire(0xFFFFFFFF)
	assert.Equal(t, "21060207062815", dns.FormatSIGTime(last))
	assert.Equal(t, uint32(0), dns.SIGTimeToWire(last.Add(time.Second)))
}
