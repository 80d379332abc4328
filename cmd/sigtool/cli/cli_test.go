package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/database"
	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleHex  = "0001050200000e103ff363003fca84803039076578616d706c6503636f6d00010203"
	exampleText = "A 5 2 3600 20040101000000 20031201000000 12345 example.com. AQID"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "--owner", "example.com.", "--ttl", "3600", exampleHex)
	require.NoError(t, err)
	assert.Equal(t, "example.com.\t3600\tIN\tSIG\tA 5 2 3600 (\n\t20040101000000 20031201000000 12345 example.com.\n\tAQID )\n", out)
}

func TestDecode_Empty(t *testing.T) {
	out, err := run(t, "decode", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ".\t0\tIN\tSIG\t"), out)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad hex", []string{"decode", "zz"}},
		{"truncated", []string{"decode", "000105"}},
		{"bad class", []string{"decode", "--class", "XX", exampleHex}},
		{"no argument", []string{"decode"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEncode(t *testing.T) {
	out, err := run(t, append([]string{"encode", "--owner", "example.com."}, strings.Fields(exampleText)...)...)
	require.NoError(t, err)
	assert.Equal(t, exampleHex+"\n", out)
}

func TestEncode_RelativeSigner(t *testing.T) {
	out, err := run(t, "encode", "--origin", "example.com.", "--owner", "@",
		"A", "5", "2", "3600", "20040101000000", "20031201000000", "12345", "@", "AQID")
	require.NoError(t, err)
	assert.Equal(t, exampleHex+"\n", out)
}

func TestEncode_LegacyLabels(t *testing.T) {
	out, err := run(t, "encode", "--legacy-labels", "--owner", "example.com.",
		"A", "5", "3600", "20040101000000", "20031201000000", "12345", "example.com.", "AQID")
	require.NoError(t, err)
	assert.Equal(t, exampleHex+"\n", out)

	_, err = run(t, "encode", "--owner", "example.com.",
		"A", "5", "3600", "20040101000000", "20031201000000", "12345", "example.com.", "AQID")
	assert.ErrorIs(t, err, dns.ErrParse)
}

func TestCanonical(t *testing.T) {
	args := []string{"canonical", "--owner", "example.com.",
		"A", "5", "2", "3600", "20040101000000", "20031201000000", "12345", "EXAMPLE.COM.", "AQID"}
	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, exampleHex+"\n", out)

	out, err = run(t, append(args, "--signing-prefix")...)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(exampleHex, "010203")+"\n", out)
}

const testZone = `$ORIGIN example.com.
$TTL 3600
@    IN  A    192.0.2.1
     IN  SIG  A 5 2 3600 20040101000000 20031201000000 12345 example.com. AQID
mail IN  MX   10 mail.example.com.
     IN  SIG  MX 5 3 3600 20050101000000 20041201000000 12345 example.com. AQID
`

func writeZone(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.zone")
	require.NoError(t, os.WriteFile(path, []byte(testZone), 0o644))
	return path
}

func TestZone(t *testing.T) {
	path := writeZone(t)

	out, err := run(t, "zone", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\tSIG\t"))

	out, err = run(t, "zone", "--type", "MX", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\tSIG\t"))
	assert.True(t, strings.HasPrefix(out, "mail.example.com.\t3600\tIN\tSIG\tMX 5 3 3600 ("), out)

	out, err = run(t, "zone", "--at", "20031215000000", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "example.com.\t"), out)
	assert.Equal(t, 1, strings.Count(out, "\tSIG\t"))

	_, err = run(t, "zone", "--type", "NOPE", path)
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sig.db")

	out, err := run(t, "store", "put", "--db", db, "--owner", "example.com.", "--ttl", "3600", exampleText)
	require.NoError(t, err)
	assert.Equal(t, "1\texample.com.\n", out)

	out, err = run(t, "store", "put", "--db", db, "--zone", writeZone(t))
	require.NoError(t, err)
	assert.Equal(t, "2\texample.com.\n3\tmail.example.com.\n", out)

	out, err = run(t, "store", "list", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\tSIG\t"))

	out, err = run(t, "store", "list", "--db", db, "--type", "MX")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3\tmail.example.com."), out)

	out, err = run(t, "store", "list", "--db", db, "--owner", "EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\tSIG\t"))

	out, err = run(t, "store", "list", "--db", db, "--expired-before", "20041231000000")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\tSIG\t"))

	out, err = run(t, "store", "delete", "--db", db, "1")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1\n", out)

	_, err = run(t, "store", "delete", "--db", db, "1")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
