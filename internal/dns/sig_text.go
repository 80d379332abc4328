package dns

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Presentation form of SIG RDATA:
//
//	<type> <alg> [<labels>] <origttl> ( <expire> <inception> <keytag> <signer>
//	        <base64 signature ...> )
//
// Parentheses only continue the record over several lines.
const base64LineWidth = 64

// TextOptions controls the presentation format.
type TextOptions struct {
	// LegacyLabels selects the original RFC 2065 form, which has no labels
	// field. Parsing derives the label count from the owner name instead and
	// formatting leaves it out.
	LegacyLabels bool
}

var (
	errUnknownType = errors.New("unknown type mnemonic")
	errBadNumber   = errors.New("not a valid number in range")
	errRelative    = errors.New("relative name without origin")
	errEscaped     = errors.New("escaped names are not supported")
)

// tokenCursor walks a presentation token stream, skipping "(" and ")".
type tokenCursor struct {
	tokens []string
	pos    int
}

func (c *tokenCursor) skipParens() {
	for c.pos < len(c.tokens) && (c.tokens[c.pos] == "(" || c.tokens[c.pos] == ")") {
		c.pos++
	}
}

func (c *tokenCursor) next(field string) (string, error) {
	c.skipParens()
	if c.pos >= len(c.tokens) {
		return "", &ParseError{Field: field, Err: errMissingToken}
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

func (c *tokenCursor) rest() []string {
	out := make([]string, 0, len(c.tokens)-c.pos)
	for ; c.pos < len(c.tokens); c.pos++ {
		if tok := c.tokens[c.pos]; tok != "(" && tok != ")" {
			out = append(out, tok)
		}
	}
	return out
}

func (c *tokenCursor) uint(field string, bits int) (uint64, error) {
	tok, err := c.next(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return 0, &ParseError{Field: field, Token: tok, Err: errBadNumber}
	}
	return n, nil
}

// ParseSIG builds a SIG record from presentation tokens.
//
// h supplies owner, class and TTL; the owner name is also the label source in
// legacy mode. A relative signer name is completed with origin. Tokens after
// the signer name are concatenated and base64-decoded as the signature; when
// there are none the signature is absent.
func ParseSIG(h RRHeader, tokens []string, origin string, opts TextOptions) (*SIGRecord, error) {
	c := &tokenCursor{tokens: tokens}
	rec := &SIGRecord{H: h}

	tok, err := c.next("TypeCovered")
	if err != nil {
		return nil, err
	}
	covered, ok := TypeFromString(tok)
	if !ok {
		return nil, &ParseError{Field: "TypeCovered", Token: tok, Err: errUnknownType}
	}
	rec.TypeCovered = covered

	if tok, err = c.next("Algorithm"); err != nil {
		return nil, err
	}
	alg, ok := AlgorithmFromString(tok)
	if !ok {
		return nil, &ParseError{Field: "Algorithm", Token: tok, Err: errBadNumber}
	}
	rec.Algorithm = alg

	if opts.LegacyLabels {
		rec.Labels = ownerLabels(h.Name)
	} else {
		n, err := c.uint("Labels", 8)
		if err != nil {
			return nil, err
		}
		rec.Labels = uint8(n)
	}

	if tok, err = c.next("OrigTTL"); err != nil {
		return nil, err
	}
	if rec.OrigTTL, err = ParseTTL(tok); err != nil {
		return nil, &ParseError{Field: "OrigTTL", Token: tok, Err: err}
	}

	if tok, err = c.next("Expiration"); err != nil {
		return nil, err
	}
	if rec.Expiration, err = ParseSIGTime(tok); err != nil {
		return nil, &ParseError{Field: "Expiration", Token: tok, Err: err}
	}

	if tok, err = c.next("Inception"); err != nil {
		return nil, err
	}
	if rec.Inception, err = ParseSIGTime(tok); err != nil {
		return nil, &ParseError{Field: "Inception", Token: tok, Err: err}
	}

	keyTag, err := c.uint("KeyTag", 16)
	if err != nil {
		return nil, err
	}
	rec.KeyTag = uint16(keyTag)

	if tok, err = c.next("SignerName"); err != nil {
		return nil, err
	}
	if rec.SignerName, err = AbsoluteName(tok, origin); err != nil {
		return nil, &ParseError{Field: "SignerName", Token: tok, Err: err}
	}

	rest := c.rest()
	if len(rest) == 0 {
		return rec, nil
	}
	sig, err := DecodeBase64Tokens(rest)
	if err != nil {
		return nil, &ParseError{Field: "Signature", Token: strings.Join(rest, " "), Err: err}
	}
	rec.Signature = PresentSignature(sig)
	return rec, nil
}

// ParseSIGText tokenises presentation text (see Tokenize) and parses it with ParseSIG.
func ParseSIGText(h RRHeader, text, origin string, opts TextOptions) (*SIGRecord, error) {
	return ParseSIG(h, Tokenize(text), origin, opts)
}

// FormatSIG renders SIG RDATA in presentation form.
//
// A signed record spans several lines: the fixed fields open a parenthesised
// block and the base64 signature follows in 64-column, tab-indented lines,
// closed by ")". An unsigned record is a single line without parentheses or
// signature block.
func FormatSIG(r *SIGRecord, opts TextOptions) string {
	var b strings.Builder
	b.WriteString(r.TypeCovered.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(r.Algorithm), 10))
	b.WriteByte(' ')
	if !opts.LegacyLabels {
		b.WriteString(strconv.FormatUint(uint64(r.Labels), 10))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatUint(uint64(r.OrigTTL), 10))

	sig, signed := r.Signature.Bytes()
	if signed {
		b.WriteString(" (\n\t")
	} else {
		b.WriteByte(' ')
	}
	b.WriteString(FormatSIGTime(r.Expiration))
	b.WriteByte(' ')
	b.WriteString(FormatSIGTime(r.Inception))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(r.KeyTag), 10))
	b.WriteByte(' ')
	b.WriteString(Fqdn(r.SignerName))
	if !signed {
		return b.String()
	}
	b.WriteByte('\n')
	b.WriteString(FormatBase64Block(sig, base64LineWidth, "\t", true))
	return b.String()
}

// AbsoluteName resolves a presentation name against origin. "@" is the origin
// itself; names ending in "." are already absolute. Backslash escapes
// (RFC 1035 Section 5.1) are rejected rather than read as literal bytes.
func AbsoluteName(name, origin string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.ContainsRune(name, '\\') || strings.ContainsRune(origin, '\\') {
		return "", fmt.Errorf("%w: %w: %q", ErrParse, errEscaped, name)
	}
	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty name", ErrParse)
	case name == "@":
		if origin == "" {
			return "", fmt.Errorf("%w: %w", ErrParse, errRelative)
		}
		name = Fqdn(origin)
	case strings.HasSuffix(name, "."):
	default:
		if origin == "" {
			return "", fmt.Errorf("%w: %w", ErrParse, errRelative)
		}
		name = name + "." + Fqdn(origin)
		if origin == "." {
			name = name[:len(name)-1]
		}
	}
	if _, err := EncodeName(name); err != nil {
		return "", err
	}
	return Fqdn(name), nil
}
