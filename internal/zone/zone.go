// Package zone loads master-file text into memory. SIG records are decoded into
// *dns.SIGRecord; every other type is kept as its presentation text so a zone
// can be written back out unchanged.
package zone

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jroosing/hydrasig/internal/dns"
)

const defaultTTL = uint32(3600)

// Record is one resource record of a zone.
type Record struct {
	Name  string // absolute, with trailing dot
	Type  dns.RecordType
	Class dns.RecordClass
	TTL   uint32
	// RData depends on Type:
	// - SIG: *dns.SIGRecord
	// - anything else: string (presentation text, origin not applied)
	RData any
	// Origin is the $ORIGIN in effect where the record was read; relative
	// names in a textual RData resolve against it.
	Origin string
}

// SIG returns the decoded SIG record, or nil for other types.
func (r Record) SIG() *dns.SIGRecord {
	s, _ := r.RData.(*dns.SIGRecord)
	return s
}

// Options controls parsing.
type Options struct {
	// LegacyLabels parses SIG records in the RFC 2065 form without a labels field.
	LegacyLabels bool
	// Origin is used until the first $ORIGIN directive.
	Origin string
}

// Zone is a parsed master file. Origin is the last $ORIGIN in effect and
// DefaultTTL the last $TTL.
type Zone struct {
	Origin     string
	DefaultTTL uint32
	Records    []Record

	nameIndex map[string][]int // lowercased name without trailing dot -> indices into Records
}

// LoadFile reads and parses a zone file.
func LoadFile(path string, opts Options) (*Zone, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	z, err := ParseText(string(b), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return z, nil
}

// ParseText parses zone-file text.
//
// A line that starts with whitespace inherits the owner of the previous
// record. TTL and class may appear in either order before the type and
// default to $TTL and IN.
func ParseText(text string, opts Options) (*Zone, error) {
	origin := ""
	if opts.Origin != "" {
		origin = dns.Fqdn(opts.Origin)
	}
	ttlDefault := defaultTTL
	lastOwner := ""
	recs := make([]Record, 0)

	lines, err := logicalLines(text)
	if err != nil {
		return nil, err
	}
	for _, ll := range lines {
		tokens := strings.Fields(ll.text)
		if len(tokens) == 0 {
			continue
		}
		if strings.HasPrefix(tokens[0], "$") {
			switch strings.ToUpper(tokens[0]) {
			case "$ORIGIN":
				if len(tokens) != 2 {
					return nil, lineErr(ll.num, errors.New("invalid $ORIGIN directive"))
				}
				o, err := dns.AbsoluteName(tokens[1], origin)
				if err != nil {
					return nil, lineErr(ll.num, err)
				}
				origin = o
			case "$TTL":
				if len(tokens) != 2 {
					return nil, lineErr(ll.num, errors.New("invalid $TTL directive"))
				}
				ttl, err := dns.ParseTTL(tokens[1])
				if err != nil {
					return nil, lineErr(ll.num, err)
				}
				ttlDefault = ttl
			default:
				return nil, lineErr(ll.num, fmt.Errorf("unsupported directive %s", tokens[0]))
			}
			continue
		}
		if origin == "" {
			return nil, errors.New("zone file missing $ORIGIN")
		}

		owner := lastOwner
		rest := tokens
		if ll.indented {
			if owner == "" {
				return nil, lineErr(ll.num, errors.New("owner name omitted on first RR"))
			}
		} else {
			owner, err = dns.AbsoluteName(tokens[0], origin)
			if err != nil {
				return nil, lineErr(ll.num, err)
			}
			rest = tokens[1:]
		}
		lastOwner = owner

		rr, err := parseRR(owner, rest, ttlDefault, origin, opts)
		if err != nil {
			return nil, lineErr(ll.num, err)
		}
		rr.Origin = origin
		recs = append(recs, rr)
	}

	z := &Zone{Origin: origin, DefaultTTL: ttlDefault, Records: recs}
	z.buildIndex()
	return z, nil
}

func lineErr(num int, err error) error {
	return fmt.Errorf("line %d: %w", num, err)
}

func parseRR(owner string, rest []string, ttl uint32, origin string, opts Options) (Record, error) {
	var (
		haveTTL   bool
		haveClass bool
		idx       int
	)
	class := dns.ClassIN
	for idx < len(rest) {
		tok := rest[idx]
		if !haveTTL && dns.LooksLikeTTL(tok) {
			n, err := dns.ParseTTL(tok)
			if err != nil {
				return Record{}, err
			}
			ttl = n
			haveTTL = true
			idx++
			continue
		}
		if !haveClass {
			if c, ok := dns.ClassFromString(tok); ok {
				class = c
				haveClass = true
				idx++
				continue
			}
		}
		break
	}
	if idx >= len(rest) {
		return Record{}, errors.New("missing RR type")
	}
	typ, ok := dns.TypeFromString(rest[idx])
	if !ok {
		return Record{}, fmt.Errorf("unknown RR type %q", rest[idx])
	}
	idx++

	rr := Record{Name: owner, Type: typ, Class: class, TTL: ttl}
	if typ != dns.TypeSIG {
		if idx >= len(rest) {
			return Record{}, errors.New("missing RR rdata")
		}
		rr.RData = strings.Join(rest[idx:], " ")
		return rr, nil
	}

	h := dns.NewRRHeader(owner, class, ttl)
	sig, err := dns.ParseSIG(h, rest[idx:], origin, dns.TextOptions{LegacyLabels: opts.LegacyLabels})
	if err != nil {
		return Record{}, err
	}
	rr.RData = sig
	return rr, nil
}

// buildIndex creates the name index used by the lookup methods.
func (z *Zone) buildIndex() {
	z.nameIndex = make(map[string][]int, len(z.Records))
	for i, rr := range z.Records {
		key := nameKey(rr.Name)
		z.nameIndex[key] = append(z.nameIndex[key], i)
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}

// ContainsName reports whether qname is the origin or below it.
func (z *Zone) ContainsName(qname string) bool {
	q := nameKey(qname)
	o := nameKey(z.Origin)
	return o == "" || q == o || strings.HasSuffix(q, "."+o)
}

// Lookup returns the records of the given name, type and class.
func (z *Zone) Lookup(qname string, qtype dns.RecordType, qclass dns.RecordClass) []Record {
	indices := z.nameIndex[nameKey(qname)]
	if len(indices) == 0 {
		return nil
	}
	out := make([]Record, 0, len(indices))
	for _, idx := range indices {
		rr := z.Records[idx]
		if rr.Class == qclass && rr.Type == qtype {
			out = append(out, rr)
		}
	}
	return out
}

// Signatures returns the SIG records at owner covering the given type.
// A covered type of 0 matches every SIG at owner.
func (z *Zone) Signatures(owner string, covered dns.RecordType) []*dns.SIGRecord {
	var out []*dns.SIGRecord
	for _, idx := range z.nameIndex[nameKey(owner)] {
		sig := z.Records[idx].SIG()
		if sig == nil {
			continue
		}
		if covered == 0 || sig.TypeCovered == covered {
			out = append(out, sig)
		}
	}
	return out
}

// SIGs returns every SIG record in file order.
func (z *Zone) SIGs() []*dns.SIGRecord {
	var out []*dns.SIGRecord
	for _, rr := range z.Records {
		if sig := rr.SIG(); sig != nil {
			out = append(out, sig)
		}
	}
	return out
}

// Format renders the zone as master-file text that ParseText reads back.
// An $ORIGIN line is written whenever the origin in effect changes, so
// relative names in textual RData keep resolving to the same owners.
func (z *Zone) Format(opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$TTL %d\n", z.DefaultTTL)
	textOpts := dns.TextOptions{LegacyLabels: opts.LegacyLabels}

	current := ""
	setOrigin := func(origin string) {
		if origin != "" && origin != current {
			fmt.Fprintf(&b, "$ORIGIN %s\n", origin)
			current = origin
		}
	}
	for _, rr := range z.Records {
		origin := rr.Origin
		if origin == "" {
			origin = z.Origin
		}
		setOrigin(origin)

		rdata := fmt.Sprint(rr.RData)
		if sig := rr.SIG(); sig != nil {
			rdata = dns.FormatSIG(sig, textOpts)
		}
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\t%s\n", rr.Name, rr.TTL, rr.Class, rr.Type, rdata)
	}
	setOrigin(z.Origin)
	return b.String()
}

// --- parsing helpers ---

type logicalLine struct {
	num      int  // first physical line, 1-based
	indented bool // first physical line starts with whitespace
	text     string
}

// logicalLines joins parenthesised blocks and strips ';' comments.
func logicalLines(text string) ([]logicalLine, error) {
	var (
		buf     []string
		depth   int
		cur     logicalLine
		out     []logicalLine
		num     int
		scanner = bufio.NewScanner(strings.NewReader(text))
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		num++
		line := strings.TrimRight(stripComment(scanner.Text()), " \t\r\n")
		if strings.TrimSpace(line) == "" && depth == 0 {
			continue
		}
		if len(buf) == 0 {
			cur = logicalLine{num: num, indented: line[0] == ' ' || line[0] == '\t'}
		}
		depth += strings.Count(line, "(")
		depth -= strings.Count(line, ")")
		buf = append(buf, line)
		if depth <= 0 {
			joined := strings.Join(buf, " ")
			joined = strings.NewReplacer("(", " ", ")", " ").Replace(joined)
			cur.text = strings.TrimSpace(joined)
			buf = buf[:0]
			depth = 0
			if cur.text != "" {
				out = append(out, cur)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(buf) > 0 {
		return nil, lineErr(cur.num, errors.New("unbalanced parentheses"))
	}
	return out, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// DiscoverZoneFiles returns sorted list of files in dir.
func DiscoverZoneFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
