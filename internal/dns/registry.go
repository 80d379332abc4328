package dns

import (
	"strconv"
	"strings"

	mdns "github.com/miekg/dns"
)

// The mnemonic tables come from github.com/miekg/dns so every IANA-assigned
// type and class is known without maintaining a copy here. Unassigned codes use
// the RFC 3597 generic forms TYPEnnn and CLASSnnn in both directions.

// String returns the presentation mnemonic for the type (e.g. "A", "TYPE65280").
func (t RecordType) String() string {
	if s, ok := mdns.TypeToString[uint16(t)]; ok && t != 0 {
		return s
	}
	return "TYPE" + strconv.FormatUint(uint64(t), 10)
}

// TypeFromString resolves a type mnemonic, case-insensitively.
func TypeFromString(s string) (RecordType, bool) {
	u := strings.ToUpper(strings.TrimSpace(s))
	if t, ok := mdns.StringToType[u]; ok && t != 0 {
		return RecordType(t), true
	}
	if n, ok := genericCode(u, "TYPE"); ok {
		return RecordType(n), true
	}
	return 0, false
}

// String returns the presentation mnemonic for the class (e.g. "IN").
func (c RecordClass) String() string {
	if s, ok := mdns.ClassToString[uint16(c)]; ok {
		return s
	}
	return "CLASS" + strconv.FormatUint(uint64(c), 10)
}

// ClassFromString resolves a class mnemonic, case-insensitively.
func ClassFromString(s string) (RecordClass, bool) {
	u := strings.ToUpper(strings.TrimSpace(s))
	if c, ok := mdns.StringToClass[u]; ok {
		return RecordClass(c), true
	}
	if n, ok := genericCode(u, "CLASS"); ok {
		return RecordClass(n), true
	}
	return 0, false
}

// AlgorithmFromString accepts a decimal algorithm number or a DNSSEC
// algorithm mnemonic such as "RSASHA1".
func AlgorithmFromString(s string) (uint8, bool) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint8(n), true
	}
	if a, ok := mdns.StringToAlgorithm[strings.ToUpper(s)]; ok {
		return a, true
	}
	return 0, false
}

func genericCode(s, prefix string) (uint16, bool) {
	if !strings.HasPrefix(s, prefix) || len(s) == len(prefix) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[len(prefix):], 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
