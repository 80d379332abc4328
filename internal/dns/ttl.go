package dns

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ttlRE = regexp.MustCompile(`^(?:\d+[wdhmsWDHMS]?)+$`)

	errTTLSyntax   = errors.New("TTL must be an integer seconds or use suffixes (w/d/h/m/s)")
	errTTLTooLarge = errors.New("TTL too large")
)

// LooksLikeTTL reports whether tok matches the TTL grammar.
func LooksLikeTTL(tok string) bool { return ttlRE.MatchString(strings.TrimSpace(tok)) }

// ParseTTL parses a TTL in plain seconds ("3600") or BIND unit form ("1h30m",
// "2w"). A trailing number without a unit counts as seconds. The total must fit
// in 32 bits.
func ParseTTL(tok string) (uint32, error) {
	tok = strings.TrimSpace(tok)
	if !ttlRE.MatchString(tok) {
		return 0, fmt.Errorf("%w: %w", ErrParse, errTTLSyntax)
	}

	var total uint64
	start := 0
	for i := 0; i <= len(tok); i++ {
		if i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			continue
		}
		n, err := strconv.ParseUint(tok[start:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrParse, errTTLTooLarge)
		}
		mul := uint64(1)
		if i < len(tok) {
			mul = ttlUnit(tok[i])
		}
		if n > math.MaxUint32/mul {
			return 0, fmt.Errorf("%w: %w", ErrParse, errTTLTooLarge)
		}
		total += n * mul
		if total > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %w", ErrParse, errTTLTooLarge)
		}
		start = i + 1
		if start >= len(tok) {
			break
		}
	}
	return uint32(total), nil
}

func ttlUnit(c byte) uint64 {
	switch c | 0x20 {
	case 'm':
		return 60
	case 'h':
		return 3600
	case 'd':
		return 86400
	case 'w':
		return 604800
	default:
		return 1
	}
}
