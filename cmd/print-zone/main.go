package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/zone"
)

func main() {
	legacy := flag.Bool("legacy-labels", false, "zone uses the RFC 2065 SIG form")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: print-zone [-legacy-labels] path/to/zonefile\n")
		os.Exit(2)
	}
	path := flag.Arg(0)
	z, err := zone.LoadFile(path, zone.Options{LegacyLabels: *legacy})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load zone: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ORIGIN: %s\n", z.Origin)
	fmt.Printf("DEFAULT_TTL: %d\n", z.DefaultTTL)
	fmt.Println("SIGNATURES:")

	sigs := z.SIGs()
	sort.SliceStable(sigs, func(i, j int) bool {
		a, b := sigs[i], sigs[j]
		if an, bn := dns.CanonicalName(a.Header().Name), dns.CanonicalName(b.Header().Name); an != bn {
			return an < bn
		}
		if a.TypeCovered != b.TypeCovered {
			return a.TypeCovered < b.TypeCovered
		}
		return a.KeyTag < b.KeyTag
	})

	opts := dns.TextOptions{LegacyLabels: *legacy}
	for _, sig := range sigs {
		h := sig.Header()
		state := "signed"
		if !sig.IsSigned() {
			state = "unsigned"
		}
		fmt.Printf("  ; %s, valid %s..%s\n", state, dns.FormatSIGTime(sig.Inception), dns.FormatSIGTime(sig.Expiration))
		fmt.Printf("  %s %d %s SIG %s\n", h.Name, h.TTL, dns.RecordClass(h.Class), dns.FormatSIG(sig, opts))
	}
}
