package cli

import (
	"fmt"
	"time"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/zone"
	"github.com/spf13/cobra"
)

func newZone(o *RootOptions) *cobra.Command {
	var (
		covered string
		at      string
	)
	cmd := &cobra.Command{
		Use:   "zone FILE",
		Short: "Load a zone file and print its SIG records.",
		Long: `Load a zone file and print its SIG records.

--type limits the output to signatures covering one RR type. --at prints
only the signatures valid at the given YYYYMMDDHHMMSS instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := o.loadZone(args[0])
			if err != nil {
				return err
			}

			var t dns.RecordType
			if covered != "" {
				var ok bool
				if t, ok = dns.TypeFromString(covered); !ok {
					return fmt.Errorf("--type: unknown type %q", covered)
				}
			}
			var when time.Time
			if at != "" {
				if when, err = dns.ParseSIGTime(at); err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}

			opts := o.textOptions()
			for _, sig := range z.SIGs() {
				if t != 0 && sig.TypeCovered != t {
					continue
				}
				if !when.IsZero() && !sig.ValidAt(when) {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), presentation(sig, opts))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&covered, "type", "", "only signatures covering this type")
	cmd.Flags().StringVar(&at, "at", "", "only signatures valid at this YYYYMMDDHHMMSS instant")
	return cmd
}

func (o *RootOptions) loadZone(path string) (*zone.Zone, error) {
	z, err := zone.LoadFile(path, zone.Options{
		LegacyLabels: o.textOptions().LegacyLabels,
		Origin:       o.Origin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load zone %s: %w", path, err)
	}
	o.logger.Info("zone loaded", "path", path, "origin", z.Origin, "records", len(z.Records), "signatures", len(z.SIGs()))
	return z, nil
}
