package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/metrics"
	"github.com/spf13/cobra"
)

func newDecode(o *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode SIG RDATA given in hex and print it in presentation form.",
		Long: `Decode SIG RDATA given in hex and print it in presentation form.

The owner, TTL and class are not part of the RDATA; set them with --owner,
--ttl and --class. Empty RDATA ("") decodes to an unsigned record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := o.header()
			if err != nil {
				return err
			}
			rdata, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}

			off := 0
			rec, err := dns.ParseSIGRData(rdata, &off, len(rdata))
			metrics.ObserveCodec(metrics.OpDecode, err)
			if err != nil {
				return err
			}
			rec.SetHeader(h)
			fmt.Fprintln(cmd.OutOrStdout(), presentation(rec, o.textOptions()))
			return nil
		},
	}
}

func newEncode(o *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Parse SIG presentation text and print its wire RDATA in hex.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := o.parse(args)
			if err != nil {
				return err
			}
			b, err := rec.MarshalRData()
			metrics.ObserveCodec(metrics.OpEncode, err)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
}

func newCanonical(o *RootOptions) *cobra.Command {
	var prefix bool
	cmd := &cobra.Command{
		Use:   "canonical TEXT...",
		Short: "Parse SIG presentation text and print its canonical RDATA in hex.",
		Long: `Parse SIG presentation text and print its canonical RDATA in hex.

With --signing-prefix only the fixed fields and the canonical signer name
are printed, which is the part a signer hashes ahead of the covered RRset.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := o.parse(args)
			if err != nil {
				return err
			}
			var b []byte
			if prefix {
				b, err = rec.SigningPrefix()
			} else {
				b, err = rec.MarshalCanonical()
			}
			metrics.ObserveCodec(metrics.OpCanonical, err)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefix, "signing-prefix", false, "print the RDATA without the signature")
	return cmd
}

// parse reads SIG RDATA from args joined as one presentation text.
func (o *RootOptions) parse(args []string) (*dns.SIGRecord, error) {
	h, err := o.header()
	if err != nil {
		return nil, err
	}
	rec, err := dns.ParseSIGText(h, strings.Join(args, " "), o.Origin, o.textOptions())
	metrics.ObserveCodec(metrics.OpParse, err)
	if err != nil {
		o.logger.Debug("SIG parse failed", "error", err)
		return nil, err
	}
	return rec, nil
}

func presentation(rec *dns.SIGRecord, opts dns.TextOptions) string {
	h := rec.Header()
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s",
		dns.Fqdn(h.Name), h.TTL, dns.RecordClass(h.Class), dns.TypeSIG, dns.FormatSIG(rec, opts))
}
