package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jroosing/hydrasig/internal/database"
	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/spf13/cobra"
)

func newStore(o *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the SIG record database.",
	}
	cmd.AddCommand(newStorePut(o))
	cmd.AddCommand(newStoreList(o))
	cmd.AddCommand(newStoreDelete(o))
	return cmd
}

func newStorePut(o *RootOptions) *cobra.Command {
	var fromZone bool
	cmd := &cobra.Command{
		Use:   "put TEXT... | --zone FILE",
		Short: "Store a SIG record, or every SIG record of a zone file.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recs []*dns.SIGRecord
			if fromZone {
				z, err := o.loadZone(args[0])
				if err != nil {
					return err
				}
				recs = z.SIGs()
			} else {
				rec, err := o.parse(args)
				if err != nil {
					return err
				}
				recs = []*dns.SIGRecord{rec}
			}

			return o.withDB(func(db *database.DB) error {
				for _, rec := range recs {
					id, err := db.PutSIG(rec, o.textOptions())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, dns.Fqdn(rec.Header().Name))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&fromZone, "zone", false, "read SIG records from the zone file given as argument")
	return cmd
}

func newStoreList(o *RootOptions) *cobra.Command {
	var (
		f         database.SIGFilter
		covered   string
		keyTag    int
		expiredBy string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored SIG records.",
		Long: `List stored SIG records.

--owner limits the output to one owner name. --expired-before overrides the
other filters.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("owner") {
				f.Owner = o.Owner
			}
			if covered != "" {
				t, ok := dns.TypeFromString(covered)
				if !ok {
					return fmt.Errorf("--type: unknown type %q", covered)
				}
				f.TypeCovered = t
			}
			if keyTag >= 0 {
				if keyTag > 0xFFFF {
					return fmt.Errorf("--key-tag: %d out of range", keyTag)
				}
				tag := uint16(keyTag)
				f.KeyTag = &tag
			}

			return o.withDB(func(db *database.DB) error {
				var (
					stored []database.StoredSIG
					err    error
				)
				if expiredBy != "" {
					t, perr := dns.ParseSIGTime(expiredBy)
					if perr != nil {
						return fmt.Errorf("--expired-before: %w", perr)
					}
					stored, err = db.ExpiredBefore(t)
				} else {
					stored, err = db.ListSIGs(f)
				}
				if err != nil {
					return err
				}
				for _, s := range stored {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", s.ID, presentation(s.Record, o.textOptions()))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&f.Signer, "signer", "", "only records by this signer")
	cmd.Flags().StringVar(&covered, "type", "", "only records covering this type")
	cmd.Flags().IntVar(&keyTag, "key-tag", -1, "only records with this key tag")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "maximum number of records")
	cmd.Flags().StringVar(&expiredBy, "expired-before", "", "only records expiring before this YYYYMMDDHHMMSS instant")
	return cmd
}

func newStoreDelete(o *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete stored SIG records by ID.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid record id %q", a)
				}
				ids = append(ids, id)
			}
			return o.withDB(func(db *database.DB) error {
				for _, id := range ids {
					if err := db.DeleteSIG(id); err != nil {
						return fmt.Errorf("record %d: %w", id, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
				}
				return nil
			})
		},
	}
}

func (o *RootOptions) withDB(fn func(*database.DB) error) error {
	db, err := database.Open(o.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			o.logger.Warn("failed to close database", "error", err)
		}
	}()
	return fn(db)
}
