// Package cli implements the sigtool command line: SIG RDATA conversion
// between hex wire form and presentation text, zone inspection and the
// SIG record store.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/dns"
	"github.com/jroosing/hydrasig/internal/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by every subcommand.
type RootOptions struct {
	ConfigPath   string
	LegacyLabels bool
	Origin       string
	Owner        string
	TTL          uint32
	Class        string
	DBPath       string
	LogLevel     string

	cfg    *config.Config
	logger *slog.Logger
}

// AddFlags registers the persistent flags on cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.ConfigPath, "config", "", "path to YAML configuration file (or set "+config.EnvConfigPath+")")
	f.BoolVar(&o.LegacyLabels, "legacy-labels", false, "use the RFC 2065 presentation form without a labels field")
	f.StringVar(&o.Origin, "origin", "", "origin for relative owner and signer names")
	f.StringVar(&o.Owner, "owner", ".", "owner name of the record")
	f.Uint32Var(&o.TTL, "ttl", 0, "TTL of the record")
	f.StringVar(&o.Class, "class", "IN", "class of the record")
	f.StringVar(&o.DBPath, "db", "", "path to the SIG record database (default from config)")
	f.StringVar(&o.LogLevel, "log-level", "warn", "minimum log level (debug, info, warn, error)")
}

// load resolves configuration and logging once flags are parsed. Flags win
// over the configuration file.
func (o *RootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.ResolveConfigPath(o.ConfigPath))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("legacy-labels") {
		cfg.Codec.LegacyLabels = o.LegacyLabels
	}
	if o.Origin == "" {
		o.Origin = cfg.Codec.DefaultOrigin
	}
	if o.DBPath == "" {
		o.DBPath = cfg.Database.Path
	}

	lc := cfg.LogConfig()
	lc.Level = o.LogLevel
	lc.Output = cmd.ErrOrStderr()
	o.logger = logging.Configure(lc)
	o.cfg = cfg
	return nil
}

func (o *RootOptions) textOptions() dns.TextOptions {
	return o.cfg.TextOptions()
}

// header builds the owner context that the wire form does not carry.
func (o *RootOptions) header() (dns.RRHeader, error) {
	origin := o.Origin
	if origin == "" {
		origin = "."
	}
	name, err := dns.AbsoluteName(o.Owner, origin)
	if err != nil {
		return dns.RRHeader{}, fmt.Errorf("--owner: %w", err)
	}
	cls, ok := dns.ClassFromString(o.Class)
	if !ok {
		return dns.RRHeader{}, fmt.Errorf("--class: unknown class %q", o.Class)
	}
	return dns.NewRRHeader(name, cls, o.TTL), nil
}

// New builds the sigtool root command.
func New() *cobra.Command {
	o := &RootOptions{}

	cmd := &cobra.Command{
		Use:               "sigtool",
		Short:             "Convert, inspect and store DNS SIG records.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load(cmd)
		},
	}
	o.AddFlags(cmd)

	cmd.AddCommand(newDecode(o))
	cmd.AddCommand(newEncode(o))
	cmd.AddCommand(newCanonical(o))
	cmd.AddCommand(newZone(o))
	cmd.AddCommand(newStore(o))
	return cmd
}
