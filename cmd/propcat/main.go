package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/loopcontext/propcat"
)

// catalogOptions are the flags shared by every subcommand.
type catalogOptions struct {
	configPath string
	dir        string
	bucket     string
	basename   string
	suffix     string
	encoding   string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.New(tint.NewHandler(os.Stderr, nil)).Error("propcat failed", tint.Err(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &catalogOptions{}
	root := &cobra.Command{
		Use:           "propcat",
		Short:         "propcat - inspect and maintain property-file message catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config-file", "c", "", "options file (.properties or .yaml) with message.* settings")
	flags.StringVar(&opts.dir, "dir", ".", "directory holding the catalog files")
	flags.StringVar(&opts.bucket, "bucket", "", "blob bucket URL (file://, mem://); overrides --dir")
	flags.StringVar(&opts.basename, "basename", "messages", "catalog file name prefix")
	flags.StringVar(&opts.suffix, "suffix", ".properties", "catalog file extension")
	flags.StringVar(&opts.encoding, "encoding", propcat.DefaultEncoding, "catalog file encoding")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log catalog loads")

	root.AddCommand(newLookupCommand(opts), newMissingCommand(opts), newMergeCommand(opts))
	return root
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// config merges the --config-file options with explicitly set flags.
func (o *catalogOptions) config(cmd *cobra.Command) (propcat.Config, error) {
	var cfg propcat.Config
	if o.configPath != "" {
		loaded, err := propcat.LoadConfig(o.configPath)
		if err != nil {
			return propcat.Config{}, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if cfg.MessageBasename == "" || flags.Changed("basename") {
		cfg.MessageBasename = o.basename
	}
	if cfg.MessageSuffix == "" || flags.Changed("suffix") {
		cfg.MessageSuffix = o.suffix
	}
	if cfg.MessageEncoding == "" || flags.Changed("encoding") {
		cfg.MessageEncoding = o.encoding
	}
	return cfg, nil
}

// provider opens the catalog source. The returned func releases it.
func (o *catalogOptions) provider(ctx context.Context) (propcat.ResourceProvider, func(), error) {
	if o.bucket == "" {
		return propcat.NewDirProvider(o.dir), func() {}, nil
	}
	provider, err := propcat.OpenBlobProvider(ctx, o.bucket)
	if err != nil {
		return nil, nil, fmt.Errorf("open bucket %s: %w", o.bucket, err)
	}
	return provider, func() { _ = provider.Close() }, nil
}

type loadLogObserver struct {
	log *slog.Logger
}

func (o loadLogObserver) OnCatalogLoaded(path string) {
	o.log.Debug("catalog loaded", "path", path)
}

func (o loadLogObserver) OnCatalogLoadFailed(path string, err error) {}

func (o loadLogObserver) OnLocaleFallback(requestedLocale string, resolvedLocale string) {
	o.log.Debug("locale fallback", "requested", requestedLocale, "resolved", resolvedLocale)
}

func (o loadLogObserver) OnMessageMissing(locale string, key string) {
	o.log.Debug("message missing", "locale", locale, "key", key)
}

// openResolver builds a resolver from the shared flags. The returned func
// closes the resolver and the provider.
func (o *catalogOptions) openResolver(cmd *cobra.Command, mutate func(*propcat.Config)) (*propcat.DefaultMessageResolver, *slog.Logger, func(), error) {
	log := newLogger(cmd, o.verbose)
	cfg, err := o.config(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	provider, release, err := o.provider(cmd.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	cfg.Provider = provider
	cfg.Logger = propcat.NewSlogLogger(log)
	if o.verbose {
		cfg.Observer = loadLogObserver{log: log}
	}
	if mutate != nil {
		mutate(&cfg)
	}
	resolver, err := propcat.NewMessageResolver(cfg)
	if err != nil {
		release()
		return nil, nil, nil, err
	}
	return resolver, log, func() {
		resolver.Close()
		release()
	}, nil
}

// splitLocales parses a comma separated locale list, dropping blanks and
// duplicates.
func splitLocales(value string) []propcat.Locale {
	var out []propcat.Locale
	seen := map[string]struct{}{}
	for _, part := range strings.Split(value, ",") {
		locale := propcat.ParseLocale(part)
		if locale.IsZero() {
			continue
		}
		if _, ok := seen[locale.String()]; ok {
			continue
		}
		seen[locale.String()] = struct{}{}
		out = append(out, locale)
	}
	return out
}

// localeCatalogs returns the existing catalogs of locale's chain, most
// specific first, without the base catalog.
func localeCatalogs(resolver *propcat.DefaultMessageResolver, locale propcat.Locale) []*propcat.Catalog {
	var catalogs []*propcat.Catalog
	for _, suffix := range locale.Chain() {
		if suffix == "" {
			continue
		}
		if catalog, ok := resolver.Catalog(strings.TrimPrefix(suffix, "_")); ok {
			catalogs = append(catalogs, catalog)
		}
	}
	return catalogs
}

// translation returns the first non-empty value for key among catalogs.
func translation(catalogs []*propcat.Catalog, key string) (string, bool) {
	for _, catalog := range catalogs {
		if value, ok := catalog.Get(key); ok {
			return value, true
		}
	}
	return "", false
}
