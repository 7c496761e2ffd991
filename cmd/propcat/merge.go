package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	"github.com/spf13/cobra"

	"github.com/loopcontext/propcat"
)

type mergeConfig struct {
	locales         string
	outdir          string
	translatePrefix string
}

func newMergeCommand(opts *catalogOptions) *cobra.Command {
	var cfg mergeConfig
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Write translate.<basename>_<locale> files for translators",
		Long: `For each target locale, merge writes translate.<basename>_<locale><suffix>
holding every key of the base catalog. Keys already translated somewhere in the
locale chain keep their translation; the rest carry the base value as a
placeholder.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd, opts, &cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.locales, "locales", "", "comma separated target locales (e.g. es,fr_CA)")
	cmd.Flags().StringVar(&cfg.outdir, "outdir", "", "output directory (default: --dir)")
	cmd.Flags().StringVar(&cfg.translatePrefix, "translatePrefix", "translate.", "file name prefix for output files")
	return cmd
}

func runMerge(cmd *cobra.Command, opts *catalogOptions, cfg *mergeConfig) error {
	targets := splitLocales(cfg.locales)
	if len(targets) == 0 {
		return errors.New("merge: --locales is required")
	}
	resolver, log, closeAll, err := opts.openResolver(cmd, nil)
	if err != nil {
		return err
	}
	defer closeAll()

	resolved := resolver.Config()
	base, ok := resolver.Catalog("")
	if !ok {
		return fmt.Errorf("merge: base catalog %s%s not found", resolved.MessageBasename, resolved.MessageSuffix)
	}
	outdir := cfg.outdir
	if outdir == "" {
		outdir = opts.dir
	}
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outdir, err)
	}

	for _, locale := range targets {
		merged, placeholders, err := mergeLocale(base, localeCatalogs(resolver, locale))
		if err != nil {
			return fmt.Errorf("merge %s: %w", locale, err)
		}
		name := cfg.translatePrefix + filepath.Base(resolved.MessageBasename) + "_" + locale.String() + resolved.MessageSuffix
		outPath := filepath.Join(outdir, name)
		if err := writeProperties(outPath, merged); err != nil {
			return err
		}
		log.Info("wrote translate file", "path", outPath, "keys", merged.Len(), "placeholders", placeholders)
	}
	return nil
}

// mergeLocale copies every base key, preferring the locale's translation.
// It reports how many keys fell back to the base value.
func mergeLocale(base *propcat.Catalog, catalogs []*propcat.Catalog) (*properties.Properties, int, error) {
	merged := properties.NewProperties()
	merged.DisableExpansion = true
	placeholders := 0
	for _, key := range base.Keys() {
		value, ok := translation(catalogs, key)
		if !ok {
			value, _ = base.Get(key)
			placeholders++
		}
		if _, _, err := merged.Set(key, value); err != nil {
			return nil, 0, err
		}
	}
	return merged, placeholders, nil
}

func writeProperties(path string, props *properties.Properties) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := props.Write(f, properties.UTF8); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
