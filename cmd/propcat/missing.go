package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMissingCommand(opts *catalogOptions) *cobra.Command {
	var locales string
	cmd := &cobra.Command{
		Use:   "missing",
		Short: "List base catalog keys without a translation for each locale",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets := splitLocales(locales)
			if len(targets) == 0 {
				return errors.New("missing: --locales is required")
			}
			resolver, log, closeAll, err := opts.openResolver(cmd, nil)
			if err != nil {
				return err
			}
			defer closeAll()

			base, ok := resolver.Catalog("")
			if !ok {
				return fmt.Errorf("missing: base catalog %s%s not found", resolver.Config().MessageBasename, resolver.Config().MessageSuffix)
			}
			out := cmd.OutOrStdout()
			total := 0
			for _, locale := range targets {
				catalogs := localeCatalogs(resolver, locale)
				if len(catalogs) == 0 {
					log.Warn("no catalog for locale", "locale", locale.String())
				}
				for _, key := range base.Keys() {
					if _, ok := translation(catalogs, key); ok {
						continue
					}
					total++
					if _, err := fmt.Fprintf(out, "%s\t%s\n", locale, key); err != nil {
						return err
					}
				}
			}
			log.Info("missing translations", "count", total)
			return nil
		},
	}
	cmd.Flags().StringVar(&locales, "locales", "", "comma separated target locales (e.g. es,fr_CA)")
	return cmd
}
