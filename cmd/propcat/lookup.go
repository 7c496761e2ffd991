package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/loopcontext/propcat"
)

func newLookupCommand(opts *catalogOptions) *cobra.Command {
	var locale, format string
	cmd := &cobra.Command{
		Use:   "lookup KEY [ARGS...]",
		Short: "Resolve a message key the way the resolver does at runtime",
		Long: `Resolve KEY along the locale chain (messages_en_US, messages_en, messages)
and print the result. ARGS are passed as format arguments; integers and
decimals are passed as numbers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageFormat, err := propcat.ParseMessageFormat(format)
			if err != nil {
				return err
			}
			resolver, _, closeAll, err := opts.openResolver(cmd, func(cfg *propcat.Config) {
				if opts.configPath == "" || cmd.Flags().Changed("format") {
					cfg.MessageFormat = messageFormat
				}
			})
			if err != nil {
				return err
			}
			defer closeAll()

			message := resolver.MessageLocale(args[0], propcat.ParseLocale(locale), lookupArgs(args[1:])...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale such as en_US; empty uses the base catalog")
	cmd.Flags().StringVarP(&format, "format", "f", "message", "argument format: message or string")
	return cmd
}

func lookupArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, value := range raw {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			args[i] = n
		} else if f, err := strconv.ParseFloat(value, 64); err == nil {
			args[i] = f
		} else {
			args[i] = value
		}
	}
	return args
}
