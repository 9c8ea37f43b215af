package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"l10n-verify/internal/app"
)

type inspectOptions struct {
	Messages string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the locale, keys and translation classes of one messages file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Messages, "messages", "", "Messages file to inspect")
	_ = viper.BindPFlag("messages", cmd.Flags().Lookup("messages"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions, args []string) error {
	path := resolveString(cmd, opts.Messages, "messages", "messages")
	if len(args) == 1 {
		path = args[0]
	}
	service := newAppService(cmd.OutOrStdout())
	result, err := service.Inspect(ctx, app.InspectRequest{Path: path})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file: %s\n", result.Filename)
	if result.Locale != nil {
		locale := result.Locale.Language
		if result.Locale.Country != "" {
			locale += " (" + result.Locale.Country + ")"
		}
		fmt.Fprintf(out, "locale: %s [%s]\n", result.Locale.Tag, locale)
	}
	fmt.Fprintf(out, "keys: %d\n", result.KeyCount)
	fmt.Fprintf(out, "duplicate keys: %d\n", len(result.DuplicateKeys))
	for _, key := range result.DuplicateKeys {
		fmt.Fprintf(out, "- %s\n", key)
	}
	fmt.Fprintf(out, "translation classes: %d\n", len(result.Classes))
	for _, class := range result.Classes {
		fmt.Fprintf(out, "- %s: %s\n", class.Name, strings.Join(class.Members, ", "))
	}
	return nil
}
