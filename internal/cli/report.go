package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"l10n-verify/internal/app"
	"l10n-verify/internal/types"
)

type reportOptions struct {
	Messages     string
	BaseDir      string
	Translations string
	Symbols      symbolOptions
	Format       string
	Output       string
	Title        string
	Workers      int
}

func newReportCommand() *cobra.Command {
	opts := reportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare translations against the authoritative messages file and render a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Messages, "messages", "", "Authoritative messages file, relative to the base directory (default "+app.DefaultMessagesPath+")")
	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", ".", "Project base directory")
	cmd.Flags().StringVar(&opts.Translations, "translations", app.DefaultTranslationsPattern, "Glob pattern of translated messages files, relative to the base directory")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.ReportFormatText), "Report format (text|json|yaml)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Report output path (default stdout)")
	cmd.Flags().StringVar(&opts.Title, "title", app.DefaultReportTitle, "Report title")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent translation parsers (0 = number of CPUs)")
	_ = viper.BindPFlag("messages", cmd.Flags().Lookup("messages"))
	_ = viper.BindPFlag("base_dir", cmd.Flags().Lookup("base-dir"))
	_ = viper.BindPFlag("translations", cmd.Flags().Lookup("translations"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("title", cmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	bindSymbolFlags(cmd, &opts.Symbols)
	return cmd
}

func runReport(ctx context.Context, cmd *cobra.Command, opts reportOptions) error {
	service := newAppService(cmd.OutOrStdout())
	result, err := service.Report(ctx, app.ReportRequest{
		MessagesPath: resolveString(cmd, opts.Messages, "messages", "messages"),
		BaseDir:      resolveString(cmd, opts.BaseDir, "base_dir", "base-dir"),
		Pattern:      resolveString(cmd, opts.Translations, "translations", "translations"),
		Symbols:      resolveSymbols(cmd, opts.Symbols),
		Format:       types.ReportFormat(resolveString(cmd, opts.Format, "format", "format")),
		Output:       resolveString(cmd, opts.Output, "output", "output"),
		Title:        resolveString(cmd, opts.Title, "title", "title"),
		Workers:      resolveInt(cmd, opts.Workers, "workers", "workers"),
	})
	if err != nil {
		return err
	}
	if result.Output != "" && result.Output != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "report written: %s\n", result.Output)
	}
	return nil
}
