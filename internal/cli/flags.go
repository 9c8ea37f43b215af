package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"l10n-verify/internal/adapters"
	"l10n-verify/internal/app"
)

func newAppService(out io.Writer) app.Service {
	service := app.NewService()
	service.ReportWriter = adapters.ReportWriterAdapter{Stdout: out}
	return service
}

type symbolOptions struct {
	Catalogs   []string
	SourceRoot string
}

func bindSymbolFlags(cmd *cobra.Command, opts *symbolOptions) {
	cmd.Flags().StringSliceVar(&opts.Catalogs, "symbols", nil, "Symbol catalog paths (repeatable, later layers extend earlier ones)")
	cmd.Flags().StringVar(&opts.SourceRoot, "source-root", "", "Go source root used to resolve translation classes")
	_ = viper.BindPFlag("symbols", cmd.Flags().Lookup("symbols"))
	_ = viper.BindPFlag("source_root", cmd.Flags().Lookup("source-root"))
}

func resolveSymbols(cmd *cobra.Command, opts symbolOptions) app.SymbolSources {
	return app.SymbolSources{
		Catalogs:   resolveStrings(cmd, opts.Catalogs, "symbols", "symbols"),
		SourceRoot: resolveString(cmd, opts.SourceRoot, "source_root", "source-root"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
