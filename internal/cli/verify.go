package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"l10n-verify/internal/app"
)

type verifyOptions struct {
	Messages  string
	Symbols   symbolOptions
	FailBuild bool
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the authoritative messages file for duplicate and unresolvable keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Messages, "messages", "", "Authoritative messages file (default "+app.DefaultMessagesPath+")")
	cmd.Flags().BoolVar(&opts.FailBuild, "fail-build", false, "Fail when any verification issue is found")
	_ = viper.BindPFlag("messages", cmd.Flags().Lookup("messages"))
	_ = viper.BindPFlag("fail_build", cmd.Flags().Lookup("fail-build"))
	bindSymbolFlags(cmd, &opts.Symbols)
	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, opts verifyOptions) error {
	service := newAppService(cmd.OutOrStdout())
	result, err := service.Verify(ctx, app.VerifyRequest{
		MessagesPath: resolveString(cmd, opts.Messages, "messages", "messages"),
		Symbols:      resolveSymbols(cmd, opts.Symbols),
		FailBuild:    resolveBool(cmd, opts.FailBuild, "fail_build", "fail-build"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "verified: %s (%d keys, %d issues)\n", result.Filename, result.KeyCount, len(result.Issues))
	return nil
}
