package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xdsa/lib/treeprint"
	"github.com/benz9527/xdsa/xlog"
)

// app is shared by the subcommands, it is filled once the
// persistent flags are parsed.
type app struct {
	out             io.Writer
	logger          xlog.XLogger
	maxRenderHeight int
	spew            bool
}

type subcommand func(a *app) *cobra.Command

// subcommands register themselves in init.
var subcommands []subcommand

func newRootCommand() *cobra.Command {
	a := &app{}
	logLevel := defaultLogLevel()
	logFormat := logFormatFlag{format: "text"}

	argparser := &cobra.Command{
		Use:   "xdsa {[flags]|SUBCOMMAND}",
		Short: "Replay the classical tree and graph demos",

		Args: cobra.NoArgs,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.maxRenderHeight <= 0 || a.maxRenderHeight > treeprint.MaxHeight {
				return fmt.Errorf("invalid --max-render-height: %d, want 1..%d", a.maxRenderHeight, treeprint.MaxHeight)
			}
			a.out = cmd.OutOrStdout()
			a.logger = xlog.NewXLogger(
				logLevel.option(),
				logFormat.option(),
				xlog.WithXLoggerWriter(zapcore.AddSync(cmd.ErrOrStderr())),
			).Named(cmd.Name())
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logger == nil {
				return nil
			}
			// Syncing a terminal may fail, the entries are already written.
			_ = a.logger.Sync()
			return nil
		},
	}
	argparser.PersistentFlags().Var(&logLevel, "log-level", "set the log `level` (debug, info, warn, error), env "+envLogLevel)
	argparser.PersistentFlags().Var(&logFormat, "log-format", "set the log `format` (json, text)")
	argparser.PersistentFlags().IntVar(&a.maxRenderHeight, "max-render-height", defaultRenderHeight(),
		"refuse to render a tree taller than `height`, env "+envMaxRenderHeight)
	argparser.PersistentFlags().BoolVar(&a.spew, "spew", false, "dump the node snapshot after each render")

	for _, sub := range subcommands {
		argparser.AddCommand(sub(a))
	}
	return argparser
}

func main() {
	argparser := newRootCommand()
	if err := argparser.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
