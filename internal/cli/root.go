package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/log"
	"github.com/MacroPower/layoutfix/pkg/version"
	"github.com/MacroPower/layoutfix/pkg/walker"
)

// NewRootCmd returns the root command. Running it without a subcommand
// patches the default admin views directory with default options.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return runPatch(cc, walker.DefaultRoot, defaultPatchOptions())
		},
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().String("color", "auto", "Colorize output (auto, always, never)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		logger, err := newLogger(cc)
		if err != nil {
			return err
		}

		slog.SetDefault(logger)

		return nil
	}

	cmd.AddCommand(NewPatchCmd())
	cmd.AddCommand(NewRoutesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// newLogger creates a logger from the --log_level and --log_format flags,
// writing to the command's stderr.
func newLogger(cc *cobra.Command) (*slog.Logger, error) {
	flags := cc.Flags()

	var merr error

	logLevel, err := flags.GetString("log_level")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	logFormat, err := flags.GetString("log_format")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", layouterrors.ErrInvalidArguments, merr)
	}

	h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return nil, fmt.Errorf("failed creating log handler: %w", err)
	}

	return slog.New(h), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
