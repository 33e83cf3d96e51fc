package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/routes"
)

const routesExample = `  # Show the built-in route table
  layoutfix routes

  # Start a custom mapping file from the built-in table
  layoutfix routes --output yaml > routes.yaml
`

// NewRoutesCmd returns the routes command.
func NewRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routes",
		Short:   "Show the route table used to classify folders",
		Example: routesExample,
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			mapping, err := flags.GetString("mapping")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			output, err := flags.GetString("output")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", layouterrors.ErrInvalidArguments, merr)
			}

			table := routes.DefaultTable()
			if mapping != "" {
				table, err = routes.LoadFile(mapping)
				if err != nil {
					return fmt.Errorf("load route mapping: %w", err)
				}
			}

			switch strings.ToLower(output) {
			case "yaml":
				b, err := routes.Marshal(table)
				if err != nil {
					return err
				}

				_, err = cc.OutOrStdout().Write(b)
				if err != nil {
					return fmt.Errorf("%w: %w", layouterrors.ErrWrite, err)
				}

				return nil

			case "table", "":
				printer, err := newPrinter(cc)
				if err != nil {
					return fmt.Errorf("%w: %w", layouterrors.ErrInvalidArguments, err)
				}

				printer.Routes(table)

				return nil

			default:
				return fmt.Errorf("%w: unknown output format %q", layouterrors.ErrInvalidArguments, output)
			}
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("mapping", "m", "", "YAML route table to show instead of the built-in one")
	cmd.Flags().StringP("output", "o", "table", "Output format (table, yaml)")

	must(cmd.MarkFlagFilename("mapping", "yaml", "yml"))

	return cmd
}
