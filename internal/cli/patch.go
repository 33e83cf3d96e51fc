package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/patcher"
	"github.com/MacroPower/layoutfix/pkg/paths"
	"github.com/MacroPower/layoutfix/pkg/routes"
	"github.com/MacroPower/layoutfix/pkg/walker"
)

const (
	patchDesc = `Insert selectedRoute and title arguments into the AdminLayout call of
every admin screen.

Each screen file is classified by the name of the folder that contains it.
The folder name is matched against the route table (see "layoutfix routes"),
and the matching route and title are inserted in front of the "child: Padding("
argument. Files that already pass a route are left untouched.
`
	patchExample = `  # Patch lib/views/admin in the current project
  layoutfix patch

  # Preview the changes without writing
  layoutfix patch --dry-run --diff

  # Patch the admin views of the enclosing project from any subdirectory
  layoutfix patch --project

  # Use a custom route table and skip legacy screens
  layoutfix patch lib/views/admin --mapping routes.yaml --exclude 'legacy/**'
`
)

type patchOptions struct {
	filename  string
	mapping   string
	match     string
	exclude   []string
	timeout   time.Duration
	jobs      int
	project   bool
	normalize bool
	dryRun    bool
	diff      bool
	strict    bool
	quiet     bool
}

func defaultPatchOptions() patchOptions {
	return patchOptions{
		filename: walker.DefaultFilename,
		match:    string(routes.DefaultMatchMode),
		jobs:     1,
	}
}

// NewPatchCmd returns the patch command.
func NewPatchCmd() *cobra.Command {
	defaults := defaultPatchOptions()

	cmd := &cobra.Command{
		Use:     "patch [root]",
		Short:   "Add routes and titles to admin layout calls",
		Long:    patchDesc,
		Example: patchExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			flags := cc.Flags()

			opts := patchOptions{}

			var err error

			opts.filename, err = flags.GetString("filename")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.mapping, err = flags.GetString("mapping")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.match, err = flags.GetString("match")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.exclude, err = flags.GetStringArray("exclude")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.timeout, err = flags.GetDuration("timeout")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.jobs, err = flags.GetInt("jobs")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.project, err = flags.GetBool("project")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.normalize, err = flags.GetBool("normalize")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.dryRun, err = flags.GetBool("dry-run")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.diff, err = flags.GetBool("diff")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.strict, err = flags.GetBool("strict")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			opts.quiet, err = flags.GetBool("quiet")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if opts.jobs < 1 {
				merr = multierror.Append(merr, fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs))
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", layouterrors.ErrInvalidArguments, merr)
			}

			root := walker.DefaultRoot
			if len(args) == 1 {
				root = args[0]
			}

			return runPatch(cc, root, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("filename", defaults.filename, "Name of the screen files to patch")
	cmd.Flags().StringP("mapping", "m", "", "YAML route table to use instead of the built-in one")
	cmd.Flags().String("match", defaults.match, "How to resolve folders matching several keys (first, longest)")
	cmd.Flags().StringArrayP("exclude", "e", nil, "Glob of paths to skip, relative to the root (repeatable)")
	cmd.Flags().Duration("timeout", 0, "Timeout for the command (0 disables it)")
	cmd.Flags().IntP("jobs", "j", defaults.jobs, "Number of files to patch in parallel")
	cmd.Flags().BoolP("project", "P", false, "Resolve a relative root against the enclosing Flutter project (pubspec.yaml)")
	cmd.Flags().Bool("normalize", false, "Convert folder names to snake case before matching")
	cmd.Flags().BoolP("dry-run", "n", false, "Report changes without writing files")
	cmd.Flags().Bool("diff", false, "Print a unified diff for each changed file")
	cmd.Flags().Bool("strict", false, "Exit with an error if the root is missing or any file fails")
	cmd.Flags().BoolP("quiet", "q", false, "Only print warnings, errors and the summary")

	must(cmd.MarkFlagFilename("mapping", "yaml", "yml"))

	return cmd
}

func runPatch(cc *cobra.Command, root string, opts patchOptions) error {
	logger, err := newLogger(cc)
	if err != nil {
		return err
	}

	if opts.project {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		root, err = paths.ResolveRoot(cwd, root)
		if err != nil {
			return fmt.Errorf("resolve root: %w", err)
		}
	}

	table := routes.DefaultTable()

	if opts.mapping != "" {
		t, err := routes.LoadFile(opts.mapping)
		if err != nil {
			return fmt.Errorf("load route mapping: %w", err)
		}

		table = t
	}

	mode, err := routes.ParseMatchMode(opts.match)
	if err != nil {
		return err
	}

	printer, err := newPrinter(cc)
	if err != nil {
		return fmt.Errorf("%w: %w", layouterrors.ErrInvalidArguments, err)
	}

	printer.Quiet = opts.quiet
	printer.DryRun = opts.dryRun
	printer.ShowDiff = opts.diff

	p := patcher.New(table)
	p.Mode = mode
	p.Normalize = opts.normalize
	p.DryRun = opts.dryRun
	p.Diff = opts.diff
	p.Logger = logger

	w := walker.New(p, printer)
	w.Filename = opts.filename
	w.Exclude = opts.exclude
	w.Jobs = opts.jobs
	w.Logger = logger

	ctx := cc.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	logger.DebugContext(ctx, "patching",
		slog.String("root", root),
		slog.String("match", string(mode)),
		slog.Int("routes", len(table)),
		slog.Bool("dry_run", opts.dryRun),
	)

	s, err := w.Run(ctx, root)
	if err != nil {
		if errors.Is(err, layouterrors.ErrRootNotFound) && !opts.strict {
			return nil
		}

		return err
	}

	if opts.strict {
		return s.Err()
	}

	return nil
}
