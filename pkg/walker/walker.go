package walker

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"golang.org/x/sync/errgroup"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/patcher"
	"github.com/MacroPower/layoutfix/pkg/syncs"
	"github.com/MacroPower/layoutfix/pkg/tracing"
)

const (
	// DefaultRoot is the admin views directory of the application.
	DefaultRoot = "lib/views/admin"

	// DefaultFilename is the name of the screen files that are patched.
	DefaultFilename = "index.dart"
)

// Reporter receives progress from a [Walker]. Implementations must be safe
// for concurrent use when [Walker.Jobs] is greater than one.
// See [report.Printer] for an implementation.
type Reporter interface {
	Report(res patcher.Result)
	Skipped(path string, err error)
	RootMissing(root string)
	Summarize(s *Summary)
}

// Walker finds target files below a root and patches each of them.
// Create instances with [New].
type Walker struct {
	Patcher  patcher.FilePatcher
	Reporter Reporter
	Locker   syncs.PathLocker
	Tracer   tracing.Tracer
	Logger   *slog.Logger
	Filename string
	Exclude  []string
	Jobs     int
}

// New creates a new sequential [Walker].
func New(p patcher.FilePatcher, r Reporter) *Walker {
	return &Walker{
		Patcher:  p,
		Reporter: r,
		Locker:   syncs.NewPathLock(),
		Logger:   slog.Default(),
		Filename: DefaultFilename,
		Jobs:     1,
	}
}

// Run patches every file named [Walker.Filename] below root. A missing root
// is reported and returned as [layouterrors.ErrRootNotFound]; per-file
// failures are recorded in the [Summary] instead. See [Summary.Err].
func (w *Walker) Run(ctx context.Context, root string) (*Summary, error) {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		w.reporter().RootMissing(root)

		return nil, fmt.Errorf("%w: %s", layouterrors.ErrRootNotFound, root)
	}

	span := w.tracer().StartSpan(ctx, "walk")
	span.SetAttr("root", root)

	defer span.Finish()

	paths, err := w.find(ctx, root)
	if err != nil {
		return nil, err
	}

	w.logger().DebugContext(ctx, "found files", slog.String("root", root), slog.Int("count", len(paths)))

	results := make([]patcher.Result, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, w.Jobs))

	for i, path := range paths {
		if gCtx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gCtx.Err() != nil {
				return nil
			}

			results[i] = w.patch(gCtx, path)
			w.reporter().Report(results[i])

			return nil
		})
	}

	//nolint:errcheck // Workers never return errors.
	g.Wait()

	s := &Summary{Root: root}

	for _, res := range results {
		// Files skipped after cancellation have no path.
		if res.Path != "" {
			s.add(res)
		}
	}

	span.SetAttr("total", s.Total)
	span.SetAttr("updated", s.Updated)

	w.reporter().Summarize(s)

	if err := ctx.Err(); err != nil {
		return s, fmt.Errorf("walk %s: %w", root, err)
	}

	return s, nil
}

func (w *Walker) patch(ctx context.Context, path string) patcher.Result {
	span := w.tracer().StartSpan(ctx, "patch_file")
	span.SetAttr("path", path)

	defer span.Finish()

	if w.Locker != nil {
		unlock := w.Locker.Lock(path)
		defer unlock()
	}

	res := w.Patcher.PatchFile(ctx, path)
	span.SetAttr("status", res.Status.String())

	return res
}

// find returns the target files below root in lexical order.
func (w *Walker) find(ctx context.Context, root string) ([]string, error) {
	filename := w.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger().DebugContext(ctx, "skipping unreadable path", slog.String("path", path), slog.Any("err", err))
			w.reporter().Skipped(path, err)

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		excluded, err := w.excluded(root, path)
		if err != nil {
			return err
		}

		if excluded {
			w.logger().DebugContext(ctx, "excluded", slog.String("path", path))

			if d.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if !d.IsDir() && d.Name() == filename {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return paths, nil
}

func (w *Walker) excluded(root, path string) (bool, error) {
	if len(w.Exclude) == 0 || path == root {
		return false, nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, fmt.Errorf("relative path for %s: %w", path, err)
	}

	rel = filepath.ToSlash(rel)

	for _, pattern := range w.Exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("%w: exclude pattern %q: %w", layouterrors.ErrInvalidArguments, pattern, err)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (w *Walker) reporter() Reporter {
	if w.Reporter == nil {
		return discard{}
	}

	return w.Reporter
}

//nolint:ireturn
func (w *Walker) tracer() tracing.Tracer {
	if w.Tracer == nil {
		return tracing.NewLoggingTracer(w.logger())
	}

	return w.Tracer
}

func (w *Walker) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}

	return w.Logger
}

type discard struct{}

func (discard) Report(patcher.Result) {}
func (discard) Skipped(string, error) {}
func (discard) RootMissing(string)    {}
func (discard) Summarize(*Summary)    {}
