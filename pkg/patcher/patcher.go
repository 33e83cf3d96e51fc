package patcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/routes"
)

// Status describes what happened to a single file.
type Status int

const (
	// StatusNoMarker means the file has no layout call and was not inspected further.
	StatusNoMarker Status = iota
	// StatusUnmapped means the parent folder matched no route key.
	StatusUnmapped
	// StatusUnchanged means the call was found but needed no change.
	StatusUnchanged
	// StatusUpdated means the file was rewritten, or would be in a dry run.
	StatusUpdated
	// StatusFailed means reading, decoding or writing the file failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNoMarker:
		return "no-marker"
	case StatusUnmapped:
		return "unmapped"
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of [Patcher.PatchFile].
type Result struct {
	Err    error
	Path   string
	Folder string
	Diff   string
	Match  routes.Match
	Status Status
	DryRun bool
}

// Updated reports whether the file was (or would be) rewritten.
func (r Result) Updated() bool {
	return r.Status == StatusUpdated
}

// FilePatcher patches a single file.
// See [Patcher] for an implementation.
type FilePatcher interface {
	PatchFile(ctx context.Context, path string) Result
}

// Patcher classifies files by their parent folder and rewrites their layout
// call. Create instances with [New].
type Patcher struct {
	Table     routes.Table
	Logger    *slog.Logger
	Mode      routes.MatchMode
	Normalize bool
	DryRun    bool
	// Diff attaches a unified diff to updated results. It is implied by
	// DryRun.
	Diff bool
}

// New creates a new [Patcher] using the given table and the default match
// mode.
func New(table routes.Table) *Patcher {
	return &Patcher{
		Table:  table,
		Mode:   routes.DefaultMatchMode,
		Logger: slog.Default(),
	}
}

// PatchFile reads path, rewrites it when needed and writes it back in place.
// Failures are returned in the [Result] rather than as an error, so that one
// bad file never stops a batch.
func (p *Patcher) PatchFile(ctx context.Context, path string) Result {
	res := Result{
		Path:   path,
		Folder: filepath.Base(filepath.Dir(path)),
		DryRun: p.DryRun,
	}

	logger := p.logger().With(slog.String("path", path))

	fail := func(err error) Result {
		res.Status = StatusFailed
		res.Err = err
		logger.ErrorContext(ctx, "patch file", slog.Any("err", err))

		return res
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", layouterrors.ErrReadFile, err))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", layouterrors.ErrReadFile, err))
	}

	if !utf8.Valid(b) {
		return fail(fmt.Errorf("%w: %s is not valid UTF-8", layouterrors.ErrEncoding, path))
	}

	content := string(b)
	if !strings.Contains(content, Marker) {
		logger.DebugContext(ctx, "no layout call")

		res.Status = StatusNoMarker

		return res
	}

	folder := res.Folder
	if p.Normalize {
		folder = routes.NormalizeFolder(folder)
	}

	m, ok := p.Table.Lookup(folder, p.mode())
	if !ok {
		logger.InfoContext(ctx, "no route mapping", slog.String("folder", res.Folder))

		res.Status = StatusUnmapped

		return res
	}

	res.Match = m

	logger.DebugContext(ctx, "resolved route",
		slog.String("key", m.Key),
		slog.String("route", m.Route),
		slog.String("title", m.Title),
	)

	updated, changed := Rewrite(content, m)
	if !changed {
		res.Status = StatusUnchanged

		return res
	}

	res.Status = StatusUpdated

	if p.DryRun || p.Diff {
		res.Diff = udiff.Unified("a/"+filepath.ToSlash(path), "b/"+filepath.ToSlash(path), content, updated)
	}

	if p.DryRun {
		return res
	}

	if err := os.WriteFile(path, []byte(updated), fi.Mode().Perm()); err != nil {
		return fail(fmt.Errorf("%w: %w", layouterrors.ErrWriteFile, err))
	}

	logger.InfoContext(ctx, "wrote file")

	return res
}

func (p *Patcher) mode() routes.MatchMode {
	if p.Mode == "" {
		return routes.DefaultMatchMode
	}

	return p.Mode
}

func (p *Patcher) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}

	return p.Logger
}
