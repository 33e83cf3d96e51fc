package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/patcher"
	"github.com/MacroPower/layoutfix/pkg/report"
	"github.com/MacroPower/layoutfix/pkg/routes"
	"github.com/MacroPower/layoutfix/pkg/walker"
)

var results = []patcher.Result{
	{Path: "a/admin_orders/index.dart", Folder: "admin_orders", Status: patcher.StatusUpdated, Diff: "--- a\n+++ b\n"},
	{Path: "a/admin_brands/index.dart", Folder: "admin_brands", Status: patcher.StatusUnchanged},
	{Path: "a/admin_home/index.dart", Folder: "admin_home", Status: patcher.StatusUnmapped},
	{Path: "a/admin_empty/index.dart", Folder: "admin_empty", Status: patcher.StatusNoMarker},
	{Path: "a/admin_banners/index.dart", Folder: "admin_banners", Status: patcher.StatusFailed, Err: errors.New("permission denied")},
}

func summaryOf(rs []patcher.Result) *walker.Summary {
	s := &walker.Summary{Root: "a", Results: rs, Total: len(rs)}
	for _, r := range rs {
		if r.Updated() {
			s.Updated++
		}
	}

	return s
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup func(p *report.Printer)
		want  string
	}{
		"plain": {
			setup: func(*report.Printer) {},
			want: `Updated: a/admin_orders/index.dart
No changes needed: a/admin_brands/index.dart
Warning: No route mapping found for admin_home in a/admin_home/index.dart
Error processing a/admin_banners/index.dart: permission denied

Summary: Updated 1/5 files
`,
		},
		"quiet": {
			setup: func(p *report.Printer) { p.Quiet = true },
			want: `Warning: No route mapping found for admin_home in a/admin_home/index.dart
Error processing a/admin_banners/index.dart: permission denied

Summary: Updated 1/5 files
`,
		},
		"dry run with diff": {
			setup: func(p *report.Printer) {
				p.DryRun = true
				p.ShowDiff = true
			},
			want: `Would update: a/admin_orders/index.dart
--- a
+++ b
No changes needed: a/admin_brands/index.dart
Warning: No route mapping found for admin_home in a/admin_home/index.dart
Error processing a/admin_banners/index.dart: permission denied

Summary: Would update 1/5 files
`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			p := report.NewPrinter(buf)
			tc.setup(p)

			for _, r := range results {
				p.Report(r)
			}

			p.Summarize(summaryOf(results))

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrinterRootMissing(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	report.NewPrinter(buf).RootMissing("lib/views/admin")

	assert.Equal(t, "Directory lib/views/admin does not exist\n", buf.String())
}

func TestPrinterSkipped(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := report.NewPrinter(buf)
	p.Quiet = true
	p.Skipped("lib/views/admin/admin_locked", errors.New("permission denied"))

	assert.Equal(t, "Warning: Skipping unreadable lib/views/admin/admin_locked: permission denied\n", buf.String())
}

func TestPrinterStyled(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := report.NewPrinter(buf)
	p.Styled = true
	p.SetColorMode(report.ColorAlways)

	for _, r := range results {
		p.Report(r)
	}

	p.Summarize(summaryOf(results))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "a/admin_orders/index.dart")
	assert.Contains(t, out, "Summary: Updated 1/5 files")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "unmapped")
}

func TestPrinterRoutes(t *testing.T) {
	t.Parallel()

	table := routes.Table{
		{Key: "admin_orders", Route: "/admin/orders", Title: "Orders"},
		{Key: "admin_gift_cards", Route: "/admin/gift-cards"},
	}

	buf := &bytes.Buffer{}
	report.NewPrinter(buf).Routes(table)
	assert.Equal(t, "admin_orders\t/admin/orders\tOrders\nadmin_gift_cards\t/admin/gift-cards\tGift Cards\n", buf.String())

	buf.Reset()

	p := report.NewPrinter(buf)
	p.Styled = true
	p.SetColorMode(report.ColorNever)
	p.Routes(table)
	assert.Contains(t, buf.String(), "ROUTE")
	assert.Contains(t, buf.String(), "Gift Cards")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	got, err := report.ParseColorMode("ALWAYS")
	require.NoError(t, err)
	assert.Equal(t, report.ColorAlways, got)

	got, err = report.ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, report.ColorAuto, got)

	_, err = report.ParseColorMode("sometimes")
	require.ErrorIs(t, err, layouterrors.ErrInvalidArguments)
}
