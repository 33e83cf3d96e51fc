package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MacroPower/layoutfix/pkg/patcher"
	"github.com/MacroPower/layoutfix/pkg/walker"
)

var _ walker.Reporter = (*Printer)(nil)

// Printer writes patch progress as lines of text. It is safe for concurrent
// use. Create instances with [NewPrinter].
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   styles
	mu       sync.Mutex

	// Quiet drops the per-file "Updated" and "No changes needed" lines.
	// Warnings, errors and the summary are always written.
	Quiet bool
	// ShowDiff writes the diff carried by each updated result.
	ShowDiff bool
	// DryRun switches the wording to "Would update".
	DryRun bool
	// Styled enables color and the status table.
	Styled bool
}

// NewPrinter creates a new [Printer] writing plain output to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:        w,
		renderer: r,
		styles:   newStyles(r),
	}
}

// SetColorMode overrides terminal color detection for styled output.
func (p *Printer) SetColorMode(c ColorMode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c.apply(p.renderer)
	p.styles = newStyles(p.renderer)
}

// Report writes the line for a single file. Files without a layout call are
// not reported.
func (p *Printer) Report(res patcher.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch res.Status {
	case patcher.StatusNoMarker:
		return

	case patcher.StatusUpdated:
		if p.Quiet {
			return
		}

		verb := "Updated:"
		if p.DryRun {
			verb = "Would update:"
		}

		p.println(p.style(p.styles.updated, verb), res.Path)

		if p.ShowDiff && res.Diff != "" {
			fmt.Fprint(p.w, res.Diff)
		}

	case patcher.StatusUnchanged:
		if p.Quiet {
			return
		}

		p.println(p.style(p.styles.skipped, "No changes needed:"), res.Path)

	case patcher.StatusUnmapped:
		p.println(p.style(p.styles.warning, "Warning:"), "No route mapping found for", res.Folder, "in", res.Path)

	case patcher.StatusFailed:
		p.println(p.style(p.styles.err, "Error processing"), res.Path+":", res.Err)
	}
}

// Skipped reports a path below the root that could not be read.
func (p *Printer) Skipped(path string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.style(p.styles.warning, "Warning:"), "Skipping unreadable", path+":", err)
}

// RootMissing reports that the walk root does not exist.
func (p *Printer) RootMissing(root string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println("Directory", root, "does not exist")
}

// Summarize writes the closing summary.
func (p *Printer) Summarize(s *walker.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	verb := "Updated"
	if p.DryRun {
		verb = "Would update"
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.style(p.styles.summary, fmt.Sprintf("Summary: %s %d/%d files", verb, s.Updated, s.Total)))

	if p.Styled {
		fmt.Fprintln(p.w, p.statusTable(s))
	}
}

func (p *Printer) statusTable(s *walker.Summary) string {
	rows := [][]string{}

	for _, st := range []patcher.Status{
		patcher.StatusUpdated,
		patcher.StatusUnchanged,
		patcher.StatusNoMarker,
		patcher.StatusUnmapped,
		patcher.StatusFailed,
	} {
		if n := s.Count(st); n > 0 {
			rows = append(rows, []string{st.String(), strconv.Itoa(n)})
		}
	}

	return p.newTable().Headers("STATUS", "FILES").Rows(rows...).String()
}

func (p *Printer) newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.header
			}

			return p.styles.cell
		})
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}

	return s.Render(text)
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}
