package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MacroPower/layoutfix/pkg/report"
)

// newPrinter creates a [report.Printer] for the command's stdout. Output is
// styled when forced with --color=always, or when --color=auto and stdout is
// a terminal.
func newPrinter(cc *cobra.Command) (*report.Printer, error) {
	colorFlag, err := cc.Flags().GetString("color")
	if err != nil {
		return nil, err
	}

	mode, err := report.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}

	out := cc.OutOrStdout()

	p := report.NewPrinter(out)
	p.SetColorMode(mode)

	switch mode {
	case report.ColorAlways:
		p.Styled = true
	case report.ColorNever:
		p.Styled = false
	case report.ColorAuto:
		p.Styled = isTerminal(out)
	}

	return p, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
