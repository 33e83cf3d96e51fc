package report

import (
	"fmt"

	"github.com/MacroPower/layoutfix/pkg/routes"
)

// Routes writes a route table, one entry per line in plain mode or as a
// bordered table when styled. Derived titles are shown in place of missing
// ones.
func (p *Printer) Routes(t routes.Table) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.Styled {
		for _, e := range t {
			fmt.Fprintf(p.w, "%s\t%s\t%s\n", e.Key, e.Route, e.DisplayTitle())
		}

		return
	}

	rows := make([][]string, 0, len(t))
	for _, e := range t {
		rows = append(rows, []string{e.Key, e.Route, e.DisplayTitle()})
	}

	fmt.Fprintln(p.w, p.newTable().Headers("KEY", "ROUTE", "TITLE").Rows(rows...).String())
}
