package patcher

import (
	"regexp"
	"strings"

	"github.com/MacroPower/layoutfix/pkg/routes"
)

// Marker identifies files that contain the call site.
const Marker = "AdminLayout("

// defaultIndent is used when the call and its child argument share a line.
const defaultIndent = "      "

// callPattern matches a layout call whose first argument is the padded child.
// Once route and title are inserted the child is no longer first, so the
// pattern stops matching and rewriting is idempotent.
var callPattern = regexp.MustCompile(`(return\s+AdminLayout\()(\s*)child:\s*Padding\(`)

// Rewrite inserts selectedRoute and title arguments in front of every
// matching child argument. The boolean reports whether content changed.
func Rewrite(content string, m routes.Match) (string, bool) {
	out := callPattern.ReplaceAllStringFunc(content, func(call string) string {
		sub := callPattern.FindStringSubmatch(call)
		head, space := sub[1], sub[2]

		indent := defaultIndent
		if i := strings.LastIndexByte(space, '\n'); i >= 0 {
			indent = space[i+1:]
		}

		var b strings.Builder

		b.WriteString(head)
		b.WriteString(space)
		b.WriteString("selectedRoute: '" + m.Route + "',\n")
		b.WriteString(indent + "title: '" + m.Title + "',\n")
		b.WriteString(indent + "child: Padding(")

		return b.String()
	})

	return out, out != content
}
