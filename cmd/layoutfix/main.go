package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/layoutfix/internal/cli"
	"github.com/MacroPower/layoutfix/pkg/log"
)

func init() {
	log.SetDefault(os.Stderr, "warn", "text")
}

const (
	cmdName = "layoutfix"

	shortDesc = "Add routes and titles to admin screen layouts."
	longDesc  = `layoutfix rewrites the AdminLayout call of each admin screen so that it
passes the screen's navigation route and display title.

Screens are the index.dart files below lib/views/admin. Each one is classified
by the name of its folder, e.g. admin_orders_list resolves to the route
/admin/orders with the title Orders. Running layoutfix without a command
patches lib/views/admin relative to the current directory.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
