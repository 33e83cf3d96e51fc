package routes

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
)

// MatchMode selects how [Table.Lookup] resolves a folder name that contains
// more than one key.
type MatchMode string

const (
	// MatchFirst selects the first declared key found in the folder name.
	MatchFirst MatchMode = "first"

	// MatchLongest selects the longest key found in the folder name. Keys of
	// equal length fall back to declaration order.
	MatchLongest MatchMode = "longest"
)

// DefaultMatchMode is used when no mode is configured.
const DefaultMatchMode = MatchLongest

// ParseMatchMode converts a flag value into a [MatchMode].
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case MatchFirst:
		return MatchFirst, nil
	case MatchLongest, "":
		return MatchLongest, nil
	default:
		return "", fmt.Errorf("%w: unknown match mode %q", layouterrors.ErrInvalidArguments, s)
	}
}

// Entry maps a folder key to a route and an optional title.
type Entry struct {
	Key   string `yaml:"key"`
	Route string `yaml:"route"`
	Title string `yaml:"title,omitempty"`
}

// DisplayTitle returns the explicit title, or one derived from the key.
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}

	return DeriveTitle(e.Key)
}

// Match is the result of a successful [Table.Lookup].
type Match struct {
	Key   string
	Route string
	Title string
}

// Table is an ordered set of entries. Declaration order matters for
// [MatchFirst] and for breaking ties under [MatchLongest].
type Table []Entry

// DefaultTable returns the built-in admin screen mapping.
func DefaultTable() Table {
	return Table{
		{Key: "admin_products", Route: "/admin/products", Title: "Products"},
		{Key: "admin_customers", Route: "/admin/customers", Title: "Customers"},
		{Key: "admin_orders", Route: "/admin/orders", Title: "Orders"},
		{Key: "admin_categories", Route: "/admin/categories", Title: "Categories"},
		{Key: "admin_brands", Route: "/admin/brands", Title: "Brands"},
		{Key: "admin_attributes", Route: "/admin/attributes", Title: "Attributes"},
		{Key: "admin_warehouses", Route: "/admin/warehouses", Title: "Warehouses"},
		{Key: "admin_suppliers", Route: "/admin/suppliers", Title: "Suppliers"},
		{Key: "admin_stock_checker", Route: "/admin/stock-checkers", Title: "Stock Checkers"},
		{Key: "admin_stock_ins", Route: "/admin/stock-ins", Title: "Stock-In"},
		{Key: "admin_stock_outs", Route: "/admin/stock-outs", Title: "Stock-Out"},
		{Key: "admin_inventory_reports", Route: "/admin/inventory-reports", Title: "Inventory Reports"},
		{Key: "admin_banners", Route: "/admin/banners", Title: "Banners"},
	}
}

// Lookup finds the entry whose key is a substring of folder. The boolean is
// false when no key matches; that is not an error, callers skip the folder.
func (t Table) Lookup(folder string, mode MatchMode) (Match, bool) {
	best := -1

	for i, e := range t {
		if e.Key == "" || !strings.Contains(folder, e.Key) {
			continue
		}

		if mode == MatchFirst {
			best = i

			break
		}

		if best == -1 || len(e.Key) > len(t[best].Key) {
			best = i
		}
	}

	if best == -1 {
		return Match{}, false
	}

	e := t[best]

	return Match{Key: e.Key, Route: e.Route, Title: e.DisplayTitle()}, true
}

// Validate checks that every entry has a key and a route, and that keys are
// unique. All problems are reported together.
func (t Table) Validate() error {
	var merr error

	seen := make(map[string]int, len(t))

	for i, e := range t {
		if e.Key == "" {
			merr = multierror.Append(merr, fmt.Errorf("entry %d: empty key", i))
		}

		if e.Route == "" {
			merr = multierror.Append(merr, fmt.Errorf("entry %d (%s): empty route", i, e.Key))
		}

		if j, ok := seen[e.Key]; ok && e.Key != "" {
			merr = multierror.Append(merr, fmt.Errorf("entry %d: duplicate key %q (first declared at entry %d)", i, e.Key, j))

			continue
		}

		seen[e.Key] = i
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", layouterrors.ErrInvalidMapping, merr)
	}

	return nil
}
