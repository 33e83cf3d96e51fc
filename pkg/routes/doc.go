// Package routes classifies admin screen folders into navigation routes and
// display titles.
//
// A [Table] is an ordered list of [Entry] values. [Table.Lookup] finds the
// entry whose key appears in a folder name, using a [MatchMode] to decide
// between overlapping keys. Tables are either the built-in [DefaultTable] or
// loaded from a YAML mapping file with [LoadFile].
package routes
