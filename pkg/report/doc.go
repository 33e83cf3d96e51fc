// Package report writes the console output of a patch run.
//
// [Printer] emits one line per inspected file and a closing summary line. The
// plain form is stable and meant to be grepped; the styled form adds color
// and a status table for interactive terminals.
package report
