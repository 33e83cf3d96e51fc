// Package walker runs a [patcher.FilePatcher] over every target file below a
// root directory and summarizes the outcome.
package walker
