// Package syncs provides synchronization primitives for concurrent file
// processing.
package syncs
