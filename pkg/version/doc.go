// Package version provides build information for the layoutfix binary.
//
// [Version] and [Revision] are set at link time with -ldflags -X. When they
// are left unset they are filled from the module build info embedded by the
// Go toolchain.
package version
