// Package layouterrors provides error definitions shared by the layoutfix
// packages.
//
// Errors are wrapped with %w so callers can test for the category with
// [errors.Is] regardless of which package produced them.
package layouterrors
