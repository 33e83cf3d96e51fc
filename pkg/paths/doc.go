// Package paths locates the Flutter project that a patch run applies to.
package paths
