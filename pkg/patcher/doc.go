// Package patcher inserts route and title arguments into AdminLayout call
// sites.
//
// [Rewrite] is the pure text transformation. [Patcher.PatchFile] wraps it with
// the file handling: marker detection, folder classification via
// [routes.Table], and the conditional in-place write.
package patcher
