// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering SQL scalar
// functions that evaluate point distance and region containment over BLOB
// encoded points (see geom.EncodePoint).
package engine
