// Package index defines a minimal abstraction for in-memory point indexes that
// store (value, coordinates) pairs and answer region queries. Implementations
// in this module include an N-dimensional orthant tree and a linear-scan
// baseline.
package index
