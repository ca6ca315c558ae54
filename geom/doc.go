// Package geom defines the geometric primitives used by the point indexes in
// this module:
//   - Point: a fixed-length coordinate vector with Euclidean distance
//   - Region: a query shape with strict containment and boundary samples
//   - Box and Sphere: the two built-in regions
//   - BLOB encoding of points compatible with float32 embedding columns
package geom
