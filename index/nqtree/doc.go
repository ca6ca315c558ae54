// Package nqtree provides an N-dimensional orthant tree: the generalization of
// the quadtree and octree to any fixed number of axes. A node holds up to a
// capacity of items and, on the first overflow, divides once into 2^d children
// meeting at its midpoint. Items held before the division stay on the node.
//
// Queries take a geom.Region; Box and Sphere are built in and any type with
// Contains and BoundarySamples can be searched. Containment is strict, so a
// point on a root face or an internal partition plane is rejected on insert.
package nqtree
