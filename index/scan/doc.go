// Package scan provides a point index that answers region queries by testing
// every stored item. It applies the same strict root-bounds rejection as the
// tree index, which makes it a baseline for benchmarks and a reference for
// correctness checks.
package scan
