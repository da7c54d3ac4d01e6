// Package graph6 implements McKay's graph6 ASCII encoding (§4.11,
// §6): decoding a graph6 payload into a graph.UndirectedGraph and
// encoding one back. Decode validates that the result is cubic (via
// graph.UndirectedGraph.Finalize), since every consumer in this module
// only ever works with cubic graphs.
//
// Format: a variable-length header N(n) gives the vertex count, followed
// by the upper triangle of the adjacency matrix, read column-major
// (for each column j from 1 to n-1, each row i from 0 to j-1), packed
// six bits to a byte and offset by 63 ("R(x)" in McKay's notation). n
// <= 62 uses a single header byte; n in [63, 258047] uses '~' followed
// by three 6-bit-packed bytes of n. This module only ever needs n <=
// 128, so the single-byte and four-byte forms are the only two
// encountered.
package graph6
