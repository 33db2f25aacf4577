// Package lkh implements the LKH-style route-internal optimizer of §4.10: a
// 2-opt/3-opt improving-move search over a route's own adjacency matrix,
// followed by a repair pass that extracts and requeues any job whose new
// position violates a constraint.
package lkh
