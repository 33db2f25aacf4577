// File: threeopt.go
// Role: The 3-opt improving move used here is segment relocation (or-opt):
// remove a run of up to maxSegment consecutive nodes and reinsert it
// elsewhere in the route if that reduces total distance. This breaks three
// edges and reconnects them, the same move family as classic 3-opt, without
// enumerating every one of 3-opt's seven reconnection patterns.
package lkh

// threeOptPass tries every segment of length 1..maxSegment starting after
// position 0 and ending before the last position, relocating it to the first
// insertion point after the segment whose insertion cost is below the removal
// gain; points before the segment are not tried.
// Applies at most one relocation per call (the caller re-invokes until no
// pass improves), since a relocation invalidates in-flight index math.
func threeOptPass(order []int, dist [][]float64, maxSegment int) bool {
	n := len(order)
	if n < 5 {
		return false
	}

	for segLen := 1; segLen <= maxSegment; segLen++ {
		for start := 1; start+segLen < n-1; start++ {
			end := start + segLen - 1
			prev, segFirst := order[start-1], order[start]
			segLast, next := order[end], order[end+1]

			removed := dist[prev][segFirst] + dist[segLast][next]
			closedGap := dist[prev][next]
			gain := removed - closedGap
			if gain <= 1e-9 {
				continue
			}

			for j := end + 1; j < n-1; j++ {
				a, b := order[j], order[j+1]
				insertCost := dist[a][segFirst] + dist[segLast][b] - dist[a][b]
				if insertCost < gain-1e-9 {
					relocated := relocateSegment(order, start, end, j)
					copy(order, relocated)

					return true
				}
			}
		}
	}

	return false
}

// relocateSegment removes order[segStart:segEnd+1] and reinserts it
// immediately after the node currently at afterIdx, returning a new slice of
// the same length.
func relocateSegment(order []int, segStart, segEnd, afterIdx int) []int {
	seg := append([]int(nil), order[segStart:segEnd+1]...)
	anchor := order[afterIdx]

	rest := make([]int, 0, len(order)-len(seg))
	rest = append(rest, order[:segStart]...)
	rest = append(rest, order[segEnd+1:]...)

	insertAt := len(rest)
	for i, v := range rest {
		if v == anchor {
			insertAt = i + 1

			break
		}
	}

	out := make([]int, 0, len(order))
	out = append(out, rest[:insertAt]...)
	out = append(out, seg...)
	out = append(out, rest[insertAt:]...)

	return out
}
