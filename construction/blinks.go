// File: blinks.go
// Role: Blinks recreator (§4.6) — randomly "blinks" (skips) a fraction of
// this round's ranked candidates to inject diversity, picking the best among
// whatever survives the blink.
package construction

import "github.com/katalvlaran/vrpcore/core"

// NewBlinks returns a recreator that ignores each ranked candidate with
// independent probability blinkProb (when every candidate blinks, the top one
// is taken, so a round always has somewhere to fall back to).
func NewBlinks(blinkProb float64) Recreator {
	return Strategy{
		Name: "blinks",
		Select: func(env *core.Environment, ranked []candidate) int {
			for i := 0; i < len(ranked); i++ {
				if env.Random.Float64() >= blinkProb {
					return i
				}
			}

			return 0
		},
	}
}
