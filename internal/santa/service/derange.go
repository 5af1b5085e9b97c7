package service

import "math/rand/v2"

// maxShuffleAttempts bounds how many shuffles derange draws before falling
// back to a rotation.
const maxShuffleAttempts = 32

// derange returns a permutation of members where no position holds its own
// member. members must contain at least two distinct names.
//
// Each attempt is a Fisher-Yates shuffle followed by a single pass that
// swaps any fixed point with its neighbour (the next index, or the previous
// one at the end). A swap moves member i off its own slot and onto a slot
// that is not its own, and the value it brings back to i came from a slot
// other than i, so neither touched position ends up fixed and one pass is
// enough. The result is still checked before it is returned; a failed check
// draws again, and if every draw fails the members are rotated by one.
func derange(members []string, rng *rand.Rand) []string {
	perm := make([]string, len(members))

	for range maxShuffleAttempts {
		copy(perm, members)
		shuffle(perm, rng)
		repairFixedPoints(members, perm)
		if !hasFixedPoint(members, perm) {
			return perm
		}
	}

	for i := range members {
		perm[i] = members[(i+1)%len(members)]
	}
	return perm
}

// shuffle is Fisher-Yates: for i from the last index down to 1, swap i with
// a uniform j in [0, i].
func shuffle(s []string, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

func repairFixedPoints(members, perm []string) {
	last := len(perm) - 1
	for i := range perm {
		if perm[i] != members[i] {
			continue
		}
		if i < last {
			perm[i], perm[i+1] = perm[i+1], perm[i]
		} else {
			perm[i], perm[i-1] = perm[i-1], perm[i]
		}
	}
}

func hasFixedPoint(members, perm []string) bool {
	for i := range perm {
		if perm[i] == members[i] {
			return true
		}
	}
	return false
}
