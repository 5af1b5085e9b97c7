package domain

import "maps"

// Assignment maps each member of a group to the member they give a gift to.
// It is a bijection over the member set with no member mapped to themselves.
type Assignment map[string]string

// IsDerangementOf reports whether a covers exactly members, uses every
// member exactly once as a recipient, and never maps a member to itself.
func (a Assignment) IsDerangementOf(members []string) bool {
	if len(a) != len(members) {
		return false
	}

	received := make(map[string]int, len(members))
	for _, m := range members {
		to, ok := a[m]
		if !ok || to == m {
			return false
		}
		received[to]++
	}

	for _, m := range members {
		if received[m] != 1 {
			return false
		}
	}
	return true
}

// Clone returns a copy that callers may modify freely.
func (a Assignment) Clone() Assignment {
	return maps.Clone(a)
}
