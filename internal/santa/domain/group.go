package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinMembers = 2
	MaxMembers = 50
)

var (
	ErrTooFewMembers   = fmt.Errorf("a group needs at least %d members", MinMembers)
	ErrTooManyMembers  = fmt.Errorf("a group allows at most %d members", MaxMembers)
	ErrEmptyMemberName = errors.New("member names must not be empty")
	ErrDuplicateMember = errors.New("member names must be unique")
)

// Group is a Secret Santa party. It is written once at creation and never
// updated afterwards.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Budget    string    `json:"budget"`
	Criteria  string    `json:"criteria"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// HasMember reports whether name is one of the group's members.
func (g Group) HasMember(name string) bool {
	for _, m := range g.Members {
		if m == name {
			return true
		}
	}
	return false
}

// ValidateMembers checks the structural invariants every stored group keeps:
// 2..50 members, none empty, all pairwise distinct. Sanitizing the names is
// the caller's job.
func ValidateMembers(members []string) error {
	switch {
	case len(members) < MinMembers:
		return ErrTooFewMembers
	case len(members) > MaxMembers:
		return ErrTooManyMembers
	}

	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			return ErrEmptyMemberName
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateMember, m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

// NewGroup is the input for creating a group.
type NewGroup struct {
	Name     string
	Budget   string
	Criteria string
	Members  []string
}
