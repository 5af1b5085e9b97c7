package santasdk

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxNameLength       = 100
	MaxBudgetLength     = 100
	MaxCriteriaLength   = 1000
	MaxMemberNameLength = 64
	MinMembers          = 2
	MaxMembers          = 50

	requiredReason = "required"
)

// Sanitize normalizes free text to NFC, turns every whitespace rune into a
// plain space, drops remaining control and format runes, then trims and
// collapses runs of spaces.
func Sanitize(s string) string {
	t := transform.Chain(
		norm.NFC,
		runes.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return ' '
			}
			return r
		}),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
		})),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(out), " ")
}

// foldKey is the form two member names are compared in; "Al" and "AL"
// name the same person.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// Normalize returns a copy of the request with every text field sanitized.
func (r CreateGroupRequest) Normalize() CreateGroupRequest {
	out := CreateGroupRequest{
		Name:     Sanitize(r.Name),
		Budget:   Sanitize(r.Budget),
		Criteria: Sanitize(r.Criteria),
	}
	if r.Members != nil {
		out.Members = make([]string, len(r.Members))
		for i, m := range r.Members {
			out.Members[i] = Sanitize(m)
		}
	}
	return out
}

// Validate checks a normalized request. Returns a map of field names to
// error messages, or nil if all fields are valid.
func (r CreateGroupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	switch n := utf8.RuneCountInString(r.Name); {
	case n == 0:
		errs["name"] = requiredReason
	case n > MaxNameLength:
		errs["name"] = fmt.Sprintf("too long (max %d)", MaxNameLength)
	}

	if utf8.RuneCountInString(r.Budget) > MaxBudgetLength {
		errs["budget"] = fmt.Sprintf("too long (max %d)", MaxBudgetLength)
	}
	if utf8.RuneCountInString(r.Criteria) > MaxCriteriaLength {
		errs["criteria"] = fmt.Sprintf("too long (max %d)", MaxCriteriaLength)
	}

	r.validateMembers(errs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r CreateGroupRequest) validateMembers(errs map[string]string) {
	switch {
	case len(r.Members) < MinMembers:
		errs["members"] = fmt.Sprintf("at least %d members required", MinMembers)
		return
	case len(r.Members) > MaxMembers:
		errs["members"] = fmt.Sprintf("at most %d members allowed", MaxMembers)
		return
	}

	seen := make(map[string]int, len(r.Members))
	for i, m := range r.Members {
		field := fmt.Sprintf("members[%d]", i)
		switch n := utf8.RuneCountInString(m); {
		case n == 0:
			errs[field] = requiredReason
			continue
		case n > MaxMemberNameLength:
			errs[field] = fmt.Sprintf("too long (max %d)", MaxMemberNameLength)
			continue
		}

		key := foldKey(m)
		if first, dup := seen[key]; dup {
			errs[field] = fmt.Sprintf("duplicate of members[%d]", first)
			continue
		}
		seen[key] = i
	}
}

// Normalize returns a copy of the request with the member name sanitized.
func (r AssignRequest) Normalize() AssignRequest {
	return AssignRequest{Member: Sanitize(r.Member)}
}

// Validate checks a normalized assign request.
func (r AssignRequest) Validate() map[string]string {
	if r.Member == "" {
		return map[string]string{"member": requiredReason}
	}
	return nil
}
