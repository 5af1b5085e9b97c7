package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateMembers(t *testing.T) {
	fifty := make([]string, MaxMembers)
	for i := range fifty {
		fifty[i] = fmt.Sprintf("m%02d", i)
	}

	tests := []struct {
		name    string
		members []string
		wantErr error
	}{
		{"two members", []string{"A", "B"}, nil},
		{"fifty members", fifty, nil},
		{"one member", []string{"A"}, ErrTooFewMembers},
		{"no members", nil, ErrTooFewMembers},
		{"fifty one members", append(append([]string{}, fifty...), "extra"), ErrTooManyMembers},
		{"empty name", []string{"A", ""}, ErrEmptyMemberName},
		{"duplicate", []string{"A", "B", "A"}, ErrDuplicateMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMembers(tt.members)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroupHasMember(t *testing.T) {
	g := Group{Members: []string{"Al", "Bo"}}
	require.True(t, g.HasMember("Al"))
	require.False(t, g.HasMember("al"))
	require.False(t, g.HasMember("Cy"))
}

func TestAssignmentIsDerangementOf(t *testing.T) {
	members := []string{"A", "B", "C"}

	tests := []struct {
		name string
		a    Assignment
		want bool
	}{
		{"cycle", Assignment{"A": "B", "B": "C", "C": "A"}, true},
		{"self gift", Assignment{"A": "A", "B": "C", "C": "B"}, false},
		{"not a bijection", Assignment{"A": "B", "B": "A", "C": "A"}, false},
		{"missing member", Assignment{"A": "B", "B": "A"}, false},
		{"stranger", Assignment{"A": "B", "B": "C", "C": "D"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.IsDerangementOf(members))
		})
	}
}

func TestAssignmentClone(t *testing.T) {
	a := Assignment{"A": "B", "B": "A"}
	c := a.Clone()
	c["A"] = "Z"
	require.Equal(t, "B", a["A"])
}
