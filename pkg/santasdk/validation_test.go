package santasdk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Alice", want: "Alice"},
		{name: "trims", in: "  Alice \t", want: "Alice"},
		{name: "collapses inner whitespace", in: "Mary \n  Jane", want: "Mary Jane"},
		{name: "drops control runes", in: "Al\x00ic\x07e", want: "Alice"},
		{name: "drops zero width joiners", in: "Bo\u200bb\u200d", want: "Bob"},
		{name: "composes to NFC", in: "Jose\u0301", want: "Jos\u00e9"},
		{name: "only whitespace", in: " \t\r\n ", want: ""},
		{name: "keeps emoji", in: "🎅 Nick", want: "🎅 Nick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestCreateGroupRequestNormalize(t *testing.T) {
	t.Parallel()

	in := CreateGroupRequest{
		Name:     "  Office  party ",
		Budget:   " $20 ",
		Criteria: "handmade\n\nplease",
		Members:  []string{" Al", "Bo\u200b ", "Cy"},
	}
	got := in.Normalize()

	require.Equal(t, CreateGroupRequest{
		Name:     "Office party",
		Budget:   "$20",
		Criteria: "handmade please",
		Members:  []string{"Al", "Bo", "Cy"},
	}, got)
	require.Equal(t, " Al", in.Members[0], "input must not be modified")
}

func TestCreateGroupRequestValidate(t *testing.T) {
	t.Parallel()

	valid := func() CreateGroupRequest {
		return CreateGroupRequest{Name: "Office", Members: []string{"Al", "Bo", "Cy"}}
	}
	many := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("m%d", i)
		}
		return out
	}

	tests := []struct {
		name   string
		mutate func(*CreateGroupRequest)
		want   map[string]string
	}{
		{name: "valid", mutate: func(*CreateGroupRequest) {}},
		{
			name:   "missing name",
			mutate: func(r *CreateGroupRequest) { r.Name = "" },
			want:   map[string]string{"name": "required"},
		},
		{
			name:   "name too long",
			mutate: func(r *CreateGroupRequest) { r.Name = strings.Repeat("n", MaxNameLength+1) },
			want:   map[string]string{"name": "too long (max 100)"},
		},
		{
			name:   "name at limit counts runes",
			mutate: func(r *CreateGroupRequest) { r.Name = strings.Repeat("\u00e9", MaxNameLength) },
		},
		{
			name:   "budget too long",
			mutate: func(r *CreateGroupRequest) { r.Budget = strings.Repeat("$", MaxBudgetLength+1) },
			want:   map[string]string{"budget": "too long (max 100)"},
		},
		{
			name:   "criteria too long",
			mutate: func(r *CreateGroupRequest) { r.Criteria = strings.Repeat("c", MaxCriteriaLength+1) },
			want:   map[string]string{"criteria": "too long (max 1000)"},
		},
		{
			name:   "single member",
			mutate: func(r *CreateGroupRequest) { r.Members = []string{"Al"} },
			want:   map[string]string{"members": "at least 2 members required"},
		},
		{
			name:   "too many members",
			mutate: func(r *CreateGroupRequest) { r.Members = many(MaxMembers + 1) },
			want:   map[string]string{"members": "at most 50 members allowed"},
		},
		{
			name:   "fifty members",
			mutate: func(r *CreateGroupRequest) { r.Members = many(MaxMembers) },
		},
		{
			name:   "empty member",
			mutate: func(r *CreateGroupRequest) { r.Members = []string{"Al", ""} },
			want:   map[string]string{"members[1]": "required"},
		},
		{
			name:   "member too long",
			mutate: func(r *CreateGroupRequest) { r.Members[2] = strings.Repeat("m", MaxMemberNameLength+1) },
			want:   map[string]string{"members[2]": "too long (max 64)"},
		},
		{
			name:   "duplicate ignoring case",
			mutate: func(r *CreateGroupRequest) { r.Members = []string{"Al", "Bo", "AL"} },
			want:   map[string]string{"members[2]": "duplicate of members[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid()
			tt.mutate(&r)
			got := r.Validate()

			require.Equal(t, tt.want, got)
		})
	}
}

func TestAssignRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, AssignRequest{Member: " Al "}.Normalize().Validate())
	require.Equal(t, map[string]string{"member": "required"}, AssignRequest{Member: "\u200b "}.Normalize().Validate())
}
