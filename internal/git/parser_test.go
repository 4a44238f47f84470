package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBranches(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []Branch
	}{
		{
			name: "current branch starred",
			out:  "  dev\n* main\n  wip/parser\n",
			want: []Branch{
				{Name: "dev"},
				{Name: "main", IsCurrent: true},
				{Name: "wip/parser"},
			},
		},
		{
			name: "single branch",
			out:  "* main\n",
			want: []Branch{{Name: "main", IsCurrent: true}},
		},
		{
			name: "detached head line kept verbatim",
			out:  "* (HEAD detached at 1a2b3c4)\n  main\n",
			want: []Branch{
				{Name: "(HEAD detached at 1a2b3c4)", IsCurrent: true},
				{Name: "main"},
			},
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBranches(tt.out))
		})
	}
}

func TestParseBranchesPreservesGitOrder(t *testing.T) {
	out := "  zeta\n  alpha\n* mid\n"
	got := ParseBranches(out)

	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}
