package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"studio"},
			want: []string{"studio"},
		},
		{
			name: "code first token",
			in:   []string{"studio", "AH24-DOM-FIT-001"},
			want: []string{"studio", "itineraries", "show", "AH24-DOM-FIT-001"},
		},
		{
			name: "lowercase code",
			in:   []string{"studio", "ah24-dom-fit-007"},
			want: []string{"studio", "itineraries", "show", "ah24-dom-fit-007"},
		},
		{
			name: "code after value flag",
			in:   []string{"studio", "--dir", "./tmp-store", "AH24-DOM-FIT-001"},
			want: []string{"studio", "--dir", "./tmp-store", "itineraries", "show", "AH24-DOM-FIT-001"},
		},
		{
			name: "code after equals flag",
			in:   []string{"studio", "--format=yaml", "AH24-DOM-FIT-001"},
			want: []string{"studio", "--format=yaml", "itineraries", "show", "AH24-DOM-FIT-001"},
		},
		{
			name: "code after bool flag",
			in:   []string{"studio", "--pretty", "AH24-DOM-FIT-1000"},
			want: []string{"studio", "--pretty", "itineraries", "show", "AH24-DOM-FIT-1000"},
		},
		{
			name: "code after double dash",
			in:   []string{"studio", "--", "AH24-DOM-FIT-001"},
			want: []string{"studio", "--", "itineraries", "show", "AH24-DOM-FIT-001"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"studio", "itineraries", "show", "AH24-DOM-FIT-001"},
			want: []string{"studio", "itineraries", "show", "AH24-DOM-FIT-001"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"studio", "wat"},
			want: []string{"studio", "wat"},
		},
		{
			name: "malformed code not rewritten",
			in:   []string{"studio", "AH24-DOM-FIT-"},
			want: []string{"studio", "AH24-DOM-FIT-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectLookupArgs(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("rewrite mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
