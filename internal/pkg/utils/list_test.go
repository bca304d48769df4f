package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "[]", want: []string{}},
		{in: "https://a.com, https://b.com,", want: []string{"https://a.com", "https://b.com"}},
		{in: `["https://a.com","https://b.com"]`, want: []string{"https://a.com", "https://b.com"}},
		{in: `[https://a.com, "https://b.com"]`, want: []string{"https://a.com", "https://b.com"}},
		{in: "  single  ", want: []string{"single"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseList(tt.in)); diff != "" {
			t.Errorf("ParseList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
