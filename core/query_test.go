package core

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want url.Values
	}{
		{"", url.Values{}},
		{"meaning=duty%2C+righteousness", url.Values{"meaning": {"duty, righteousness"}}},
		{"meaning=100%", url.Values{"meaning": {"100%"}}},
		{"meaning=50%25+off%zz", url.Values{"meaning": {"50% off%zz"}}},
		{"sanskrit=a;b", url.Values{"sanskrit": {"a;b"}}},
		{"name&&story=x=y", url.Values{"name": {""}, "story": {"x=y"}}},
		{"name=%FF", url.Values{"name": {"\uFFFD"}}},
		{"name=a&name=b", url.Values{"name": {"a", "b"}}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseQuery(tt.raw)); diff != "" {
			t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}
}
