package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameMatches(t *testing.T) {
	cases := []struct {
		name, query string
		want        bool
	}{
		{"Physics", "phys", true},
		{"Physics", "PHYS", true},
		{"Physics", "  ysi ", true},
		{"Chemistry", "phys", false},
		{"Mathematics", "", true},
		{"Biology", "   ", true},
		{"Biology", "biology!", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NameMatches(tc.name, tc.query), "%q ~ %q", tc.name, tc.query)
	}
}
