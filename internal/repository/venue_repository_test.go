package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain", "Bali", "%Bali%"},
		{"percent", "100%", `%100\%%`},
		{"underscore", "lake_tahoe", `%lake\_tahoe%`},
		{"backslash", `a\b`, `%a\\b%`},
		{"bare wildcard", "%", `%\%%`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.query))
		})
	}
}
