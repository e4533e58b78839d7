// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Summer Sale", "summer-sale"},
		{"uppercase", "MEGA OFFER", "mega-offer"},
		{"special characters stripped", "50% Off! Buy Now!!!", "50-off-buy-now"},
		{"multiple spaces collapse", "Big    Winter    Deal", "big-winter-deal"},
		{"underscores kept", "flash_sale 2025", "flash_sale-2025"},
		{"leading and trailing noise", "  --Hot Deal--  ", "hot-deal"},
		{"only special characters", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{
		"Summer Sale",
		"50% Off! Buy Now!!!",
		"flash_sale 2025",
	}

	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.Equal(t, slug, GenerateSlug(slug))
	}
}
