package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "AMS - MAD", 20, "AMS - MAD"},
		{"exact", "AMS - MAD", 9, "AMS - MAD"},
		{"cut", "Amsterdam - Madrid", 10, "Amsterdam…"},
		{"zero width", "AMS", 0, ""},
		{"only ellipsis fits", "AMS", 1, "…"},
		{"wide runes", "東京 - 大阪", 5, "東京…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.width, 0))
		})
	}
}

func TestSpaceBetween(t *testing.T) {
	got := SpaceBetween("Layover", "Layover", "10:25 - 08:55", 30)
	assert.Equal(t, 30, Width(got))
	assert.Equal(t, "Layover          10:25 - 08:55", got)

	// Left side gives way to the right side.
	got = SpaceBetween("A very long primary label", "A very long primary label", "06:55 - 09:40", 24)
	assert.Equal(t, 24, Width(got))
	assert.Contains(t, got, "06:55 - 09:40")
	assert.Contains(t, got, Ellipsis)
}
