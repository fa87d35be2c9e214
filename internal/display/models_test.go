package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoonIcon(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Waxing Gibbous", "waxing-gibbous"},
		{"WANING_CRESCENT", "waning-crescent"},
		{"full moon", "full-moon"},
		{"New Moon", "new-moon"},
		{"", DefaultMoonIcon},
		{"Blood Moon", DefaultMoonIcon},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MoonIcon(tc.label), "label %q", tc.label)
	}
}

func TestPlaceholders(t *testing.T) {
	astro := PlaceholderAstronomy()
	assert.Equal(t, PlaceholderTime, astro.Sunrise)
	assert.Equal(t, PlaceholderTime, astro.Sunset)
	assert.Equal(t, PlaceholderLabel, astro.MoonPhase)
	assert.Empty(t, astro.Day, "placeholder must stay eligible for refresh")

	tides := PlaceholderTides()
	assert.Empty(t, tides.Today)
	assert.Empty(t, tides.Tomorrow)
	assert.Empty(t, tides.Day)
}
