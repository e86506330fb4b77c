package eragen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/eradate/internal/eragen"
)

func TestRomanize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"めいじ", "Meiji"},
		{"たいしょう", "Taishō"},
		{"しょうわ", "Shōwa"},
		{"へいせい", "Heisei"},
		{"れいわ", "Reiwa"},
		{"けいおう", "Keiō"},
		{"ぶんきゅう", "Bunkyū"},
		{"げんじ", "Genji"},
		{"まんえん", "Man'en"},
		{"けんにん", "Kennin"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, eragen.Romanize(tt.in))
		})
	}
}

func TestStripMacrons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Showa", eragen.StripMacrons("Shōwa"))
	assert.Equal(t, "Keio", eragen.StripMacrons("Keiō"))
	assert.Equal(t, "Bunkyu", eragen.StripMacrons("Bunkyū"))
	assert.Equal(t, "Man'en", eragen.StripMacrons("Man'en"))
}
