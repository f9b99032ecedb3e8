package casefmt

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestFormatNone(t *testing.T) {
	got := Format([]string{"Marc", "Arcand"}, StyleNone)
	assert.Equal(t, got, "Marc Arcand")
}

func TestFormatSnake(t *testing.T) {
	got := Format([]string{"Marc", "Arcand"}, StyleSnake)
	assert.Equal(t, got, "marc_arcand")
}

func TestFormatSnakeHyphenatedToken(t *testing.T) {
	got := Format([]string{"Jean-Guy", "Tremblay"}, StyleSnake)
	assert.Equal(t, got, "jean_guy_tremblay")
}

func TestFormatSnakeKeepsDiacritics(t *testing.T) {
	got := Format([]string{"Céline", "Côté"}, StyleSnake)
	assert.Equal(t, got, "céline_côté")
}

func TestFormatKebab(t *testing.T) {
	got := Format([]string{"Stéphane-Albert", "Boulais"}, StyleKebab)
	assert.Equal(t, got, "stéphane-albert-boulais")
}

func TestFormatKebabApostrophe(t *testing.T) {
	got := Format([]string{"Marie", "D'Amour"}, StyleKebab)
	assert.Equal(t, got, "marie-d-amour")
}

func TestFormatCamel(t *testing.T) {
	got := Format([]string{"Clemence", "Brisebois", "Groulx"}, StyleCamel)
	assert.Equal(t, got, "clemenceBriseboisGroulx")
}

func TestFormatCamelHyphenatedFirstToken(t *testing.T) {
	// The leading word is lowercased in full; the rest only get their
	// first rune uppercased.
	got := Format([]string{"Stéphane-Albert", "Boulais"}, StyleCamel)
	assert.Equal(t, got, "stéphaneAlbertBoulais")
}

func TestFormatCapCamel(t *testing.T) {
	got := Format([]string{"Marc", "Arcand"}, StyleCapCamel)
	assert.Equal(t, got, "MarcArcand")
}

func TestFormatCapCamelDiacriticFirstRune(t *testing.T) {
	got := Format([]string{"émilie", "Roy"}, StyleCapCamel)
	assert.Equal(t, got, "ÉmilieRoy")
}

func TestParseStyleRoundTrip(t *testing.T) {
	for _, style := range []Style{StyleNone, StyleSnake, StyleKebab, StyleCamel, StyleCapCamel} {
		parsed, err := ParseStyle(style.String())
		assert.NilError(t, err)
		assert.Equal(t, parsed, style)
	}
}

func TestParseStyleEmpty(t *testing.T) {
	style, err := ParseStyle("")
	assert.NilError(t, err)
	assert.Equal(t, style, StyleNone)
}

func TestParseStyleUnknown(t *testing.T) {
	_, err := ParseStyle("screaming")
	assert.ErrorContains(t, err, "unknown case style")
}
