// Package casefmt renders name tokens in programmer-oriented case styles.
package casefmt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style selects the output case of a generated name.
type Style int

const (
	StyleNone Style = iota
	StyleSnake
	StyleKebab
	StyleCamel
	StyleCapCamel
)

// ParseStyle converts a style identifier to a Style. The empty string
// and "none" both mean no transformation.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "none":
		return StyleNone, nil
	case "snake":
		return StyleSnake, nil
	case "kebab":
		return StyleKebab, nil
	case "camel":
		return StyleCamel, nil
	case "cap-camel":
		return StyleCapCamel, nil
	}
	return StyleNone, fmt.Errorf("unknown case style %q", s)
}

func (s Style) String() string {
	switch s {
	case StyleSnake:
		return "snake"
	case StyleKebab:
		return "kebab"
	case StyleCamel:
		return "camel"
	case StyleCapCamel:
		return "cap-camel"
	}
	return "none"
}

// Format renders the token list in the given style. Tokens are the parts
// of a composed name (first, optional middle, surname); a token may itself
// contain hyphens or apostrophes ("Stéphane-Albert", "D'Amour"), which act
// as word boundaries. Diacritics are kept as-is; there is no ASCII folding.
func Format(tokens []string, style Style) string {
	if style == StyleNone {
		return strings.Join(tokens, " ")
	}

	words := splitWords(tokens)

	switch style {
	case StyleSnake:
		return joinLower(words, "_")
	case StyleKebab:
		return joinLower(words, "-")
	case StyleCamel, StyleCapCamel:
		var b strings.Builder
		for i, w := range words {
			if i == 0 && style == StyleCamel {
				b.WriteString(strings.ToLower(w))
				continue
			}
			b.WriteString(upperFirst(w))
		}
		return b.String()
	}

	return strings.Join(tokens, " ")
}

func splitWords(tokens []string) []string {
	var words []string
	for _, tok := range tokens {
		words = append(words, strings.FieldsFunc(tok, isWordBreak)...)
	}
	return words
}

func isWordBreak(r rune) bool {
	return r == ' ' || r == '-' || r == '\'' || r == '’' || r == '.'
}

func joinLower(words []string, sep string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
