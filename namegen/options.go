package namegen

import (
	"fmt"
	"strings"

	"github.com/qngen/qngen/casefmt"
)

// ConflictingOptionsError reports mutually exclusive options requested
// together.
type ConflictingOptionsError struct {
	Options []string
}

func (e *ConflictingOptionsError) Error() string {
	return fmt.Sprintf("cannot specify more than one option amongst %s",
		strings.Join(e.Options, ", "))
}

// ModifierFromFlags resolves the compound-modifier flags, rejecting
// combinations.
func ModifierFromFlags(doubleSurname, middleName, middleInitial bool) (Modifier, error) {
	var (
		mod Modifier
		set []string
	)
	if doubleSurname {
		mod = ModDoubleSurname
		set = append(set, "--double-surname")
	}
	if middleName {
		mod = ModMiddleName
		set = append(set, "--middle-name")
	}
	if middleInitial {
		mod = ModMiddleInitial
		set = append(set, "--middle-initial")
	}
	if len(set) > 1 {
		return ModNone, &ConflictingOptionsError{Options: set}
	}
	return mod, nil
}

// StyleFromFlags resolves the case-style flags, rejecting combinations.
func StyleFromFlags(snake, kebab, camel, capCamel bool) (casefmt.Style, error) {
	var (
		style casefmt.Style
		set   []string
	)
	if snake {
		style = casefmt.StyleSnake
		set = append(set, "--snake-case")
	}
	if kebab {
		style = casefmt.StyleKebab
		set = append(set, "--kebab-case")
	}
	if camel {
		style = casefmt.StyleCamel
		set = append(set, "--camel-case")
	}
	if capCamel {
		style = casefmt.StyleCapCamel
		set = append(set, "--cap-camel-case")
	}
	if len(set) > 1 {
		return casefmt.StyleNone, &ConflictingOptionsError{Options: set}
	}
	return style, nil
}
