// Package namegen draws random names from a namestore.Store and composes
// them into full names.
package namegen

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/qngen/qngen/casefmt"
	"github.com/qngen/qngen/namestore"
)

// Modifier selects the compound shape of a generated name. Modifiers are
// mutually exclusive.
type Modifier int

const (
	ModNone Modifier = iota
	ModDoubleSurname
	ModMiddleName
	ModMiddleInitial
)

// Request is a resolved set of generation options.
type Request struct {
	// Categories to draw from. Empty means "std".
	Categories []string
	Gender     namestore.Gender
	Modifier   Modifier
	Style      casefmt.Style
}

func (r *Request) normalize() {
	if len(r.Categories) == 0 {
		r.Categories = []string{"std"}
	}
}

// Name is an ordered set of drawn name tokens.
type Name struct {
	First  string
	Middle string
	// Initial renders Middle as a single-letter initial.
	Initial  bool
	Surnames []string
}

// Surname returns the surname tokens joined with a hyphen.
func (n Name) Surname() string {
	return strings.Join(n.Surnames, "-")
}

// Tokens returns the name parts for case formatting. A middle initial is
// the bare uppercased letter; the trailing period only exists in the
// default rendering.
func (n Name) Tokens() []string {
	parts := make([]string, 0, 3)
	parts = append(parts, n.First)
	if n.Middle != "" {
		if n.Initial {
			parts = append(parts, middleInitial(n.Middle))
		} else {
			parts = append(parts, n.Middle)
		}
	}
	parts = append(parts, n.Surname())
	return parts
}

// String composes the default rendering: "First Surname", with the middle
// token and hyphenated double surname when present, and "X." for a middle
// initial.
func (n Name) String() string {
	parts := n.Tokens()
	if n.Middle != "" && n.Initial {
		parts[1] += "."
	}
	return strings.Join(parts, " ")
}

// Format renders the name in the given case style.
func (n Name) Format(style casefmt.Style) string {
	if style == casefmt.StyleNone {
		return n.String()
	}
	return casefmt.Format(n.Tokens(), style)
}

func middleInitial(middle string) string {
	r, _ := utf8.DecodeRuneInString(middle)
	if r == utf8.RuneError {
		return middle
	}
	return string(unicode.ToUpper(r))
}

// Generator draws names from a store with an injected random source.
type Generator struct {
	store *namestore.Store
	rand  *rand.Rand
}

// New returns a generator over the given store. A nil rng gets a fresh
// PCG-backed source; tests pass a seeded one for reproducibility.
func New(store *namestore.Store, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{store: store, rand: rng}
}

// Pick draws one name according to the request, without formatting.
// The middle name is drawn independently from the first-name pool and may
// coincide with the first name; that matches the source data's behavior
// and is not deduplicated.
func (g *Generator) Pick(req Request) (Name, error) {
	req.normalize()

	firsts, err := g.store.FirstNames(req.Gender, req.Categories)
	if err != nil {
		return Name{}, err
	}
	if len(firsts) == 0 {
		return Name{}, &namestore.EmptyPoolError{
			Slot:       "first name",
			Gender:     req.Gender,
			Categories: req.Categories,
		}
	}

	surnames, err := g.store.Surnames(req.Categories)
	if err != nil {
		return Name{}, err
	}
	if len(surnames) == 0 {
		return Name{}, &namestore.EmptyPoolError{
			Slot:       "surname",
			Categories: req.Categories,
		}
	}

	n := Name{First: g.choice(firsts)}

	i := g.rand.IntN(len(surnames))
	n.Surnames = []string{surnames[i]}

	switch req.Modifier {
	case ModDoubleSurname:
		n.Surnames = append(n.Surnames, surnames[g.secondIndex(len(surnames), i)])
	case ModMiddleName:
		n.Middle = g.choice(firsts)
	case ModMiddleInitial:
		n.Middle = g.choice(firsts)
		n.Initial = true
	}

	return n, nil
}

func (g *Generator) choice(pool []string) string {
	return pool[g.rand.IntN(len(pool))]
}

// secondIndex draws a second surname index distinct from the first when
// the pool allows it. A single-entry pool falls back to repeating the
// only surname.
func (g *Generator) secondIndex(n, first int) int {
	if n < 2 {
		return first
	}
	j := g.rand.IntN(n - 1)
	if j >= first {
		j++
	}
	return j
}
