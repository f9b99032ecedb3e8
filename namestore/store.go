// Package namestore holds the categorized name lists the generator draws
// from. Data ships with the binary as embedded TOML files, one per
// category; user-supplied category files can be merged in at load time.
// A Store never changes after load and is safe for concurrent readers.
package namestore

import (
	"fmt"
	"slices"
)

// Gender filters first-name pools. Unisex entries match every filter.
type Gender int

const (
	Either Gender = iota
	Male
	Female
)

// ParseGender converts a gender identifier to a Gender. The empty string
// and "either" both mean no filtering.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "", "either":
		return Either, nil
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return Either, fmt.Errorf("unknown gender %q", s)
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return "either"
}

// Category is one named grouping of name entries.
type Category struct {
	ID       string
	Title    string
	Groups   []string
	Male     []string
	Female   []string
	Unisex   []string
	Surnames []string
}

// Store is the immutable, loaded name data set.
type Store struct {
	cats   map[string]*Category
	order  []string
	groups map[string][]string
}

// New builds a store from in-memory categories. Categories sharing an ID
// are merged in order, appending entries.
func New(cats ...Category) *Store {
	s := &Store{
		cats:   make(map[string]*Category),
		groups: make(map[string][]string),
	}
	for i := range cats {
		s.merge(&cats[i])
	}
	return s
}

func (s *Store) merge(c *Category) {
	existing, ok := s.cats[c.ID]
	if !ok {
		cp := *c
		s.cats[c.ID] = &cp
		s.order = append(s.order, c.ID)
		for _, g := range c.Groups {
			s.addToGroup(g, c.ID)
		}
		return
	}
	existing.Male = append(existing.Male, c.Male...)
	existing.Female = append(existing.Female, c.Female...)
	existing.Unisex = append(existing.Unisex, c.Unisex...)
	existing.Surnames = append(existing.Surnames, c.Surnames...)
	for _, g := range c.Groups {
		if !slices.Contains(existing.Groups, g) {
			existing.Groups = append(existing.Groups, g)
			s.addToGroup(g, c.ID)
		}
	}
}

func (s *Store) addToGroup(group, id string) {
	if !slices.Contains(s.groups[group], id) {
		s.groups[group] = append(s.groups[group], id)
	}
}

// Categories returns every loaded category in load order.
func (s *Store) Categories() []*Category {
	out := make([]*Category, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.cats[id])
	}
	return out
}

// Groups returns the group identifiers in sorted order. The "all" group
// always exists and covers every category.
func (s *Store) Groups() []string {
	out := []string{"all"}
	for g := range s.groups {
		out = append(out, g)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Resolve expands group identifiers and validates the requested set,
// returning concrete category IDs in load order without duplicates.
func (s *Store) Resolve(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no categories requested")
	}

	want := make(map[string]bool)
	for _, id := range ids {
		switch {
		case id == "all":
			for _, cid := range s.order {
				want[cid] = true
			}
		case len(s.groups[id]) > 0:
			for _, cid := range s.groups[id] {
				want[cid] = true
			}
		case s.cats[id] != nil:
			want[id] = true
		default:
			return nil, &UnknownCategoryError{ID: id}
		}
	}

	out := make([]string, 0, len(want))
	for _, id := range s.order {
		if want[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// FirstNames returns the deduplicated union of first names matching the
// gender filter across the requested categories. Unisex names match both
// male and female filters.
func (s *Store) FirstNames(gender Gender, ids []string) ([]string, error) {
	resolved, err := s.Resolve(ids)
	if err != nil {
		return nil, err
	}

	var out []string
	seen := make(map[string]bool)
	for _, id := range resolved {
		c := s.cats[id]
		if gender == Either || gender == Male {
			out = appendUnique(out, seen, c.Male)
		}
		if gender == Either || gender == Female {
			out = appendUnique(out, seen, c.Female)
		}
		out = appendUnique(out, seen, c.Unisex)
	}
	return out, nil
}

// Surnames returns the deduplicated union of surnames across the
// requested categories.
func (s *Store) Surnames(ids []string) ([]string, error) {
	resolved, err := s.Resolve(ids)
	if err != nil {
		return nil, err
	}

	var out []string
	seen := make(map[string]bool)
	for _, id := range resolved {
		out = appendUnique(out, seen, s.cats[id].Surnames)
	}
	return out, nil
}

func appendUnique(dst []string, seen map[string]bool, src []string) []string {
	for _, v := range src {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v)
		}
	}
	return dst
}
