package namegen

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/qngen/qngen/namestore"
	"gotest.tools/v3/assert"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func testStore() *namestore.Store {
	return namestore.New(
		namestore.Category{
			ID:       "std",
			Male:     []string{"Jean", "Marc", "Réjean"},
			Female:   []string{"Céline", "Sophie", "Manon"},
			Unisex:   []string{"Dominique"},
			Surnames: []string{"Tremblay", "Roy", "Bouchard", "Gagnon"},
		},
		namestore.Category{
			ID:       "solo",
			Male:     []string{"Gaston"},
			Surnames: []string{"Lacasse"},
		},
	)
}

func TestPickMembership(t *testing.T) {
	store := testStore()
	gen := New(store, testRand())

	firsts, err := store.FirstNames(namestore.Either, []string{"std"})
	assert.NilError(t, err)
	surnames, err := store.Surnames([]string{"std"})
	assert.NilError(t, err)

	inFirsts := toSet(firsts)
	inSurnames := toSet(surnames)

	for range 100 {
		n, err := gen.Pick(Request{Categories: []string{"std"}})
		assert.NilError(t, err)
		assert.Assert(t, inFirsts[n.First], "first name %q outside pool", n.First)
		assert.Equal(t, len(n.Surnames), 1)
		assert.Assert(t, inSurnames[n.Surnames[0]], "surname %q outside pool", n.Surnames[0])
	}
}

func TestPickDefaultsToStd(t *testing.T) {
	gen := New(testStore(), testRand())
	n, err := gen.Pick(Request{})
	assert.NilError(t, err)
	assert.Assert(t, n.First != "")
}

func TestPickGenderFilter(t *testing.T) {
	store := testStore()
	gen := New(store, testRand())

	males, err := store.FirstNames(namestore.Male, []string{"std"})
	assert.NilError(t, err)
	inMales := toSet(males)

	for range 100 {
		n, err := gen.Pick(Request{Categories: []string{"std"}, Gender: namestore.Male})
		assert.NilError(t, err)
		assert.Assert(t, inMales[n.First], "male filter returned %q", n.First)
	}
}

func TestPickDoubleSurnameDistinct(t *testing.T) {
	gen := New(testStore(), testRand())

	for range 100 {
		n, err := gen.Pick(Request{Categories: []string{"std"}, Modifier: ModDoubleSurname})
		assert.NilError(t, err)
		assert.Equal(t, len(n.Surnames), 2)
		assert.Assert(t, n.Surnames[0] != n.Surnames[1], "duplicate surname in %v", n.Surnames)
	}
}

func TestPickDoubleSurnameSingletonPoolFallback(t *testing.T) {
	gen := New(testStore(), testRand())

	n, err := gen.Pick(Request{Categories: []string{"solo"}, Modifier: ModDoubleSurname})
	assert.NilError(t, err)
	assert.DeepEqual(t, n.Surnames, []string{"Lacasse", "Lacasse"})
}

func TestPickMiddleName(t *testing.T) {
	gen := New(testStore(), testRand())

	n, err := gen.Pick(Request{Categories: []string{"std"}, Modifier: ModMiddleName})
	assert.NilError(t, err)
	assert.Assert(t, n.Middle != "")
	assert.Assert(t, !n.Initial)
}

func TestPickMiddleNameMayRepeatFirst(t *testing.T) {
	// The middle name is drawn independently; on a single-name pool it
	// always equals the first name.
	gen := New(testStore(), testRand())

	n, err := gen.Pick(Request{Categories: []string{"solo"}, Modifier: ModMiddleName})
	assert.NilError(t, err)
	assert.Equal(t, n.First, "Gaston")
	assert.Equal(t, n.Middle, "Gaston")
}

func TestPickMiddleInitial(t *testing.T) {
	gen := New(testStore(), testRand())

	n, err := gen.Pick(Request{Categories: []string{"std"}, Modifier: ModMiddleInitial})
	assert.NilError(t, err)
	assert.Assert(t, n.Middle != "")
	assert.Assert(t, n.Initial)
}

func TestPickEmptyPool(t *testing.T) {
	gen := New(testStore(), testRand())

	_, err := gen.Pick(Request{Categories: []string{"solo"}, Gender: namestore.Female})
	var epe *namestore.EmptyPoolError
	assert.Assert(t, errors.As(err, &epe))
	assert.Equal(t, epe.Slot, "first name")
}

func TestPickUnknownCategory(t *testing.T) {
	gen := New(testStore(), testRand())

	_, err := gen.Pick(Request{Categories: []string{"doesnotexist"}})
	var uce *namestore.UnknownCategoryError
	assert.Assert(t, errors.As(err, &uce))
}

func TestPickDeterministicUnderSeed(t *testing.T) {
	req := Request{Categories: []string{"std"}, Modifier: ModDoubleSurname}

	a := New(testStore(), rand.New(rand.NewPCG(7, 7)))
	b := New(testStore(), rand.New(rand.NewPCG(7, 7)))

	for range 20 {
		na, err := a.Pick(req)
		assert.NilError(t, err)
		nb, err := b.Pick(req)
		assert.NilError(t, err)
		assert.DeepEqual(t, na, nb)
	}
}

func toSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
