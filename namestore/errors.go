package namestore

import (
	"fmt"
	"strings"
)

// UnknownCategoryError reports a requested category identifier that does
// not exist in the loaded data.
type UnknownCategoryError struct {
	ID string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.ID)
}

// EmptyPoolError reports that the resolved candidate pool for a required
// name slot has no entries, e.g. a gender filter over categories with no
// matching first names.
type EmptyPoolError struct {
	Slot       string
	Gender     Gender
	Categories []string
}

func (e *EmptyPoolError) Error() string {
	cats := strings.Join(e.Categories, ", ")
	if e.Slot == "surname" || e.Gender == Either {
		return fmt.Sprintf("no %s entries in categories %s", e.Slot, cats)
	}
	return fmt.Sprintf("no %s %s entries in categories %s", e.Gender, e.Slot, cats)
}
