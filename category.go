package lifeassist

import "strings"

// Categories is the ordered set of labels an expense may be filed under.
// The order is the one user-facing messages list them in. Matching is exact
// and case sensitive.
type Categories []string

// DefaultCategories is the stock category set. A different set can be
// supplied at engine construction.
var DefaultCategories = Categories{
	"Food",
	"Rent",
	"Transportation",
	"Clothing",
	"Material",
	"Paypal",
	"Event",
	"Sports",
}

// Contains reports whether c belongs to the set.
func (cs Categories) Contains(c string) bool {
	for _, v := range cs {
		if v == c {
			return true
		}
	}
	return false
}

// String renders the set the way error messages list it.
func (cs Categories) String() string { return strings.Join(cs, ", ") }
