// Package source loads CSL-JSON bibliography files and reports which item
// fields hold numeric content.
package source

import "github.com/c360studio/citenum/numeric"

// Item is a single CSL-JSON item.
type Item struct {
	// ID is the item's "id" value, or a generated UUID when absent.
	ID string `json:"id"`

	// Fields holds every CSL variable of the item keyed by variable name.
	Fields map[string]any `json:"fields"`
}

// Get returns the raw value of a CSL variable.
func (i Item) Get(variable string) (any, bool) {
	v, ok := i.Fields[variable]
	return v, ok
}

// ItemReport is the numeric analysis of one item.
type ItemReport struct {
	// File is the path the item was loaded from.
	File string `json:"file"`

	// ID is the item ID.
	ID string `json:"id"`

	// Fields maps each inspected variable present on the item to its verdict.
	Fields map[string]numeric.Verdict `json:"fields"`

	// Numeric is the result of the is-numeric condition for the item.
	Numeric bool `json:"numeric"`
}
