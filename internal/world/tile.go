// Package world provides map segmentation and region adjacency.
package world

import "strings"

// Code is a terrain code naming the kind of room a cell belongs to.
// The zero value is the empty code: the cell belongs to no region.
type Code string

// Empty marks a cell that belongs to no region.
const Empty Code = ""

// IsEmpty returns true if the cell holds no terrain.
func (c Code) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Label returns the code for display, or "--" for empty cells.
func (c Code) Label() string {
	if c.IsEmpty() {
		return "--"
	}
	return string(c)
}
