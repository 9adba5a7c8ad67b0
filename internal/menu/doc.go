// Package menu provides the fixed catalog of purchasable items.
//
// A Catalog is built once at startup (from Default, or from a YAML or CUE
// menu file via LoadFile) and is never mutated afterwards. Lookups are by
// exact item name.
//
// Listing order is the declaration order of the source, so the same menu
// file always renders the same selection list.
package menu
