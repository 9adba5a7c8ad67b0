package menu

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("menu item not found")

// NotFoundError reports a lookup for a name the catalog does not carry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("menu item %q not found", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DefinitionError reports an invalid menu definition.
type DefinitionError struct {
	Item    string // empty when the problem is not tied to one item
	Message string
}

func (e *DefinitionError) Error() string {
	if e.Item != "" {
		return fmt.Sprintf("menu item %q: %s", e.Item, e.Message)
	}
	return "menu: " + e.Message
}
