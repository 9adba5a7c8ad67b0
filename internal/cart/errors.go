package cart

import (
	"errors"
	"fmt"
)

// ErrValidation matches any ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports input that cannot be billed or committed.
// Field names the offending input ("customer_name" or "items").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field names used in ValidationError.
const (
	FieldCustomerName = "customer_name"
	FieldItems        = "items"
)

// errBlankCustomer and errEmptyCart are the two checks shared by
// invoicing and committing.
var (
	errBlankCustomer = &ValidationError{Field: FieldCustomerName, Message: "customer name cannot be empty"}
	errEmptyCart     = &ValidationError{Field: FieldItems, Message: "order list is empty"}
)
