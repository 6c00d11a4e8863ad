package attach

import "fmt"

// ExistingAttributeError is returned when an attachment would shadow an
// attribute that already exists on a target and was not created by a prior
// attachment, and overwrite was not requested. The only remedies are caller
// actions: rename the attachable or pass WithOverwrite.
type ExistingAttributeError struct {
	// Target is the fully qualified name of the target type.
	Target string
	// Attr is the colliding attribute name.
	Attr string
}

// Error implements the error interface.
func (e ExistingAttributeError) Error() string {
	return fmt.Sprintf("%s.%s already exists. Pass overwrite to replace it", e.Target, e.Attr)
}

// InvalidShapeError is returned when a value cannot be wrapped as a property,
// either because it is not a function or because it takes the wrong number of
// arguments.
type InvalidShapeError struct {
	// Name is the attachable's attribute name.
	Name string
	// Reason describes the shape mismatch.
	Reason string
}

// Error implements the error interface.
func (e InvalidShapeError) Error() string {
	return fmt.Sprintf("cannot convert %q to a property: %s", e.Name, e.Reason)
}
