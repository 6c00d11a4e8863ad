package extension

import (
	"fmt"
)

// ExtensionKey is an interface that represents a key for Extension records.
// It is used to uniquely identify a record in the ExtensionStore.
type ExtensionKey interface {
	Comparable[ExtensionKey]
	fmt.Stringer

	// Target returns the target type the extension is attached to.
	Target() Target
	// Name returns the attribute name of the extension on the target.
	Name() string
}

// extensionKey implements the ExtensionKey interface.
var _ ExtensionKey = extensionKey{}

// extensionKey is a struct that implements the ExtensionKey interface.
// It is used to uniquely identify a record in the ExtensionStore.
type extensionKey struct {
	target Target
	name   string
}

// Target returns the target type the extension is attached to.
func (k extensionKey) Target() Target { return k.target }

// Name returns the attribute name of the extension on the target.
func (k extensionKey) Name() string { return k.name }

// Equals returns true if the two ExtensionKey instances are equal, false otherwise.
func (k extensionKey) Equals(other ExtensionKey) bool {
	return k.target.Equals(other.Target()) &&
		k.name == other.Name()
}

// String returns a string representation of the ExtensionKey, e.g.
// "github.com/acme/tables.Frame.size".
func (k extensionKey) String() string {
	return k.target.String() + "." + k.name
}

// NewExtensionKey creates a new ExtensionKey instance.
func NewExtensionKey(target Target, name string) ExtensionKey {
	return extensionKey{
		target: target,
		name:   name,
	}
}
