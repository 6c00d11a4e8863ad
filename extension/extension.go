package extension

import (
	"errors"

	"github.com/Masterminds/semver/v3"
)

var ErrExtensionNotFound = errors.New("no extension record can be found for the provided key")
var ErrExtensionExists = errors.New("an extension record with the supplied key already exists")

// Kind identifies how an extension's value is dispatched at call sites.
type Kind string

const (
	// KindMethod is a callable extension invoked with Invoke.
	KindMethod Kind = "method"
	// KindProperty is an accessor extension evaluated with Get, no call parentheses.
	KindProperty Kind = "property"
	// KindConstant is a plain value extension read with Value.
	KindConstant Kind = "constant"
)

// Property is an accessor evaluated against an instance of the target type.
// Reading a property named F on instance i yields F(i).
type Property struct {
	GetFunc func(recv any) (any, error)
}

// Get evaluates the property against recv.
func (p Property) Get(recv any) (any, error) {
	return p.GetFunc(recv)
}

// Extension implements the UniqueRecord interface
var _ UniqueRecord[ExtensionKey, Extension] = Extension{}

// Extension is a single attached attribute: a named method, property, or
// constant recorded against a target type in the side table.
type Extension struct {
	// Target is the type the extension is attached to.
	Target Target `json:"-"`
	// Name is the attribute name of the extension on the target.
	Name string `json:"name"`
	// Kind determines how the extension is dispatched.
	Kind Kind `json:"kind"`
	// Version is an optional semantic version stamped onto the extension.
	Version *semver.Version `json:"version,omitempty"`
	// Value is the function, Property, or constant to dispatch to.
	Value any `json:"-"`
	// Bound reports whether a method extension receives the instance as its
	// first argument. Unbound methods are called without a receiver.
	Bound bool `json:"bound,omitempty"`
}

// Clone creates a copy of the Extension. The Value is shared between the
// original and the copy; extension values are immutable once recorded.
func (e Extension) Clone() Extension {
	return Extension{
		Target:  e.Target,
		Name:    e.Name,
		Kind:    e.Kind,
		Version: e.Version,
		Value:   e.Value,
		Bound:   e.Bound,
	}
}

// Key returns the ExtensionKey for the Extension.
// It is used to uniquely identify the extension in the store.
func (e Extension) Key() ExtensionKey {
	return NewExtensionKey(e.Target, e.Name)
}
