package extension

import (
	"reflect"
)

// Target is the type-tag for an existing Go type that extensions are attached
// to. Go types cannot gain attributes at runtime, so the registry keys its
// side table by Target and call sites dispatch through the table instead.
type Target struct {
	rtype reflect.Type
}

// NewTarget creates a Target for the given reflect.Type.
func NewTarget(rt reflect.Type) Target {
	return Target{rtype: rt}
}

// TargetOf creates a Target for the type parameter T.
func TargetOf[T any]() Target {
	return Target{rtype: reflect.TypeOf((*T)(nil)).Elem()}
}

// TargetFor creates a Target for the dynamic type of v.
func TargetFor(v any) Target {
	return Target{rtype: reflect.TypeOf(v)}
}

// Type returns the underlying reflect.Type of the Target.
func (t Target) Type() reflect.Type { return t.rtype }

// IsZero returns true if the Target does not reference a type.
func (t Target) IsZero() bool { return t.rtype == nil }

// Equals returns true if the two Target instances reference the same type, false otherwise.
func (t Target) Equals(other Target) bool {
	return t.rtype == other.rtype
}

// String returns the fully qualified name of the target type, e.g.
// "github.com/acme/tables.Frame". Unnamed types fall back to their type syntax.
func (t Target) String() string {
	if t.rtype == nil {
		return "<nil>"
	}
	if t.rtype.PkgPath() != "" {
		return t.rtype.PkgPath() + "." + t.rtype.Name()
	}

	return t.rtype.String()
}

// HasNative returns true if the underlying Go type already defines name as a
// method (on the value or pointer receiver) or as an exported struct field.
// This is the existence check the collision guard runs before an attachment.
func (t Target) HasNative(name string) bool {
	if t.rtype == nil {
		return false
	}

	if _, ok := t.rtype.MethodByName(name); ok {
		return true
	}
	if _, ok := reflect.PointerTo(t.rtype).MethodByName(name); ok {
		return true
	}

	st := t.rtype
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		if f, ok := st.FieldByName(name); ok && f.IsExported() {
			return true
		}
	}

	return false
}
