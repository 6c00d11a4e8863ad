package attach

import (
	"fmt"
	"reflect"

	"github.com/graftlabs/graft/extension"
)

// Attachable is a single named value to attach: a callable, a property
// accessor, or a constant. Use the Func, Prop and Const constructors.
type Attachable struct {
	// Name is the attribute name the value is attached under.
	Name string
	// Value is the function, extension.Property, or constant.
	Value any
	// Kind determines how the value is recorded and dispatched.
	Kind extension.Kind
	// AsProperty wraps the value as a property for this attachable only,
	// regardless of the request-level flag.
	AsProperty bool
}

// Func creates a method attachable. Functions whose first parameter accepts
// the target type are attached bound; all other functions are attached static.
func Func(name string, fn any) Attachable {
	return Attachable{Name: name, Value: fn, Kind: extension.KindMethod}
}

// Const creates a constant attachable.
func Const(name string, v any) Attachable {
	return Attachable{Name: name, Value: v, Kind: extension.KindConstant}
}

// Prop creates a property attachable. fn must be a function of exactly one
// parameter (the receiver), or an already-wrapped extension.Property.
func Prop(name string, fn any) Attachable {
	return Attachable{Name: name, Value: fn, Kind: extension.KindProperty, AsProperty: true}
}

// resolve normalizes the attachable into the kind and value that will be
// recorded, applying property wrapping when requested at the request level or
// on the attachable itself. Values that are already properties pass through
// unchanged.
func (a Attachable) resolve(requestAsProperty bool) (extension.Kind, any, error) {
	if a.Name == "" {
		return "", nil, fmt.Errorf("attachable has no name")
	}

	asProperty := requestAsProperty || a.AsProperty || a.Kind == extension.KindProperty

	if prop, ok := a.Value.(extension.Property); ok {
		return extension.KindProperty, prop, nil
	}

	if !asProperty {
		return a.Kind, a.Value, nil
	}

	prop, err := wrapProperty(a.Name, a.Value)
	if err != nil {
		return "", nil, err
	}

	return extension.KindProperty, prop, nil
}

// wrapProperty converts a single-parameter function into a property accessor.
// The wrapped getter applies the receiver, so reading the property on an
// instance i yields fn(i).
func wrapProperty(name string, v any) (extension.Property, error) {
	fv := reflect.ValueOf(v)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return extension.Property{}, InvalidShapeError{
			Name:   name,
			Reason: fmt.Sprintf("value of type %T is not a function", v),
		}
	}

	ft := fv.Type()
	if ft.IsVariadic() || ft.NumIn() != 1 {
		return extension.Property{}, InvalidShapeError{
			Name:   name,
			Reason: fmt.Sprintf("getter must take exactly 1 argument, it takes %d", ft.NumIn()),
		}
	}

	getter := func(recv any) (any, error) {
		in := reflect.ValueOf(recv)
		if !in.IsValid() {
			return nil, fmt.Errorf("property %q: nil receiver", name)
		}
		if !in.Type().AssignableTo(ft.In(0)) {
			if in.Kind() == reflect.Pointer && in.Elem().Type().AssignableTo(ft.In(0)) {
				in = in.Elem()
			} else {
				return nil, fmt.Errorf("property %q: receiver %s is not assignable to %s", name, in.Type(), ft.In(0))
			}
		}

		return firstResult(fv.Call([]reflect.Value{in}))
	}

	return extension.Property{GetFunc: getter}, nil
}

// firstResult returns the first function result, splitting off a trailing error.
func firstResult(outs []reflect.Value) (any, error) {
	var err error
	if n := len(outs); n > 0 && outs[n-1].Type().Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		if e, ok := outs[n-1].Interface().(error); ok && e != nil {
			err = e
		}
		outs = outs[:n-1]
	}

	if len(outs) == 0 {
		return nil, err
	}

	return outs[0].Interface(), err
}
