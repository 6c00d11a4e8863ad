package extension

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Has returns true if the store holds an extension for (target, name).
func Has(s ExtensionStore, target Target, name string) bool {
	_, err := s.Get(NewExtensionKey(target, name))

	return err == nil
}

// Invoke calls the method extension registered under name for recv's type and
// returns its result. Bound extensions receive recv as their first argument.
// Functions returning (T, error) have the error split off; functions with
// multiple non-error results return a []any.
//
// Invoke is the call-site dispatch that replaces `instance.name(args...)` on a
// runtime-extended type.
func Invoke(s ExtensionStore, recv any, name string, args ...any) (any, error) {
	ext, err := lookup(s, TargetFor(recv), name)
	if err != nil {
		return nil, fmt.Errorf("invoking %q on %s: %w", name, TargetFor(recv), err)
	}
	if ext.Kind != KindMethod {
		return nil, fmt.Errorf("extension %s is a %s, not a method", ext.Key(), ext.Kind)
	}

	fn := reflect.ValueOf(ext.Value)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("extension %s does not hold a callable value", ext.Key())
	}

	call := args
	if ext.Bound {
		call = append([]any{recv}, args...)
	}

	return callFunc(ext.Key(), fn, call)
}

// Get evaluates the property extension registered under name against recv,
// returning the property value. It replaces `instance.name` attribute access
// on a runtime-extended type.
func Get(s ExtensionStore, recv any, name string) (any, error) {
	ext, err := lookup(s, TargetFor(recv), name)
	if err != nil {
		return nil, fmt.Errorf("reading %q on %s: %w", name, TargetFor(recv), err)
	}
	if ext.Kind != KindProperty {
		return nil, fmt.Errorf("extension %s is a %s, not a property", ext.Key(), ext.Kind)
	}

	prop, ok := ext.Value.(Property)
	if !ok {
		return nil, fmt.Errorf("extension %s does not hold a property value", ext.Key())
	}

	return prop.Get(recv)
}

// Value returns the constant extension registered under name for the target.
func Value(s ExtensionStore, target Target, name string) (any, error) {
	ext, err := lookup(s, target, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q on %s: %w", name, target, err)
	}
	if ext.Kind != KindConstant {
		return nil, fmt.Errorf("extension %s is a %s, not a constant", ext.Key(), ext.Kind)
	}

	return ext.Value, nil
}

// lookup resolves the extension for the target, falling back to the
// pointed-to type when the target is a pointer type. This lets a *Frame
// receiver dispatch to extensions attached to Frame.
func lookup(s ExtensionStore, target Target, name string) (Extension, error) {
	ext, err := s.Get(NewExtensionKey(target, name))
	if err == nil {
		return ext, nil
	}

	if rt := target.Type(); rt != nil && rt.Kind() == reflect.Pointer {
		return s.Get(NewExtensionKey(NewTarget(rt.Elem()), name))
	}

	return Extension{}, err
}

// callFunc applies args to fn, adapting pointer receivers to value parameters
// where needed.
func callFunc(key ExtensionKey, fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()
	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("extension %s takes at least %d arguments, got %d", key, ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("extension %s takes %d arguments, got %d", key, ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}

		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			if av.Kind() == reflect.Pointer && av.Elem().Type().AssignableTo(pt) {
				av = av.Elem()
			} else {
				return nil, fmt.Errorf("extension %s argument %d: %s is not assignable to %s", key, i, av.Type(), pt)
			}
		}
		in[i] = av
	}

	return splitResults(fn.Call(in))
}

// paramType returns the type of the i-th argument, unrolling the variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}

	return ft.In(i)
}

// splitResults separates a trailing error from the function results.
func splitResults(outs []reflect.Value) (any, error) {
	var err error
	if n := len(outs); n > 0 && outs[n-1].Type().Implements(errType) {
		if e, ok := outs[n-1].Interface().(error); ok && e != nil {
			err = e
		}
		outs = outs[:n-1]
	}

	switch len(outs) {
	case 0:
		return nil, err
	case 1:
		return outs[0].Interface(), err
	default:
		vals := make([]any, len(outs))
		for i, o := range outs {
			vals[i] = o.Interface()
		}

		return vals, err
	}
}
