package attach

import (
	"fmt"
	"reflect"

	"github.com/graftlabs/graft/extension"
)

// Group is an ordered collection of attachables declared together and attached
// in one request. It is a scratch container: the engine consumes its members
// and the group itself carries no behavior afterward.
type Group struct {
	attachables []Attachable
}

// NewGroup creates a new empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Func adds a method attachable to the group.
func (g *Group) Func(name string, fn any) *Group {
	g.attachables = append(g.attachables, Func(name, fn))

	return g
}

// Const adds a constant attachable to the group.
func (g *Group) Const(name string, v any) *Group {
	g.attachables = append(g.attachables, Const(name, v))

	return g
}

// Prop adds a property attachable to the group.
func (g *Group) Prop(name string, fn any) *Group {
	g.attachables = append(g.attachables, Prop(name, fn))

	return g
}

// Add appends an already-built attachable to the group.
func (g *Group) Add(a Attachable) *Group {
	g.attachables = append(g.attachables, a)

	return g
}

// Attachables returns a copy of the group's members in declaration order.
func (g *Group) Attachables() []Attachable {
	return append([]Attachable{}, g.attachables...)
}

// GroupOf builds a Group from a struct value, the declaration-sugar form of
// batch attachment. Exported fields become constant attachables in declaration
// order; exported methods become method attachables in Go's method order
// (alphabetical), with the struct receiver pre-bound so the method's first
// declared parameter is free to accept the target instance.
//
// The struct is only a scratch container. Unexported members are skipped, and
// both forms normalize into the same request the fluent builder produces.
func GroupOf(v any) (*Group, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("group value must not be nil")
	}

	sv := rv
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return nil, fmt.Errorf("group value must not be nil")
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("group value must be a struct or pointer to struct, got %T", v)
	}

	g := NewGroup()

	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		g.Const(field.Name, sv.Field(i).Interface())
	}

	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() {
			continue
		}
		g.Func(method.Name, rv.Method(i).Interface())
	}

	return g, nil
}

// To collects the target types of an attachment request.
func To(targets ...extension.Target) []extension.Target {
	return targets
}
