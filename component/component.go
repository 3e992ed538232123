// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package component is a minimal consumer of [serialdict] in its
intended role: a component-framework data layer. A [Registry] maps
component type names to factories in registration order, and a
[Template] bundles per-component property tables that can be loaded
from asset files and applied to freshly made components.
*/
package component

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vape/serialdict"
)

// Factory creates a new component, returning a pointer to a struct.
type Factory func() any

// Registry maps component type names to their factories. The
// backing dictionary preserves registration order, which is what
// spawn code and editor dropdowns iterate in.
type Registry struct {
	factories serialdict.Dict[string, Factory]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// Register registers the given factory under the given component
// type name. Registering the same name twice is an error.
func (r *Registry) Register(name string, f Factory) error {
	if err := r.factories.Add(name, f); err != nil {
		return fmt.Errorf("component.Register: %w", err)
	}
	return nil
}

// New creates a new component of the given type name. The lookup
// tries an exact match first and then falls back to a
// case-insensitive scan.
func (r *Registry) New(name string) (any, error) {
	if f, ok := r.factories.AtTry(name); ok {
		return f(), nil
	}
	for _, nm := range r.factories.CanonicalKeys() {
		if strings.EqualFold(nm, name) {
			return r.factories.At(nm)(), nil
		}
	}
	return nil, fmt.Errorf("component.New: no component type named %q", name)
}

// Names returns the registered component type names in
// registration order.
func (r *Registry) Names() []string {
	return r.factories.CanonicalKeys()
}

// Property returns the value of the named field of the given
// component, using reflection to access it dynamically.
func Property(comp any, name string) (any, error) {
	val := reflect.ValueOf(comp)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("component.Property: component is not a struct: %T", comp)
	}
	field := val.FieldByName(name)
	if !field.IsValid() {
		return nil, fmt.Errorf("component.Property: property not found: %s", name)
	}
	return field.Interface(), nil
}

// SetProperty sets the named field of the given component, which
// must be a pointer to a struct. Values of a convertible type are
// converted, so the float64 numbers that JSON decoding produces can
// fill int fields.
func SetProperty(comp any, name string, value any) error {
	val := reflect.ValueOf(comp)
	if val.Kind() != reflect.Pointer {
		return fmt.Errorf("component.SetProperty: component must be a pointer to a struct: %T", comp)
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("component.SetProperty: component is not a struct: %T", comp)
	}
	field := val.FieldByName(name)
	if !field.IsValid() {
		return fmt.Errorf("component.SetProperty: property not found: %s", name)
	}
	if !field.CanSet() {
		return fmt.Errorf("component.SetProperty: property cannot be set: %s", name)
	}
	vv := reflect.ValueOf(value)
	if !vv.IsValid() {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	if vv.Type().AssignableTo(field.Type()) {
		field.Set(vv)
		return nil
	}
	if vv.Type().ConvertibleTo(field.Type()) {
		field.Set(vv.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("component.SetProperty: cannot assign %T to property %s of type %s", value, name, field.Type())
}
