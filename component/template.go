// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"fmt"

	"github.com/vape/serialdict"
)

// Template is a named bundle of per-component property tables, the
// shape entity templates take in data files. The outer dictionary
// preserves the file's component order; each property table is a
// plain field-name to value map.
type Template struct {
	Name string `json:"name" yaml:"name" toml:"name"`

	// Components maps component type names to property tables,
	// in file order.
	Components serialdict.Dict[string, map[string]any] `json:"components" yaml:"components" toml:"components"`
}

// Reconcile rebuilds the runtime state of the component table after
// a deserializer has filled the exported fields.
func (t *Template) Reconcile() error {
	return t.Components.Reconcile()
}

// Spawn makes one component per entry of the given template, in
// template order, applying each property table to its component.
func (r *Registry) Spawn(t *Template) ([]any, error) {
	var comps []any
	var rerr error
	t.Components.Range(func(name string, props map[string]any) bool {
		comp, err := r.New(name)
		if err != nil {
			rerr = err
			return false
		}
		for pn, pv := range props {
			if err := SetProperty(comp, pn, pv); err != nil {
				rerr = fmt.Errorf("component.Spawn: template %q: %w", t.Name, err)
				return false
			}
		}
		comps = append(comps, comp)
		return true
	})
	if rerr != nil {
		return nil, rerr
	}
	return comps, nil
}
