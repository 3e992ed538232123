// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialdict

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML marshals the dictionary as a YAML mapping in row
// order. The mapping is built node by node, so retained duplicate
// keys survive, which an ordinary Go map could not express.
// The value receiver matters: the yaml encoder does not look up
// pointer-receiver marshalers for struct fields, so a Dict held by
// value would otherwise encode as a raw struct.
func (d Dict[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range d.Keys {
		kn := &yaml.Node{}
		if err := kn.Encode(k); err != nil {
			return nil, fmt.Errorf("serialdict: yaml encode of key %v: %w", k, err)
		}
		vn := &yaml.Node{}
		if err := vn.Encode(d.Values[i]); err != nil {
			return nil, fmt.Errorf("serialdict: yaml encode of value for key %v: %w", k, err)
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

// UnmarshalYAML unmarshals a YAML mapping pairwise in document
// order, retaining duplicate keys, and reconciles the runtime map.
func (d *Dict[K, V]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("serialdict: cannot unmarshal yaml %v node into a dictionary, need a mapping", n.Tag)
	}
	d.Keys = nil
	d.Values = nil
	for i := 0; i < len(n.Content); i += 2 {
		var k K
		if err := n.Content[i].Decode(&k); err != nil {
			return fmt.Errorf("serialdict: yaml decode of key at entry %d: %w", i/2, err)
		}
		var v V
		if err := n.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("serialdict: yaml decode of value for key %v: %w", k, err)
		}
		d.Keys = append(d.Keys, k)
		d.Values = append(d.Values, v)
	}
	return d.Reconcile()
}
