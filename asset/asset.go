// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset saves and loads values to and from asset files in
// JSON, YAML, and TOML, and can watch asset files for live reload.
// The Open functions reconcile loaded values that implement
// [Reconciler], so a [serialdict.Dict] read straight into its
// exported slices comes back usable as a map.
package asset

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Reconciler is implemented by values that must rebuild runtime
// state after a deserializer has written into their exported fields.
type Reconciler interface {
	Reconcile() error
}

// reconcile runs the [Reconciler] half of the load protocol if the
// loaded value implements it.
func reconcile(v any) error {
	if r, ok := v.(Reconciler); ok {
		return r.Reconcile()
	}
	return nil
}

// OpenJSON reads the given value from the given JSON file.
func OpenJSON(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadJSON(v, f)
}

// ReadJSON reads the given value from the given reader as JSON.
func ReadJSON(v any, r io.Reader) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	return reconcile(v)
}

// SaveJSON writes the given value to the given JSON file.
func SaveJSON(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(v, f)
}

// WriteJSON writes the given value to the given writer as
// indented JSON.
func WriteJSON(v any, w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e.Encode(v)
}

// OpenYAML reads the given value from the given YAML file.
func OpenYAML(v any, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return ReadYAML(v, bytes.NewReader(b))
}

// ReadYAML reads the given value from the given reader as YAML.
func ReadYAML(v any, r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	return reconcile(v)
}

// SaveYAML writes the given value to the given YAML file.
func SaveYAML(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteYAML(v, f)
}

// WriteYAML writes the given value to the given writer as YAML.
func WriteYAML(v any, w io.Writer) error {
	e := yaml.NewEncoder(w)
	defer e.Close()
	return e.Encode(v)
}

// OpenTOML reads the given value from the given TOML file.
func OpenTOML(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadTOML(v, f)
}

// ReadTOML reads the given value from the given reader as TOML.
func ReadTOML(v any, r io.Reader) error {
	if err := toml.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	return reconcile(v)
}

// SaveTOML writes the given value to the given TOML file.
func SaveTOML(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTOML(v, f)
}

// WriteTOML writes the given value to the given writer as TOML.
func WriteTOML(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
