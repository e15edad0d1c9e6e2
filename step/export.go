// SPDX-License-Identifier: MIT

package step

import "encoding/json"

// Document is the exported, serializable shape of a Run.
type Document[S any] struct {
	Algorithm string    `json:"algorithm" yaml:"algorithm"`
	Length    int       `json:"length" yaml:"length"`
	Steps     []Step[S] `json:"steps" yaml:"steps"`
}

// Document returns the serializable view of r.
func (r *Run[S]) Document() Document[S] {
	return Document[S]{Algorithm: r.name, Length: len(r.steps), Steps: r.Steps()}
}

// MarshalJSON encodes the Run as its Document.
func (r *Run[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v3).
func (r *Run[S]) MarshalYAML() (any, error) {
	return r.Document(), nil
}
