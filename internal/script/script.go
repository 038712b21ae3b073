// Package script replays YAML operation scripts against a listx.List[string].
//
// A script looks like:
//
//	name: insert-demo
//	seed: ["1", "2"]
//	steps:
//	  - op: insert
//	    index: 1
//	    value: "100"
//	  - op: iterate
//	    then: {op: add, value: "3"}
package script

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Operation names accepted in a step's op field.
const (
	OpAdd      = "add"
	OpInsert   = "insert"
	OpSet      = "set"
	OpAt       = "at"
	OpRemove   = "remove"
	OpRemoveAt = "remove_at"
	OpContains = "contains"
	OpIndexOf  = "index_of"
	OpClear    = "clear"
	OpCopyTo   = "copy_to"
	OpIterate  = "iterate"
	OpLen      = "len"
)

var (
	// ErrInvalidScript is returned for scripts that fail validation.
	ErrInvalidScript = errors.New("invalid script")

	indexedOps = []string{OpInsert, OpSet, OpAt, OpRemoveAt}
	knownOps   = []string{OpAdd, OpInsert, OpSet, OpAt, OpRemove, OpRemoveAt, OpContains,
		OpIndexOf, OpClear, OpCopyTo, OpIterate, OpLen}
)

// Step is one operation. Index is required for positional ops. CopyTo uses
// Size for the destination length and Offset for the start offset; Nil passes
// a nil destination. Then is only valid on iterate.
type Step struct {
	Op     string `yaml:"op" json:"op"`
	Index  *int   `yaml:"index,omitempty" json:"index,omitempty"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
	Offset int    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Size   int    `yaml:"size,omitempty" json:"size,omitempty"`
	Nil    bool   `yaml:"nil,omitempty" json:"nil,omitempty"`
	Then   *Step  `yaml:"then,omitempty" json:"then,omitempty"`
}

// Script is a named sequence of steps run against a list built from Seed.
type Script struct {
	Name        string   `yaml:"name" json:"name"`
	Seed        []string `yaml:"seed" json:"seed"`
	StopOnError bool     `yaml:"stop_on_error" json:"stop_on_error"`
	Steps       []Step   `yaml:"steps" json:"steps"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every step names a known op and carries the fields it needs.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(false); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalidScript, i, err)
		}
	}
	return nil
}

func (st Step) validate(nested bool) error {
	if !slices.Contains(knownOps, st.Op) {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	if slices.Contains(indexedOps, st.Op) && st.Index == nil {
		return fmt.Errorf("op %q requires index", st.Op)
	}
	if st.Then == nil {
		return nil
	}
	if st.Op != OpIterate || nested {
		return fmt.Errorf("op %q cannot carry a then step", st.Op)
	}
	return st.Then.validate(true)
}
