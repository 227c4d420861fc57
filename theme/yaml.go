package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrNoName is returned by Parse when a theme document has no name.
var ErrNoName = errors.New("theme: missing name")

// UnmarshalYAML reads a mapping of effect names to values, keeping the
// order they were written in.
func (e *Extras) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("theme: customEffects must be a mapping, got line %d", value.Line)
	}
	out := make(Extras, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var k, v string
		if err := value.Content[i].Decode(&k); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&v); err != nil {
			return err
		}
		out = append(out, Extra{Key: k, Value: v})
	}
	*e = out
	return nil
}

// MarshalYAML writes the effects back as an ordered mapping.
func (e Extras) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, x := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: x.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: x.Value},
		)
	}
	return node, nil
}

// Parse decodes a single YAML theme document.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	if t.Name == "" {
		return Theme{}, ErrNoName
	}
	if t.DisplayName == "" {
		t.DisplayName = string(t.Name)
	}
	return t, nil
}

// LoadDir parses every .yaml and .yml file at the top level of fsys, sorted
// by file name.
func LoadDir(fsys fs.FS) ([]Theme, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var themes []Theme
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := path.Ext(e.Name()); ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// Load registers every theme found by LoadDir. Themes with a built-in name
// replace the built-in entry.
func (r *Registry) Load(fsys fs.FS) (int, error) {
	themes, err := LoadDir(fsys)
	if err != nil {
		return 0, err
	}
	for _, t := range themes {
		r.Register(t)
	}
	return len(themes), nil
}
