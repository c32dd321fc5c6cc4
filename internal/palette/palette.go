// Package palette manages class palettes: the named, colored label
// categories a labeling session draws from. Palettes are stored as YAML
// files and ship with per-medium defaults.
package palette

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/medialabel-go/internal/annotation"
	"github.com/tphakala/medialabel-go/internal/errors"
)

// Palette is an ordered set of class definitions for one medium.
type Palette struct {
	Name    string                       `yaml:"name"`
	Classes []annotation.ClassDefinition `yaml:"classes"`
}

// NewClass creates a class definition with a fresh stable id.
func NewClass(name, color string) annotation.ClassDefinition {
	return annotation.ClassDefinition{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
}

// Labels returns the display names of all classes, in palette order.
func (p *Palette) Labels() []string {
	labels := make([]string, len(p.Classes))
	for i := range p.Classes {
		labels[i] = p.Classes[i].Name
	}
	return labels
}

// FindByName returns the class with the given display name.
func (p *Palette) FindByName(name string) (annotation.ClassDefinition, bool) {
	for i := range p.Classes {
		if p.Classes[i].Name == name {
			return p.Classes[i], true
		}
	}
	return annotation.ClassDefinition{}, false
}

// Add appends a new class with the given name and color and returns it.
// Duplicate names are rejected.
func (p *Palette) Add(name, color string) (annotation.ClassDefinition, error) {
	if _, exists := p.FindByName(name); exists {
		return annotation.ClassDefinition{}, errors.Newf("class %q already exists in palette %s", name, p.Name).
			Component("palette").
			Category(errors.CategoryConflict).
			Build()
	}
	cls := NewClass(name, color)
	p.Classes = append(p.Classes, cls)
	return cls, nil
}

// Load reads a palette from a YAML file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(fmt.Errorf("failed to read palette file: %w", err)).
			Component("palette").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.New(fmt.Errorf("failed to parse palette file: %w", err)).
			Component("palette").
			Category(errors.CategoryFileParsing).
			Context("path", path).
			Build()
	}
	return &p, nil
}

// Save writes the palette to a YAML file, creating parent directories.
func Save(p *Palette, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.New(fmt.Errorf("failed to marshal palette: %w", err)).
			Component("palette").
			Category(errors.CategoryFileParsing).
			Build()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(fmt.Errorf("failed to create palette directory: %w", err)).
			Component("palette").
			Category(errors.CategoryFileIO).
			Context("path", dir).
			Build()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(fmt.Errorf("failed to write palette file: %w", err)).
			Component("palette").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	return nil
}

// LoadOrDefault reads the palette at path, falling back to the built-in
// default for the medium when the file does not exist.
func LoadOrDefault(path, medium string) (*Palette, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(medium), nil
	}
	return Load(path)
}

// Default returns the built-in palette for a medium. Ids are fixed slugs
// so annotations created against defaults survive palette file edits.
func Default(medium string) *Palette {
	switch medium {
	case "audio":
		return &Palette{
			Name: "audio-default",
			Classes: []annotation.ClassDefinition{
				{ID: "speaker-1", Name: "Speaker 1", Color: "#e6194b"},
				{ID: "speaker-2", Name: "Speaker 2", Color: "#3cb44b"},
				{ID: "music", Name: "Music", Color: "#ffe119"},
				{ID: "noise", Name: "Noise", Color: "#911eb4"},
			},
		}
	default:
		// Image and video share the object palette.
		return &Palette{
			Name: medium + "-default",
			Classes: []annotation.ClassDefinition{
				{ID: "person", Name: "Person", Color: "#e6194b"},
				{ID: "vehicle", Name: "Vehicle", Color: "#4363d8"},
				{ID: "animal", Name: "Animal", Color: "#3cb44b"},
				{ID: "object", Name: "Object", Color: "#f58231"},
			},
		}
	}
}
