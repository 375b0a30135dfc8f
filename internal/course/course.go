// Package course loads the static curriculum of modules and lessons.
package course

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Lesson is a unit of reading material with a knowledge check.
type Lesson struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Duration string `yaml:"duration"`
	Content  string `yaml:"content"`
	// Lab names the physics lab that illustrates the lesson, if any.
	Lab string `yaml:"lab,omitempty"`
}

// Module is an ordered group of lessons.
type Module struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Objective string   `yaml:"objective"`
	Lessons   []Lesson `yaml:"lessons"`
}

// LessonIDs returns the ids of the module's lessons in order.
func (m Module) LessonIDs() []string {
	ids := make([]string, len(m.Lessons))
	for i, l := range m.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// Catalog is an immutable, validated curriculum.
type Catalog struct {
	modules []Module
	lessons map[string]Lesson
	owner   map[string]string
}

type catalogFile struct {
	Modules []Module `yaml:"modules"`
}

// Default returns the built-in curriculum.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		modules: file.Modules,
		lessons: make(map[string]Lesson),
		owner:   make(map[string]string),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.modules) == 0 {
		return errors.New("catalog has no modules")
	}
	seenModules := make(map[string]bool)
	for _, m := range c.modules {
		if m.ID == "" || m.Title == "" {
			return fmt.Errorf("module %q: id and title are required", m.ID)
		}
		if seenModules[m.ID] {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		seenModules[m.ID] = true
		if len(m.Lessons) == 0 {
			return fmt.Errorf("module %q has no lessons", m.ID)
		}
		for _, l := range m.Lessons {
			if l.ID == "" || l.Title == "" {
				return fmt.Errorf("module %q: lesson %q needs id and title", m.ID, l.ID)
			}
			if other, dup := c.owner[l.ID]; dup {
				return fmt.Errorf("duplicate lesson id %q in modules %q and %q", l.ID, other, m.ID)
			}
			c.lessons[l.ID] = l
			c.owner[l.ID] = m.ID
		}
	}
	return nil
}

// Modules returns the modules in catalog order.
func (c *Catalog) Modules() []Module {
	return c.modules
}

// Module looks up a module by id.
func (c *Catalog) Module(id string) (Module, bool) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Lesson looks up a lesson by id.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	l, ok := c.lessons[id]
	return l, ok
}

// ModuleOf returns the id of the module that owns a lesson.
func (c *Catalog) ModuleOf(lessonID string) (string, bool) {
	m, ok := c.owner[lessonID]
	return m, ok
}

// AllLessonIDs returns every lesson id in catalog order.
func (c *Catalog) AllLessonIDs() []string {
	var ids []string
	for _, m := range c.modules {
		ids = append(ids, m.LessonIDs()...)
	}
	return ids
}

// LessonIDs returns the lesson ids of one module, or nil if unknown.
func (c *Catalog) LessonIDs(moduleID string) []string {
	m, ok := c.Module(moduleID)
	if !ok {
		return nil
	}
	return m.LessonIDs()
}
