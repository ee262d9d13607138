// Package prototype demonstrates the prototype pattern on document templates.
//
// A Registry holds fully prepared Document prototypes. Asking for one hands
// out a deep copy, so the caller may customize the clone freely without the
// template ever noticing. The deep copy contract is what the tests pin down,
// since the pattern falls apart the moment a nested slice or map is shared.
package prototype

import (
	"fmt"
	"sort"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Document is an aggregate with nested parts, the thing worth cloning.
type Document struct {
	Title    string
	Author   string
	Sections []Section
	Metadata map[string]string
}

type Section struct {
	Heading    string
	Paragraphs []string
}

// Clone returns a deep copy of the document.
// Mutating the clone never leaks into the original.
func (d Document) Clone() Document {
	clone := d
	clone.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		clone.Sections[i] = Section{
			Heading:    s.Heading,
			Paragraphs: append([]string(nil), s.Paragraphs...),
		}
	}
	if d.Metadata != nil {
		clone.Metadata = make(map[string]string, len(d.Metadata))
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}

const ErrUnknownTemplate errorkit.Error = "unknown document template"

// Registry holds named document prototypes.
type Registry struct {
	prototypes map[string]Document
}

// Register stores the document as the prototype for name.
// The stored prototype is itself a clone,
// later changes to the argument do not affect the registry.
func (r *Registry) Register(name string, doc Document) {
	if r.prototypes == nil {
		r.prototypes = make(map[string]Document)
	}
	r.prototypes[name] = doc.Clone()
}

// Make returns a fresh clone of the named prototype.
func (r *Registry) Make(name string) (Document, error) {
	proto, ok := r.prototypes[name]
	if !ok {
		return Document{}, ErrUnknownTemplate.F("%q, known templates: %v", name, r.Names())
	}
	return proto.Clone(), nil
}

// Names lists the registered template names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Document) String() string {
	return fmt.Sprintf("%q by %s (%d sections)", d.Title, d.Author, len(d.Sections))
}
