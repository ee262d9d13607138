// Package contextmap demonstrates the strategic design tool of the same name:
// the bounded contexts of a system and their integration patterns as data.
//
// A context map is usually a whiteboard drawing. Keeping it as a validated
// in-code model instead means the map can be rendered, diffed, and kept
// honest by tests, the documentation equivalent of an executable example.
package contextmap

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Context is one bounded context on the map.
type Context struct {
	Name    string
	Purpose string
}

// Pattern is the integration pattern of a relation between two contexts.
type Pattern string

const (
	Partnership         Pattern = "partnership"
	SharedKernel        Pattern = "shared kernel"
	CustomerSupplier    Pattern = "customer/supplier"
	Conformist          Pattern = "conformist"
	AnticorruptionLayer Pattern = "anticorruption layer"
	OpenHostService     Pattern = "open host service"
	PublishedLanguage   Pattern = "published language"
	SeparateWays        Pattern = "separate ways"
)

func (p Pattern) Valid() bool {
	switch p {
	case Partnership, SharedKernel, CustomerSupplier, Conformist,
		AnticorruptionLayer, OpenHostService, PublishedLanguage, SeparateWays:
		return true
	default:
		return false
	}
}

// Relation connects an upstream context to a downstream one.
// Upstream is the side whose model flows toward the other.
type Relation struct {
	Upstream   string
	Downstream string
	Pattern    Pattern
}

const (
	ErrUnknownContext    errorkit.Error = "relation names a context missing from the map"
	ErrSelfRelation      errorkit.Error = "a context cannot relate to itself"
	ErrDuplicateRelation errorkit.Error = "relation is already on the map"
	ErrDuplicateContext  errorkit.Error = "context is already on the map"
	ErrInvalidPattern    errorkit.Error = "unknown integration pattern"
)

// Map is the context map under construction.
type Map struct {
	contexts  []Context
	relations []Relation
}

// AddContext puts a bounded context on the map.
func (m *Map) AddContext(c Context) error {
	if c.Name == "" {
		return ErrUnknownContext.F("context name is required")
	}
	if _, ok := m.lookup(c.Name); ok {
		return ErrDuplicateContext.F("%q", c.Name)
	}
	m.contexts = append(m.contexts, c)
	return nil
}

// Relate draws a relation between two contexts already on the map.
func (m *Map) Relate(r Relation) error {
	if !r.Pattern.Valid() {
		return ErrInvalidPattern.F("%q", r.Pattern)
	}
	if r.Upstream == r.Downstream {
		return ErrSelfRelation.F("%q", r.Upstream)
	}
	for _, name := range []string{r.Upstream, r.Downstream} {
		if _, ok := m.lookup(name); !ok {
			return ErrUnknownContext.F("%q", name)
		}
	}
	for _, existing := range m.relations {
		if existing.Upstream == r.Upstream && existing.Downstream == r.Downstream {
			return ErrDuplicateRelation.F("%s -> %s", r.Upstream, r.Downstream)
		}
	}
	m.relations = append(m.relations, r)
	return nil
}

// Contexts returns the contexts sorted by name.
func (m *Map) Contexts() []Context {
	contexts := append([]Context(nil), m.contexts...)
	sort.Slice(contexts, func(i, j int) bool { return contexts[i].Name < contexts[j].Name })
	return contexts
}

// Relations returns the relations sorted by upstream then downstream name.
func (m *Map) Relations() []Relation {
	relations := append([]Relation(nil), m.relations...)
	sort.Slice(relations, func(i, j int) bool {
		if relations[i].Upstream != relations[j].Upstream {
			return relations[i].Upstream < relations[j].Upstream
		}
		return relations[i].Downstream < relations[j].Downstream
	})
	return relations
}

// Validate re-checks the whole map, catching maps assembled by hand.
func (m *Map) Validate() error {
	var errs []error
	seen := map[string]struct{}{}
	for _, c := range m.contexts {
		if _, ok := seen[c.Name]; ok {
			errs = append(errs, ErrDuplicateContext.F("%q", c.Name))
		}
		seen[c.Name] = struct{}{}
	}
	pairs := map[[2]string]struct{}{}
	for _, r := range m.relations {
		if !r.Pattern.Valid() {
			errs = append(errs, ErrInvalidPattern.F("%q", r.Pattern))
		}
		if r.Upstream == r.Downstream {
			errs = append(errs, ErrSelfRelation.F("%q", r.Upstream))
		}
		for _, name := range []string{r.Upstream, r.Downstream} {
			if _, ok := seen[name]; !ok {
				errs = append(errs, ErrUnknownContext.F("%q", name))
			}
		}
		pair := [2]string{r.Upstream, r.Downstream}
		if _, ok := pairs[pair]; ok {
			errs = append(errs, ErrDuplicateRelation.F("%s -> %s", r.Upstream, r.Downstream))
		}
		pairs[pair] = struct{}{}
	}
	return errorkit.Merge(errs...)
}

// FprintMap renders the map as two aligned tables,
// the contexts first, the relations below them.
func (m *Map) FprintMap(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTEXT\tPURPOSE")
	for _, c := range m.Contexts() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Purpose)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "UPSTREAM\tDOWNSTREAM\tPATTERN")
	for _, r := range m.Relations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Upstream, r.Downstream, r.Pattern)
	}
	return tw.Flush()
}
