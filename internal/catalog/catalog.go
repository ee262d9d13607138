// Package catalog is the runtime index of the corpus. Every study package
// exposes a Demo entry point; the table in entries.go registers them all,
// and the CLI lists and runs them from here by name.
package catalog

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"go.llib.dev/exemplar/pkg/errorkit"
)

const (
	TopicPatterns    Topic = "patterns"
	TopicEnterprise  Topic = "enterprise"
	TopicRefactoring Topic = "refactoring"
	TopicKatas       Topic = "katas"
)

// Topic groups the studies by category.
type Topic string

func (t Topic) String() string { return string(t) }

var topicOrderMapping = map[Topic]int{
	TopicPatterns:    0,
	TopicEnterprise:  1,
	TopicRefactoring: 2,
	TopicKatas:       3,
}

const ErrNotFound errorkit.Error = "study is not part of the catalog"

// RunFunc is the uniform entry point every study exposes:
// the demonstration writes to w and reports its failure, if any.
type RunFunc func(ctx context.Context, w io.Writer) error

// Entry is one study of the catalog.
type Entry struct {
	// Name identifies the study, by convention its package path
	// inside the corpus, e.g. "pattern/factory".
	Name string
	// Topic is the study's category.
	Topic Topic
	// Synopsis is the one line shown in listings.
	Synopsis string
	// Run executes the study's demonstration.
	Run RunFunc
}

func (e Entry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry without a name")
	}
	if _, ok := topicOrderMapping[e.Topic]; !ok {
		return fmt.Errorf("entry %q has unknown topic %q", e.Name, e.Topic)
	}
	if e.Run == nil {
		return fmt.Errorf("entry %q has no run function", e.Name)
	}
	return nil
}

// Catalog is a registry of studies.
// The zero value is ready to use.
type Catalog struct {
	entries map[string]Entry
}

// Register adds a study to the catalog.
// Duplicate names and invalid entries panic.
func (c *Catalog) Register(e Entry) {
	if err := e.validate(); err != nil {
		panic(fmt.Sprintf("catalog: %s", err))
	}
	if _, ok := c.entries[e.Name]; ok {
		panic(fmt.Sprintf("catalog: multiple registrations for %q", e.Name))
	}
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	c.entries[e.Name] = e
}

// Lookup finds a study by its name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	entry, ok := c.entries[name]
	return entry, ok
}

// All lists the studies ordered by topic, then by name.
func (c *Catalog) All() []Entry {
	entries := make([]Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if o := cmp.Compare(topicOrderMapping[a.Topic], topicOrderMapping[b.Topic]); o != 0 {
			return o
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

// Names lists the registered study names in listing order.
func (c *Catalog) Names() []string {
	var names []string
	for _, entry := range c.All() {
		names = append(names, entry.Name)
	}
	return names
}

// Run executes one study by name.
func (c *Catalog) Run(ctx context.Context, w io.Writer, name string) error {
	entry, ok := c.Lookup(name)
	if !ok {
		return ErrNotFound.F("%q, known studies: %s", name, strings.Join(c.Names(), ", "))
	}
	return entry.Run(ctx, w)
}

// RunAll executes every study in listing order, each under its own header.
// Failing studies do not stop the remaining ones; their errors are merged.
func (c *Catalog) RunAll(ctx context.Context, w io.Writer) error {
	var errs []error
	for _, entry := range c.All() {
		fmt.Fprintf(w, "=== %s (%s)\n", entry.Name, entry.Topic)
		if err := entry.Run(ctx, w); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
		}
		fmt.Fprintln(w)
	}
	return errorkit.Merge(errs...)
}

// FprintTable renders the entries as an aligned listing.
func FprintTable(w io.Writer, entries []Entry) (rErr error) {
	tw := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	defer errorkit.Finish(&rErr, tw.Flush)
	if _, err := fmt.Fprintln(tw, "NAME\tTOPIC\tSYNOPSIS"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Topic, e.Synopsis); err != nil {
			return err
		}
	}
	return nil
}

var registry = &Catalog{}

// Register adds a study to the shared catalog used by the CLI.
func Register(e Entry) { registry.Register(e) }

// Lookup finds a study in the shared catalog.
func Lookup(name string) (Entry, bool) { return registry.Lookup(name) }

// All lists the shared catalog ordered by topic, then by name.
func All() []Entry { return registry.All() }

// Names lists the shared catalog's study names.
func Names() []string { return registry.Names() }

// Run executes one study of the shared catalog.
func Run(ctx context.Context, w io.Writer, name string) error {
	return registry.Run(ctx, w, name)
}

// RunAll executes every study of the shared catalog.
func RunAll(ctx context.Context, w io.Writer) error {
	return registry.RunAll(ctx, w)
}
