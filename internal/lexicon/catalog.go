package lexicon

import (
	"fmt"
	"sort"

	"namesmith/internal/name"
)

// Entry is one named entity in the catalog.
type Entry struct {
	ID   string
	Kind string
	Name name.Name
}

// Catalog is an immutable snapshot of all built Names. It is safe for
// concurrent readers; a new snapshot replaces it wholesale on reload.
type Catalog struct {
	byID  map[string]Entry
	order []string
}

// BuildCatalog constructs Names for every definition. Warnings raised
// during construction (redundant plurals) go to the reporter. The build is
// atomic: any invalid definition fails the whole catalog.
func BuildCatalog(defs []Definition, reporter name.Reporter) (*Catalog, error) {
	c := &Catalog{
		byID: make(map[string]Entry, len(defs)),
	}

	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("definition with empty id")
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate definition id %q", def.ID)
		}

		built, err := name.FromRecord(def.Name, reporter)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", def.ID, err)
		}

		c.byID[def.ID] = Entry{ID: def.ID, Kind: def.Kind, Name: built}
		c.order = append(c.order, def.ID)
	}

	sort.Strings(c.order)
	return c, nil
}

// Lookup returns the entry for an id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	entry, ok := c.byID[id]
	return entry, ok
}

// Entries returns all entries sorted by id, optionally filtered by kind.
// An empty kind matches everything.
func (c *Catalog) Entries(kind string) []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entry := c.byID[id]
		if kind != "" && entry.Kind != kind {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.byID)
}
