package catalog

import (
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/teamport/team"
)

// Catalog is an in-memory set of reference entities. It implements
// [team.Catalog] and [team.Suggester].
//
// A Catalog is not modified after it is built and is safe for concurrent
// use.
type Catalog struct {
	names map[team.Kind]map[string]string // kind -> id -> display name
	forms map[string][]team.Form          // species id -> forms

	idsOnce sync.Once
	ids     map[team.Kind][]string // sorted ids, built on first Suggest
}

// kinds lists the kinds a Catalog stores. Stats are a fixed enumeration
// owned by package team.
var kinds = [...]team.Kind{
	team.KindSpecies,
	team.KindAbility,
	team.KindMove,
	team.KindNature,
	team.KindItem,
}

func newCatalog() *Catalog {
	c := &Catalog{
		names: make(map[team.Kind]map[string]string, len(kinds)),
		forms: make(map[string][]team.Form),
	}

	for _, k := range kinds {
		c.names[k] = make(map[string]string)
	}

	return c
}

// Resolve implements [team.Catalog].
func (c *Catalog) Resolve(kind team.Kind, id string) (team.Ref, bool) {
	if kind == team.KindStat {
		s, ok := team.ParseStat(id)
		if !ok {
			return team.Ref{}, false
		}

		return team.Ref{Kind: kind, ID: id, Name: s.String()}, true
	}

	name, ok := c.names[kind][id]
	if !ok {
		return team.Ref{}, false
	}

	return team.Ref{Kind: kind, ID: id, Name: name}, true
}

// Forms implements [team.Catalog].
func (c *Catalog) Forms(species team.Ref) []team.Form {
	return c.forms[species.ID]
}

// Len returns the number of entities of the given kind.
func (c *Catalog) Len(kind team.Kind) int {
	if kind == team.KindStat {
		return len(team.Stats)
	}

	return len(c.names[kind])
}

// IDs returns the sorted ids of the given kind.
func (c *Catalog) IDs(kind team.Kind) []string {
	c.idsOnce.Do(func() {
		c.ids = make(map[team.Kind][]string, len(kinds)+1)

		for _, k := range kinds {
			c.ids[k] = slices.Sorted(maps.Keys(c.names[k]))
		}

		stats := make([]string, len(team.Stats))
		for i, s := range team.Stats {
			stats[i] = s.String()
		}

		c.ids[team.KindStat] = stats
	})

	return c.ids[kind]
}

// Merge returns a catalog holding the entities of every catalog in cats.
// Later catalogs override earlier entities with the same id, and a species
// defined later replaces its form list as a whole.
func Merge(cats ...*Catalog) *Catalog {
	out := newCatalog()

	for _, c := range cats {
		if c == nil {
			continue
		}

		for _, k := range kinds {
			maps.Copy(out.names[k], c.names[k])
		}

		for id := range c.names[team.KindSpecies] {
			if forms, ok := c.forms[id]; ok {
				out.forms[id] = forms
			} else {
				delete(out.forms, id)
			}
		}
	}

	return out
}
