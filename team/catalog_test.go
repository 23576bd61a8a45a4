package team

import (
	"maps"
	"slices"
	"strings"
)

// fakeCatalog is an in-memory Catalog keyed by kind and id.
type fakeCatalog struct {
	refs  map[Kind]map[string]string // kind -> id -> name
	forms map[string][]Form          // species id -> forms
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		refs: map[Kind]map[string]string{
			KindSpecies: {
				"ditto":    "Ditto",
				"pikachu":  "Pikachu",
				"rotom":    "Rotom",
				"garchomp": "Garchomp",
			},
			KindItem: {
				"cobblemon:choice_scarf": "Choice Scarf",
				"cobblemon:leftovers":    "Leftovers",
			},
			KindNature: {
				"adamant": "Adamant",
				"jolly":   "Jolly",
				"timid":   "Timid",
			},
			KindAbility: {
				"imposter":  "Imposter",
				"static":    "Static",
				"roughskin": "Rough Skin",
				"levitate":  "Levitate",
			},
			KindMove: {
				"transform":   "Transform",
				"thunderbolt": "Thunderbolt",
				"uturn":       "U-turn",
				"hydropump":   "Hydro Pump",
				"earthquake":  "Earthquake",
			},
		},
		forms: map[string][]Form{
			"rotom": {
				{Name: "Wash", Aspects: []string{"wash"}},
				{Name: "Heat", Aspects: []string{"heat"}},
			},
		},
	}
}

func (c *fakeCatalog) Resolve(kind Kind, id string) (Ref, bool) {
	if kind == KindStat {
		s, ok := ParseStat(id)

		return Ref{Kind: kind, ID: id, Name: s.String()}, ok
	}

	name, ok := c.refs[kind][id]
	if !ok {
		return Ref{}, false
	}

	return Ref{Kind: kind, ID: id, Name: name}, true
}

func (c *fakeCatalog) Forms(species Ref) []Form {
	return c.forms[species.ID]
}

// suggestingCatalog proposes every id of the kind sharing id's first letter,
// in lexical order.
type suggestingCatalog struct{ *fakeCatalog }

func (c suggestingCatalog) Suggest(kind Kind, id string, n int) []string {
	var out []string

	for _, known := range slices.Sorted(maps.Keys(c.refs[kind])) {
		if len(out) < n && id != "" && strings.HasPrefix(known, id[:1]) {
			out = append(out, known)
		}
	}

	return out
}
