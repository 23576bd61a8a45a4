package catalog

import (
	"cmp"
	"slices"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/teamport/team"
)

// candidate is a known id ranked against an unresolved one.
type candidate struct {
	id    string
	score int // fuzzy score, higher is better
	dist  int // edit distance, lower is better
}

// Suggest implements [team.Suggester]. It returns up to n known ids of the
// given kind that resemble id, best first.
//
// Ids that contain the characters of id in order are ranked by fuzzy score
// and then by edit distance. When there are none, ids within a small edit
// distance of id are returned instead.
func (c *Catalog) Suggest(kind team.Kind, id string, n int) []string {
	if n <= 0 || id == "" {
		return nil
	}

	ids := c.IDs(kind)
	if len(ids) == 0 {
		return nil
	}

	var ranked []candidate

	if matches := fuzzy.Find(id, ids); len(matches) > 0 {
		ranked = make([]candidate, len(matches))
		for i, m := range matches {
			ranked[i] = candidate{
				id:    m.Str,
				score: m.Score,
				dist:  levenshtein.ComputeDistance(id, m.Str),
			}
		}
	} else {
		limit := max(2, len(id)/3)

		for _, known := range ids {
			if d := levenshtein.ComputeDistance(id, known); d <= limit {
				ranked = append(ranked, candidate{id: known, dist: d})
			}
		}
	}

	slices.SortStableFunc(ranked, func(a, b candidate) int {
		return cmp.Or(
			cmp.Compare(b.score, a.score),
			cmp.Compare(a.dist, b.dist),
			cmp.Compare(a.id, b.id),
		)
	})

	out := make([]string, 0, min(n, len(ranked)))
	for _, r := range ranked[:min(n, len(ranked))] {
		out = append(out, r.id)
	}

	return out
}
