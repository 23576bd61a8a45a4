package team

import (
	"strconv"
	"strings"
)

// Field line shapes, in precedence order.
const (
	levelPrefix   = "Level: "
	natureSuffix  = " Nature"
	abilityPrefix = "Ability: "
	movePrefix    = "- "
	evsPrefix     = "EVs: "
	ivsPrefix     = "IVs: "
)

// field applies a field line to e. Lines of no known shape are ignored.
func (b *build) field(e *Entry, line string) {
	switch {
	case strings.HasPrefix(line, levelPrefix):
		v := strings.TrimSpace(strings.TrimPrefix(line, levelPrefix))

		n, err := strconv.Atoi(v)
		if err != nil {
			b.fail(ErrMalformedLine.About(v).Wrap(err))

			return
		}

		e.Level = n

	case strings.HasSuffix(line, natureSuffix):
		id := strings.ToLower(strings.Fields(line)[0])
		if ref, ok := b.resolve(KindNature, id); ok {
			e.Nature = &ref
		}

	case strings.HasPrefix(line, abilityPrefix):
		id := squash(strings.TrimPrefix(line, abilityPrefix), " ")
		if ref, ok := b.resolve(KindAbility, id); ok {
			e.Ability = &Ability{Ref: ref, Forced: true}
		}

	case strings.HasPrefix(line, movePrefix):
		id := squash(strings.TrimPrefix(line, movePrefix), " ", "-")
		if ref, ok := b.resolve(KindMove, id); ok {
			e.Moves = append(e.Moves, ref)
		}

	case strings.HasPrefix(line, evsPrefix):
		b.stats(e.EVs, strings.TrimPrefix(line, evsPrefix))

	case strings.HasPrefix(line, ivsPrefix):
		b.stats(e.IVs, strings.TrimPrefix(line, ivsPrefix))
	}
}

func (b *build) stats(set StatSet, text string) {
	vals, err := parseStats(text)
	if err != nil {
		b.fail(err)

		return
	}

	set.Set(vals...)
}

// squash lowercases s and removes every occurrence of each cut.
func squash(s string, cut ...string) string {
	s = strings.ToLower(s)
	for _, c := range cut {
		s = strings.ReplaceAll(s, c, "")
	}

	return s
}
