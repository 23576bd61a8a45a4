package team

// Gender of an entry. The zero value means no marker was given.
type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return ""
	}
}

// Ability is an entry's resolved ability. A forced ability is permanent and
// is not swapped when the creature changes form.
type Ability struct {
	Ref
	Forced bool
}

// Entry is one creature of a team.
type Entry struct {
	Species  Ref
	Form     string
	Aspects  []string
	Gender   Gender
	HeldItem *Ref
	Level    int
	Nature   *Ref
	Ability  *Ability
	Moves    []Ref
	IVs      StatSet
	EVs      StatSet
}

// DefaultLevel is the level of a new entry.
const DefaultLevel = 100

// NewEntry returns an entry of the given species with defaults applied:
// level 100, no moves, and every IV 31.
func NewEntry(species Ref) *Entry {
	e := &Entry{
		Species: species,
		Level:   DefaultLevel,
		IVs:     make(StatSet, len(Stats)),
		EVs:     make(StatSet),
	}

	for _, s := range Stats {
		e.IVs[s] = DefaultIV
	}

	return e
}

// Team is an ordered list of entries in source order.
type Team []*Entry
