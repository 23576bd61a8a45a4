package team

import "strconv"

// Kind identifies the catalog an entity is resolved against.
type Kind int

const (
	KindSpecies Kind = iota
	KindAbility
	KindMove
	KindNature
	KindItem
	KindStat
	// KindForm labels form failures. Forms are listed per species with
	// [Catalog.Forms] and are never passed to [Catalog.Resolve].
	KindForm
)

func (k Kind) String() string {
	switch k {
	case KindSpecies:
		return "species"
	case KindAbility:
		return "ability"
	case KindMove:
		return "move"
	case KindNature:
		return "nature"
	case KindItem:
		return "item"
	case KindStat:
		return "stat"
	case KindForm:
		return "form"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	for k := KindSpecies; k <= KindForm; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}
