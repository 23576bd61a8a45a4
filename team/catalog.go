package team

// Ref is a resolved catalog entity.
type Ref struct {
	Kind Kind
	ID   string // normalized lookup key, e.g. "cobblemon:choice_scarf"
	Name string // display name, e.g. "Choice Scarf"
}

// Form is an alternate form of a species.
type Form struct {
	Name    string
	Aspects []string
}

// Catalog resolves normalized tokens to reference entities.
//
// Resolve reports a miss with ok == false. Implementations must not
// normalize id; the parser has already done so. A Catalog is read-only and
// must be safe for concurrent use.
type Catalog interface {
	Resolve(kind Kind, id string) (ref Ref, ok bool)
	Forms(species Ref) []Form
}

// Suggester is implemented by catalogs that can propose known ids close to
// an unresolved one.
type Suggester interface {
	Suggest(kind Kind, id string, n int) []string
}
