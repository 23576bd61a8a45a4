package team

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// entryEnv is the environment a [Predicate] is evaluated against.
// Catalog references are exposed by id; stat maps always hold all six codes.
type entryEnv struct {
	Species string
	Form    string
	Aspects []string
	Gender  string
	Item    string
	Level   int
	Nature  string
	Ability string
	Moves   []string
	IVs     map[string]int
	EVs     map[string]int
}

func newEntryEnv(e *Entry) entryEnv {
	env := entryEnv{
		Species: e.Species.ID,
		Form:    e.Form,
		Aspects: e.Aspects,
		Gender:  e.Gender.String(),
		Level:   e.Level,
		Moves:   refIDs(e.Moves),
		IVs:     make(map[string]int, len(Stats)),
		EVs:     make(map[string]int, len(Stats)),
	}

	if e.HeldItem != nil {
		env.Item = e.HeldItem.ID
	}

	if e.Nature != nil {
		env.Nature = e.Nature.ID
	}

	if e.Ability != nil {
		env.Ability = e.Ability.ID
	}

	for _, s := range Stats {
		env.IVs[s.String()] = e.IVs[s]
		env.EVs[s.String()] = e.EVs[s]
	}

	return env
}

// Predicate is a compiled boolean expression over an entry, such as
//
//	Level >= 50 && "transform" in Moves && EVs.Spe == 252
type Predicate struct {
	source  string
	program *vm.Program
}

// Compile compiles a predicate expression.
func Compile(source string) (*Predicate, error) {
	program, err := expr.Compile(source, expr.Env(entryEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrPredicate.Wrap(err).With(slog.String("expr", source))
	}

	return &Predicate{source: source, program: program}, nil
}

// String returns the source expression.
func (p *Predicate) String() string { return p.source }

// Match reports whether e satisfies the predicate.
func (p *Predicate) Match(e *Entry) (bool, error) {
	out, err := expr.Run(p.program, newEntryEnv(e))
	if err != nil {
		return false, ErrPredicate.Wrap(err).With(slog.String("expr", p.source))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the entries matching p, in order.
// A nil predicate selects every entry.
func (t Team) Select(p *Predicate) (Team, error) {
	if p == nil {
		return t, nil
	}

	out := make(Team, 0, len(t))

	for _, e := range t {
		ok, err := p.Match(e)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, e)
		}
	}

	return out, nil
}
