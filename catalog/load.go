package catalog

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/teamport/team"
)

// entity is a catalog record as it appears in a document.
type entity struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type form struct {
	Name    string   `yaml:"name"`
	Aspects []string `yaml:"aspects,omitempty"`
}

type species struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Forms []form `yaml:"forms,omitempty"`
}

// document is the YAML layout of a catalog file.
type document struct {
	Species   []species `yaml:"species"`
	Abilities []entity  `yaml:"abilities"`
	Moves     []entity  `yaml:"moves"`
	Natures   []entity  `yaml:"natures"`
	Items     []entity  `yaml:"items"`
}

//go:embed default.yaml
var defaultDocument []byte

// Default returns the catalog embedded in the binary.
var Default = sync.OnceValue(func() *Catalog {
	c, err := decode(context.Background(), defaultDocument)
	if err != nil {
		panic("embedded catalog: " + err.Error())
	}

	return c
})

// Load reads a catalog document from r.
func Load(ctx context.Context, r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrRead.Wrap(err)
	}

	return decode(ctx, data)
}

// LoadFile reads the catalog document at path.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrRead.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	c, err := Load(ctx, f)
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			return nil, ce.With(slog.String("path", path))
		}

		return nil, err
	}

	return c, nil
}

// Open merges the embedded catalog with the catalog files in paths.
// Earlier paths take precedence over later ones, as with PATH.
func Open(ctx context.Context, paths ...string) (*Catalog, error) {
	cats := []*Catalog{Default()}

	for _, p := range slices.Backward(paths) {
		c, err := LoadFile(ctx, p)
		if err != nil {
			return nil, err
		}

		cats = append(cats, c)
	}

	return Merge(cats...), nil
}

func decode(ctx context.Context, data []byte) (*Catalog, error) {
	var doc document

	if err := yaml.UnmarshalContext(ctx, data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	c := newCatalog()

	add := func(kind team.Kind, recs []entity) error {
		for i, r := range recs {
			if r.ID == "" {
				return ErrMissing.With(
					slog.String("kind", kind.String()),
					slog.Int("index", i),
					slog.String("name", r.Name))
			}

			name := r.Name
			if name == "" {
				name = r.ID
			}

			c.names[kind][r.ID] = name
		}

		return nil
	}

	recs := make([]entity, len(doc.Species))
	for i, s := range doc.Species {
		recs[i] = entity{ID: s.ID, Name: s.Name}

		if len(s.Forms) > 0 {
			forms := make([]team.Form, len(s.Forms))
			for j, f := range s.Forms {
				forms[j] = team.Form{Name: f.Name, Aspects: f.Aspects}
			}

			c.forms[s.ID] = forms
		}
	}

	for _, group := range []struct {
		kind team.Kind
		recs []entity
	}{
		{team.KindSpecies, recs},
		{team.KindAbility, doc.Abilities},
		{team.KindMove, doc.Moves},
		{team.KindNature, doc.Natures},
		{team.KindItem, doc.Items},
	} {
		if err := add(group.kind, group.recs); err != nil {
			return nil, err
		}
	}

	return c, nil
}
