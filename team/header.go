package team

import (
	"slices"
	"strings"
)

// header starts a new entry from a line of the form
// "<Species>[-<Form>] [(M)|(F)] [@ <Item>]".
//
// The entry is appended as soon as the species resolves, before the form
// and item are looked up, so their failures leave it in place.
func (b *build) header(line string) {
	head, item, hasItem := strings.Cut(line, "@")

	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(head), " ", ""))

	gender := GenderUnset

	switch {
	case strings.Contains(name, "(m)"):
		name = strings.ReplaceAll(name, "(m)", "")
		gender = GenderMale
	case strings.Contains(name, "(f)"):
		name = strings.ReplaceAll(name, "(f)", "")
		gender = GenderFemale
	}

	speciesID, rest, _ := strings.Cut(name, "-")
	formID, _, _ := strings.Cut(rest, "-")

	species, ok := b.catalog.Resolve(KindSpecies, speciesID)
	if !ok {
		b.fail(ErrUnresolvedSpecies.For(KindSpecies, speciesID))

		return
	}

	e := NewEntry(species)
	e.Gender = gender

	b.team = append(b.team, e)
	b.cursor = len(b.team) - 1

	if formID != "" {
		if form, ok := findForm(b.catalog.Forms(species), formID); ok {
			e.Form = form.Name
			e.Aspects = slices.Clone(form.Aspects)
		} else {
			b.fail(ErrUnresolvedToken.For(KindForm, formID))
		}
	}

	// "Ditto @" holds nothing.
	if hasItem && strings.TrimSpace(item) != "" {
		id := itemID(b.namespace, item)
		if ref, ok := b.resolve(KindItem, id); ok {
			e.HeldItem = &ref
		}
	}
}

func findForm(forms []Form, id string) (Form, bool) {
	for _, f := range forms {
		if strings.ToLower(strings.ReplaceAll(f.Name, " ", "")) == id {
			return f, true
		}
	}

	return Form{}, false
}

// itemID normalizes a held item name into a namespaced id.
func itemID(ns, name string) string {
	id := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if ns == "" {
		return id
	}

	return ns + ":" + id
}
