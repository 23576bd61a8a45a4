package team

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the team in export syntax to the writer.
// Values equal to their defaults (level 100, IV 31) are omitted.
func (t Team) Format(_ context.Context, w io.Writer) error {
	for i, e := range t {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if err := e.format(w); err != nil {
			return err
		}
	}

	return nil
}

func (e *Entry) format(w io.Writer) error {
	var b strings.Builder

	b.WriteString(e.Species.Name)

	if e.Form != "" {
		b.WriteString("-" + e.Form)
	}

	switch e.Gender {
	case GenderMale:
		b.WriteString(" (M)")
	case GenderFemale:
		b.WriteString(" (F)")
	}

	if e.HeldItem != nil {
		b.WriteString(" @ " + e.HeldItem.Name)
	}

	b.WriteByte('\n')

	if e.Ability != nil {
		b.WriteString(abilityPrefix + e.Ability.Name + "\n")
	}

	if e.Level != DefaultLevel {
		b.WriteString(levelPrefix + strconv.Itoa(e.Level) + "\n")
	}

	if evs := statList(e.EVs, nil); evs != "" {
		b.WriteString(evsPrefix + evs + "\n")
	}

	if e.Nature != nil {
		b.WriteString(e.Nature.Name + natureSuffix + "\n")
	}

	if ivs := statList(e.IVs, isDefaultIV); ivs != "" {
		b.WriteString(ivsPrefix + ivs + "\n")
	}

	for _, m := range e.Moves {
		b.WriteString(movePrefix + m.Name + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func isDefaultIV(v int) bool { return v == DefaultIV }

// statList renders set as a stat list in display order, leaving out values
// for which skip returns true.
func statList(set StatSet, skip func(int) bool) string {
	part := make([]string, 0, len(Stats))

	for _, s := range Stats {
		v, ok := set[s]
		if !ok || (skip != nil && skip(v)) {
			continue
		}

		part = append(part, strconv.Itoa(v)+" "+s.String())
	}

	return strings.Join(part, " / ")
}

// FormatJSON writes the team as JSON to the writer.
func (t Team) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(t.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(t.ToMap())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the team as YAML to the writer.
func (t Team) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, t.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// ToMap converts the team to generic values keyed by field name, using
// resolved ids for catalog references.
func (t Team) ToMap() []map[string]any {
	out := make([]map[string]any, len(t))
	for i, e := range t {
		out[i] = e.ToMap()
	}

	return out
}

// ToMap converts the entry to generic values. Unset optional fields are
// left out.
func (e *Entry) ToMap() map[string]any {
	m := map[string]any{
		"species": e.Species.ID,
		"level":   e.Level,
		"ivs":     e.IVs.Codes(),
	}

	if e.Form != "" {
		m["form"] = e.Form
	}

	if len(e.Aspects) > 0 {
		m["aspects"] = e.Aspects
	}

	if e.Gender != GenderUnset {
		m["gender"] = e.Gender.String()
	}

	if e.HeldItem != nil {
		m["item"] = e.HeldItem.ID
	}

	if e.Nature != nil {
		m["nature"] = e.Nature.ID
	}

	if e.Ability != nil {
		m["ability"] = e.Ability.ID
	}

	if len(e.Moves) > 0 {
		m["moves"] = refIDs(e.Moves)
	}

	if len(e.EVs) > 0 {
		m["evs"] = e.EVs.Codes()
	}

	return m
}

func refIDs(refs []Ref) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}

	return ids
}
