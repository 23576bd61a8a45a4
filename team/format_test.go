package team

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestTeam_Format(t *testing.T) {
	team := mustParse(t, dittoExport+"\n\nRotom-Wash (F) @ Leftovers\nLevel: 50\nIVs: 0 Atk\n- Hydro Pump", Strict)

	var buf bytes.Buffer
	if err := team.Format(context.Background(), &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := "Ditto @ Choice Scarf\n" +
		"Ability: Imposter\n" +
		"EVs: 252 Atk / 252 Spe\n" +
		"Adamant Nature\n" +
		"- Transform\n" +
		"\n" +
		"Rotom-Wash (F) @ Leftovers\n" +
		"Level: 50\n" +
		"IVs: 0 Atk\n" +
		"- Hydro Pump\n"

	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	again := mustParse(t, buf.String(), Strict)
	if !reflect.DeepEqual(team, again) {
		t.Error("formatted output does not parse back to the same team")
	}
}

func TestTeam_FormatJSON(t *testing.T) {
	team := mustParse(t, dittoExport, Strict)

	var buf bytes.Buffer
	if err := team.FormatJSON(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}

	e := got[0]
	if e["species"] != "ditto" || e["item"] != "cobblemon:choice_scarf" ||
		e["nature"] != "adamant" || e["ability"] != "imposter" {
		t.Errorf("unexpected entry: %v", e)
	}

	evs, _ := e["evs"].(map[string]any)
	if evs["Atk"] != float64(252) || evs["Spe"] != float64(252) {
		t.Errorf("evs = %v", e["evs"])
	}

	if _, ok := e["gender"]; ok {
		t.Error("unset gender should be omitted")
	}
}

func TestTeam_FormatYAML(t *testing.T) {
	team := mustParse(t, dittoExport, Strict)

	var buf bytes.Buffer
	if err := team.FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	for _, want := range []string{"species: ditto", "cobblemon:choice_scarf", "- transform"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in:\n%s", want, buf.String())
		}
	}
}
