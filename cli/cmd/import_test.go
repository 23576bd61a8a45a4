package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/teamport/team"
)

func newImport(source string) *Import {
	return &Import{
		Input:  Input{Source: source, Timeout: time.Second},
		Format: formatNative,
		Indent: 2,
	}
}

// terminal returns the log records announcing a delivered team.
func terminal(logs string) []string {
	var out []string

	for line := range strings.SplitSeq(logs, "\n") {
		if strings.Contains(line, `"msg":"team loaded"`) {
			out = append(out, line)
		}
	}

	return out
}

func TestImportRun(t *testing.T) {
	logs := captureLog(t)
	src := writeFile(t, t.TempDir(), "team.txt", export)

	var out bytes.Buffer

	err := newImport(src).Run(kongContext(t, &out, nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{
		"Ditto @ Choice Scarf",
		"Garchomp (M) @ Leftovers",
		"Level: 50",
		"- Dragon Claw",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	recs := terminal(logs.String())
	if len(recs) != 1 {
		t.Fatalf("got %d terminal messages, want 1:\n%s", len(recs), logs)
	}

	for _, want := range []string{`"entries":2`, `"holder":"stdout"`, `"run":"`} {
		if !strings.Contains(recs[0], want) {
			t.Errorf("terminal message missing %s: %s", want, recs[0])
		}
	}
}

func TestImportFormats(t *testing.T) {
	captureLog(t)
	src := writeFile(t, t.TempDir(), "team.txt", export)

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer

		c := newImport(src)
		c.Format = formatJSON

		if err := c.Run(kongContext(t, &out, nil)); err != nil {
			t.Fatal(err)
		}

		var got []map[string]any
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out.String())
		}

		if len(got) != 2 || got[1]["species"] != "garchomp" {
			t.Errorf("unexpected JSON: %v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer

		c := newImport(src)
		c.Format = formatYAML

		if err := c.Run(kongContext(t, &out, nil)); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(out.String(), "species: ditto") {
			t.Errorf("unexpected YAML:\n%s", out.String())
		}
	})
}

func TestImportWhere(t *testing.T) {
	captureLog(t)
	src := writeFile(t, t.TempDir(), "team.txt", export)

	var out bytes.Buffer

	c := newImport(src)
	c.Where = `Level < 100 && "earthquake" in Moves`

	if err := c.Run(kongContext(t, &out, nil)); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out.String(), "Ditto") || !strings.Contains(out.String(), "Garchomp") {
		t.Errorf("filter not applied:\n%s", out.String())
	}

	c.Where = "Level +"

	err := c.Run(kongContext(t, &out, nil))
	if !errors.Is(err, ErrPredicate) {
		t.Errorf("Run() with bad expression error = %v, want ErrPredicate", err)
	}
}

func TestImportOutputReplaced(t *testing.T) {
	logs := captureLog(t)
	src := writeFile(t, t.TempDir(), "team.txt", export)

	dir := t.TempDir()
	holder := writeFile(t, dir, "party.txt", "stale team\n")

	var out bytes.Buffer

	c := newImport(src)
	c.Output = holder

	if err := c.Run(kongContext(t, &out, nil)); err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Errorf("stdout written with --output set: %q", out.String())
	}

	data, err := os.ReadFile(holder)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(data), "stale") || !strings.Contains(string(data), "Ditto") {
		t.Errorf("holder not replaced:\n%s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}

	if recs := terminal(logs.String()); len(recs) != 1 ||
		!strings.Contains(recs[0], filepath.Base(holder)) {
		t.Errorf("terminal messages = %v", recs)
	}
}

func TestImportFailure(t *testing.T) {
	tests := []struct {
		name    string
		export  string
		lenient bool
		want    error
	}{
		{"unknown species strict", "Missingno\n- Transform\n", false, team.ErrUnresolvedSpecies},
		{"unknown species lenient", "Ditto\n\nMissingno\n", true, team.ErrUnresolvedSpecies},
		{"unknown move strict", "Ditto\n- Notamove\n", false, team.ErrUnresolvedToken},
		{"bad level strict", "Ditto\nLevel: high\n", false, team.ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLog(t)
			src := writeFile(t, t.TempDir(), "team.txt", tt.export)

			dir := t.TempDir()
			holder := writeFile(t, dir, "party.txt", "kept\n")

			var out bytes.Buffer

			c := newImport(src)
			c.Lenient = tt.lenient
			c.Output = holder

			err := c.Run(kongContext(t, &out, nil))
			if !errors.Is(err, tt.want) || !errors.Is(err, ErrImport) {
				t.Fatalf("Run() error = %v, want %v", err, tt.want)
			}

			if recs := terminal(logs.String()); len(recs) != 0 {
				t.Errorf("success message logged on failure: %v", recs)
			}

			data, _ := os.ReadFile(holder)
			if string(data) != "kept\n" {
				t.Errorf("holder modified on failure: %q", data)
			}
		})
	}
}

func TestImportLenient(t *testing.T) {
	logs := captureLog(t)
	src := writeFile(t, t.TempDir(), "team.txt", "Ditto @ Mystery Thing\n- Notamove\n- Transform\n")

	var out bytes.Buffer

	c := newImport(src)
	c.Lenient = true

	if err := c.Run(kongContext(t, &out, nil)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out.String(), "- Transform") || strings.Contains(out.String(), "@") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	recs := terminal(logs.String())
	if len(recs) != 1 || !strings.Contains(recs[0], `"entries":1`) {
		t.Errorf("terminal messages = %v", recs)
	}
}

func TestImportMissingSource(t *testing.T) {
	captureLog(t)

	var out bytes.Buffer

	err := newImport(filepath.Join(t.TempDir(), "nope.txt")).Run(kongContext(t, &out, nil))
	if !errors.Is(err, team.ErrFetch) {
		t.Errorf("Run() error = %v, want ErrFetch", err)
	}
}

func TestImportURL(t *testing.T) {
	captureLog(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(export))
	}))
	defer srv.Close()

	var out bytes.Buffer

	if err := newImport(srv.URL+"/team").Run(kongContext(t, &out, nil)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "Garchomp") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestImportCatalogFlag(t *testing.T) {
	captureLog(t)

	dir := t.TempDir()
	cat := writeFile(t, dir, "extra.yaml", "species:\n  - id: missingno\n    name: MissingNo.\n")
	src := writeFile(t, dir, "team.txt", "Missingno\n- Transform\n")

	var out bytes.Buffer

	c := newImport(src)
	c.Catalog = []string{cat}

	if err := c.Run(kongContext(t, &out, nil)); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "MissingNo.\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestImportUserCatalog(t *testing.T) {
	captureLog(t)

	dir := t.TempDir()
	user := writeFile(t, dir, "catalog.yaml", "species:\n  - id: missingno\n    name: User\n")
	flag := writeFile(t, dir, "extra.yaml", "species:\n  - id: missingno\n    name: Flag\n")
	src := writeFile(t, dir, "team.txt", "Missingno\n- Transform\n")

	vars := kong.Vars{CatalogIdentifier: user}

	var out bytes.Buffer

	if err := newImport(src).Run(kongContext(t, &out, vars)); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "User\n") {
		t.Errorf("user catalog not loaded:\n%s", out.String())
	}

	out.Reset()

	c := newImport(src)
	c.Catalog = []string{flag}

	if err := c.Run(kongContext(t, &out, vars)); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "Flag\n") {
		t.Errorf("flag catalog should win over the user catalog:\n%s", out.String())
	}

	// A user catalog that does not exist is skipped.
	vars[CatalogIdentifier] = filepath.Join(dir, "absent.yaml")

	err := newImport(writeFile(t, dir, "ditto.txt", "Ditto\n")).Run(kongContext(t, &out, vars))
	if err != nil {
		t.Errorf("missing user catalog: %v", err)
	}
}

func TestReplaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	if err := replaceFile(path, []byte("one")); err != nil {
		t.Fatal(err)
	}

	if err := replaceFile(path, []byte("two")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "two" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	err = replaceFile(filepath.Join(t.TempDir(), "missing", "x.txt"), nil)
	if err == nil {
		t.Error("replaceFile() into missing directory succeeded")
	}
}
