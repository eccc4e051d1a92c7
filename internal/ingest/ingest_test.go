package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/blackwell-systems/trackdown/internal/track"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiscoverSingleFile(t *testing.T) {
	dir := t.TempDir()
	// Extension filtering applies to directory walks, not explicit files.
	path := writeFile(t, dir, "log.rst", "")
	got, err := Discover(path, []string{".md"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{path}) {
		t.Errorf("Discover() = %v, want [%s]", got, path)
	}
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "")
	b := writeFile(t, dir, "nested/deep/b.txt", "")
	upper := writeFile(t, dir, "upper.MD", "")
	writeFile(t, dir, "skip.json", "")
	writeFile(t, dir, ".hidden/c.md", "")

	got, err := Discover(dir, []string{".md", "txt"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	want := []string{a, b, upper}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent"), nil); err == nil {
		t.Error("Discover(absent) error = nil, want error")
	}
}

func TestParseFilesMergesAndReportsReadFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "# TT 2020-01-01\n- #dev 1h\n")
	b := writeFile(t, dir, "b.md", "# TT 2020-01-01\n- #dev 2h\n# TT 2020-01-02\n- #ops 30m\n")
	missing := filepath.Join(dir, "gone.md")

	res := ParseFiles([]string{a, b, missing}, nil)
	if res.TotalMinutes() != 210 {
		t.Errorf("TotalMinutes = %d, want 210", res.TotalMinutes())
	}
	if res.Days() != 2 {
		t.Errorf("Days() = %d, want 2", res.Days())
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(res.Errors), res.Errors)
	}
	le := res.Errors[0]
	if le.Err.Kind != track.ErrorReading || le.Source != missing || le.Line != 0 {
		t.Errorf("error = %+v, want ErrorReading for %s", le, missing)
	}
}

func TestParsePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jan.md", "# TT 2020-01-05\n- #prj-web 2h\n")
	writeFile(t, dir, "feb.md", "# TT 2020-02-03\n- #prj-web 1h\n- #meetings 1h\n")
	writeFile(t, dir, "notes.json", "not a log")

	res, files, err := ParsePath(dir, []string{".md"}, nil)
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if files != 2 {
		t.Errorf("files = %d, want 2", files)
	}
	if res.TotalMinutes() != 240 {
		t.Errorf("TotalMinutes = %d, want 240", res.TotalMinutes())
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestParseFilesWithFilter(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "# TT 2020-01-01\n- #prj-web 1h\n- #prj-api 1h\n")
	res := ParseFiles([]string{a}, track.ProjectFilter{Name: "api"})
	if res.TotalMinutes() != 60 {
		t.Errorf("TotalMinutes = %d, want 60", res.TotalMinutes())
	}
}
