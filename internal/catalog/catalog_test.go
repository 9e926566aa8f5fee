package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"practice-recommender/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	want := []string{"breathwork", "mbsr", "vipassana", "zen", "metta", "mantra", "yoga-nidra", "self-inquiry", "dzogchen"}
	if got := strings.Join(c.IDs(), ","); got != strings.Join(want, ",") {
		t.Fatalf("unexpected catalog order %s", got)
	}

	for _, p := range c.Practices() {
		if p.Name == "" || p.Description == "" {
			t.Fatalf("%s: missing name or description", p.ID)
		}
		if len(p.Resources.Books) == 0 {
			t.Fatalf("%s: expected at least one book", p.ID)
		}
		if p.SearchText() == "" {
			t.Fatalf("%s: expected benefits or goals to search", p.ID)
		}
	}

	zen, ok := c.Get("zen")
	if !ok {
		t.Fatalf("expected zen practice")
	}
	if len(zen.Resources.Books) != 1 || zen.Resources.Books[0] != "Zen Mind, Beginner's Mind" {
		t.Fatalf("unexpected zen books %v", zen.Resources.Books)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
practices:
  - id: b
    name: Body Scan
    tags:
      approach: [body]
      structure: highly-structured
      difficulty_level: beginner-friendly
      time_to_results: quick
      cultural_context: secular
    benefits:
      physical: [body awareness]
  - id: a
    name: Metta
    tags:
      approach: [heart]
      structure: moderately-structured
      difficulty_level: beginner-friendly
      time_to_results: quick
      cultural_context: mixed
      retreat_friendly: true
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := strings.Join(c.IDs(), ","); got != "b,a" {
		t.Fatalf("file order must be kept, got %s", got)
	}
	a, _ := c.Get("a")
	if !a.Tags.RetreatFriendly || a.Tags.CulturalContext != domain.ContextMixed {
		t.Fatalf("unexpected tags %+v", a.Tags)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("practices: [")); err == nil {
		t.Fatalf("expected yaml error")
	}

	invalid := []byte(`
practices:
  - id: x
    tags:
      approach: [levitation]
      structure: highly-structured
      difficulty_level: beginner-friendly
      time_to_results: quick
      cultural_context: secular
`)
	if _, err := Parse(invalid); !errors.Is(err, domain.ErrInvalidPractice) {
		t.Fatalf("expected ErrInvalidPractice, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "practices.yaml")
	if err := os.WriteFile(path, defaultCatalogYAML, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if c.Len() != 9 {
		t.Fatalf("expected 9 practices, got %d", c.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
