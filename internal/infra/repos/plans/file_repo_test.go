package plans

import (
	"os"
	"path/filepath"
	"testing"
)

const customersYAML = `name: customers
seed: 42
count: 4
columns:
  - name: full_name
    kind: name
    params:
      sex: female
      parts: 2
  - name: signup
    kind: date
    params:
      start: 2020-01-01
      end: 2020-12-31
`

func TestGetByPath_RejectsPathTraversal(t *testing.T) {
	base := t.TempDir()
	repo := NewFileRepository(base)

	inside := filepath.Join(base, "ok.yaml")
	if err := os.WriteFile(inside, []byte(customersYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByPath("ok.yaml"); err != nil {
		t.Fatalf("expected plan load inside base dir, got %v", err)
	}

	outsideFile := filepath.Join(t.TempDir(), "outside.yaml")
	if err := os.WriteFile(outsideFile, []byte("name: bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByPath(outsideFile); err == nil {
		t.Fatal("expected traversal rejection for outside absolute path")
	}
	if _, err := repo.GetByPath("../outside.yaml"); err == nil {
		t.Fatal("expected traversal rejection for relative path escape")
	}
}

func TestList_LoadsYAMLAndJSON(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "a.yaml"), []byte(customersYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonPlan := `{"id":"ids","name":"ids","columns":[{"name":"id","kind":"uuid"}]}`
	if err := os.WriteFile(filepath.Join(base, "b.json"), []byte(jsonPlan), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewFileRepository(base)
	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(list))
	}
	if list[0].ID != "a" || list[1].ID != "ids" {
		t.Fatalf("unexpected ids: %q %q", list[0].ID, list[1].ID)
	}

	p, err := repo.Get("customers")
	if err != nil {
		t.Fatal(err)
	}
	if p.Seed == nil || *p.Seed != 42 || p.Count == nil || *p.Count != 4 {
		t.Fatalf("seed/count not decoded: %+v", p)
	}
	// unquoted dates stay strings when decoded into interface{}
	if v, _ := p.Columns[1].Param("start"); v != "2020-01-01" {
		t.Fatalf("expected date string, got %#v", v)
	}

	if _, err := repo.Get("missing"); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	list, err := NewFileRepository(filepath.Join(t.TempDir(), "nope")).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	if _, err := Decode([]byte("name: x"), "toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
