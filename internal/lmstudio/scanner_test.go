package lmstudio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestScan_FindsModels(t *testing.T) {
	base := t.TempDir()
	writeConfig(t, filepath.Join(base, "acme", "modelA"), `{"max_position_embeddings": 32768}`)
	writeConfig(t, filepath.Join(base, "acme", "modelB"), `{"n_ctx": 2048}`)

	models := Scan([]string{base})
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	byID := map[string]int{}
	for _, m := range models {
		byID[m.ID]++
		if m.Error != "" {
			t.Fatalf("%s: unexpected error %q", m.ID, m.Error)
		}
		if m.Config == nil {
			t.Fatalf("%s: missing config", m.ID)
		}
		if m.Path != filepath.Join(base, m.ID) {
			t.Fatalf("%s: unexpected path %q", m.ID, m.Path)
		}
	}
	if byID["acme/modelA"] != 1 || byID["acme/modelB"] != 1 {
		t.Fatalf("unexpected ids: %v", byID)
	}
}

func TestScan_MalformedConfigIsolated(t *testing.T) {
	base := t.TempDir()
	writeConfig(t, filepath.Join(base, "acme", "broken"), `{not json`)
	writeConfig(t, filepath.Join(base, "acme", "good"), `{"max_position_embeddings": 4096}`)

	models := Scan([]string{base})
	if len(models) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(models))
	}
	for _, m := range models {
		switch m.ID {
		case "acme/broken":
			if m.Error == "" || m.Config != nil {
				t.Fatalf("broken model should carry an error: %+v", m)
			}
		case "acme/good":
			if m.Error != "" || m.Config == nil {
				t.Fatalf("good model should carry a config: %+v", m)
			}
		default:
			t.Fatalf("unexpected id %q", m.ID)
		}
	}
}

func TestScan_SkipsNonModelEntries(t *testing.T) {
	base := t.TempDir()
	// file at publisher level
	if err := os.WriteFile(filepath.Join(base, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// file at model level
	if err := os.MkdirAll(filepath.Join(base, "acme"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "acme", "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// model dir without config.json
	if err := os.MkdirAll(filepath.Join(base, "acme", "empty-model"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if models := Scan([]string{base}); len(models) != 0 {
		t.Fatalf("expected no entries, got %+v", models)
	}
}

func TestScan_MissingBaseDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if models := Scan([]string{missing}); len(models) != 0 {
		t.Fatalf("expected no entries, got %+v", models)
	}
}

func TestScan_MultipleBaseDirsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeConfig(t, filepath.Join(first, "pub", "m1"), `{}`)
	writeConfig(t, filepath.Join(second, "pub", "m2"), `{}`)

	models := Scan([]string{first, second})
	if len(models) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(models))
	}
	if models[0].ID != "pub/m1" || models[1].ID != "pub/m2" {
		t.Fatalf("base dir order not preserved: %+v", models)
	}
}

func TestDefaultDirs_HomeExpanded(t *testing.T) {
	dirs := DefaultDirs()
	if len(dirs) != 3 {
		t.Fatalf("expected 3 candidate dirs, got %v", dirs)
	}
	for _, d := range dirs {
		if len(d) == 0 || d[0] == '~' {
			t.Fatalf("dir not expanded: %q", d)
		}
	}
}
