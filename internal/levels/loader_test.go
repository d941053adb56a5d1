package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLevel = `id: 10-test
name: Test Arena
enemy_every_ticks: 6
layout: |
  ########
  #@.O.e.#
  #......#
  ########
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if l.ID != "10-test" || l.Name != "Test Arena" {
		t.Errorf("metadata = %q/%q", l.ID, l.Name)
	}
	if l.EnemyEveryTicks != 6 {
		t.Errorf("enemy_every_ticks = %d, want 6", l.EnemyEveryTicks)
	}
	if len(l.Layout) != 4 {
		t.Errorf("layout has %d rows, want 4", len(l.Layout))
	}
}

func TestParseYAMLRejectsMissingID(t *testing.T) {
	if _, err := ParseYAML([]byte("name: nameless\nlayout: |\n  ###\n  #@#\n  ###\n")); err == nil {
		t.Error("expected an error for a level without an id")
	}
}

func TestParseYAMLRejectsBrokenLayout(t *testing.T) {
	broken := `id: bad
layout: |
  ####
  #@.#
  ##
`
	if _, err := ParseYAML([]byte(broken)); err == nil {
		t.Error("expected an error for a ragged layout")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"20-second.yaml": "id: 20-second\nlayout: |\n  #####\n  #@.e#\n  #####\n",
		"10-first.yaml":  sampleLevel,
		"notes.txt":      "not a level",
		"broken.yaml":    "id: broken\nlayout: |\n  ##\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d levels, want 2 (broken and non-yaml skipped)", len(loaded))
	}
	if loaded[0].ID != "10-test" || loaded[1].ID != "20-second" {
		t.Errorf("order = %s, %s; want sorted by id", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].FilePath == "" {
		t.Error("FilePath not recorded")
	}
}

func TestLoaderLoadFileMissing(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).LoadFile("does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
