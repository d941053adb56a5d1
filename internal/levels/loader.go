package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Layout          string `yaml:"layout"`
	EnemyEveryTicks int    `yaml:"enemy_every_ticks,omitempty"`
	EggHatchTicks   int    `yaml:"egg_hatch_ticks,omitempty"`
}

// Loader loads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads every level file under the root,
// sorted by ID for deterministic campaign order. Unparseable files are
// skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// ParseYAML parses one YAML level document and verifies that the layout is
// structurally sound.
func ParseYAML(data []byte) (Level, error) {
	var y yamlLevel
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Level{}, fmt.Errorf("invalid yaml: %w", err)
	}
	if y.ID == "" {
		return Level{}, fmt.Errorf("level is missing an id")
	}

	level := Level{
		ID:              y.ID,
		Name:            y.Name,
		Layout:          splitLayout(y.Layout),
		EnemyEveryTicks: y.EnemyEveryTicks,
		EggHatchTicks:   y.EggHatchTicks,
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	if _, err := level.Setup(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// splitLayout turns the YAML block scalar into rows, dropping leading and
// trailing blank lines but keeping interior spacing intact.
func splitLayout(block string) []string {
	rows := strings.Split(block, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
