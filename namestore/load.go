package namestore

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed data/*.toml
var dataFS embed.FS

type categoryFile struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Groups   []string `toml:"groups"`
	Male     []string `toml:"male"`
	Female   []string `toml:"female"`
	Unisex   []string `toml:"unisex"`
	Surnames []string `toml:"surnames"`
}

// Load builds the store from the embedded category files.
func Load() (*Store, error) {
	return LoadDirs()
}

// LoadDirs builds the store from the embedded category files, then merges
// every *.toml file found in the given directories. A user file with an
// existing category ID appends to that category; a new ID adds a category.
// Missing directories are skipped.
func LoadDirs(dirs ...string) (*Store, error) {
	s := New()

	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded data: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	for _, name := range names {
		raw, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded data %s: %w", name, err)
		}
		if err := mergeFile(s, raw, name); err != nil {
			return nil, err
		}
	}

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			return nil, fmt.Errorf("scan category dir %s: %w", dir, err)
		}
		slices.Sort(matches)
		for _, path := range matches {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read category file: %w", err)
			}
			if err := mergeFile(s, raw, path); err != nil {
				return nil, err
			}
			slog.Debug("merged user category file", "path", path)
		}
	}

	return s, nil
}

func mergeFile(s *Store, raw []byte, source string) error {
	var cf categoryFile
	if err := toml.Unmarshal(raw, &cf); err != nil {
		return fmt.Errorf("decode category file %s: %w", source, err)
	}
	if cf.ID == "" {
		return fmt.Errorf("category file %s has no id", source)
	}
	if cf.ID == "all" || slices.Contains(cf.Groups, "all") {
		return fmt.Errorf("category file %s uses reserved identifier %q", source, "all")
	}
	s.merge(&Category{
		ID:       cf.ID,
		Title:    cf.Title,
		Groups:   cf.Groups,
		Male:     cf.Male,
		Female:   cf.Female,
		Unisex:   cf.Unisex,
		Surnames: cf.Surnames,
	})
	return nil
}
