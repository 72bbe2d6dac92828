package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a layout file from disk.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Layouts) == 0 {
		return f, errors.New("layout file has no layouts")
	}
	for i, l := range f.Layouts {
		if len(l.Monitors) == 0 {
			return f, fmt.Errorf("layout %d (%q) has no monitors", i, l.Name)
		}
	}
	return f, nil
}

// Save writes layouts to disk, creating parent directories as needed.
func Save(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
