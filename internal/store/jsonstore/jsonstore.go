// Package jsonstore saves petition lists as feed-shaped JSON files and loads
// them back, so a saved file can stand in for the network feed.
package jsonstore

import (
	"fmt"
	"os"

	"github.com/idilsaglam/petitions/internal/feed"
	"github.com/idilsaglam/petitions/internal/model"
)

// Load reads a file written by Save (or a raw feed download).
func Load(path string) ([]model.Petition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	petitions, err := feed.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return petitions, nil
}

// Save writes petitions to path, replacing any existing file.
func Save(path string, petitions []model.Petition) error {
	b, err := feed.Encode(petitions)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
