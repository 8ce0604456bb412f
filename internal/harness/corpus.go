package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadCorpus reads and parses a corpus YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields (typos), or is missing required fields.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var corpus Corpus
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&corpus); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCorpus(&corpus); err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}
	return &corpus, nil
}

// LoadCorpora loads every .yaml and .yml file in dir whose base name
// matches the glob filter, sorted by file name. An empty filter matches all.
func LoadCorpora(dir, filter string) ([]*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext != ".yaml" && ext != ".yml" {
			continue
		}
		if filter != "" {
			ok, err := filepath.Match(filter, name)
			if err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	corpora := make([]*Corpus, 0, len(names))
	for _, name := range names {
		corpus, err := LoadCorpus(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		corpora = append(corpora, corpus)
	}
	return corpora, nil
}

// validateCorpus checks that required fields are present and valid.
func validateCorpus(c *Corpus) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, tc := range c.Cases {
		if tc.SRO == "" {
			return fmt.Errorf("cases[%d]: sro is required", i)
		}
		if tc.Syllabics == "" {
			return fmt.Errorf("cases[%d]: syllabics is required", i)
		}
		switch tc.Direction {
		case "", DirectionBoth, DirectionSROToSyllabics, DirectionSyllabicsToSRO:
		default:
			return fmt.Errorf("cases[%d]: unknown direction %q", i, tc.Direction)
		}
	}
	return nil
}
