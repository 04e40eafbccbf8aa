package content

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML form of stored content:
//
//	sections:
//	  home:
//	    plan2Price: "$59"
type SeedFile struct {
	Sections map[string]map[string]string `yaml:"sections"`
}

// LoadSeedFile reads a seed file from disk
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*SeedFile, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &file, nil
}

// Seed writes every section of file. Sections are applied in name order and
// the first rejected section stops the run.
func (s *Service) Seed(ctx context.Context, file *SeedFile, editor string) (int, error) {
	names := make([]string, 0, len(file.Sections))
	for name := range file.Sections {
		names = append(names, name)
	}
	sort.Strings(names)

	written := 0
	for _, name := range names {
		fields := file.Sections[name]
		if len(fields) == 0 {
			continue
		}
		if _, err := s.SetFields(ctx, name, fields, editor); err != nil {
			return written, fmt.Errorf("section %q: %w", name, err)
		}
		written += len(fields)
	}
	return written, nil
}
