// Package seed provides the initial project dataset the store starts from.
//
// The built-in dataset is embedded at compile time. An alternative YAML file
// with the same shape may replace it at startup; it is read once and never
// written back.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var builtin []byte

// File is the on-disk shape of a seed dataset.
type File struct {
	Projects []Project `yaml:"projects"`
}

// Project is the YAML representation of a seeded record.
type Project struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Objectives  string `yaml:"objectives"`
	Owner       string `yaml:"owner"`
	Area        string `yaml:"area"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Status      string `yaml:"status"`
	Funding     string `yaml:"funding"`
	Results     string `yaml:"results"`
}

// Default returns the built-in dataset.
func Default() ([]*domain.Project, error) {
	return Parse(builtin)
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) ([]*domain.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a dataset from r.
func Read(r io.Reader) ([]*domain.Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset.
//
// Progress is not read from the file; it is derived from each record's status
// like any other write. Ids must be positive and unique.
func Parse(data []byte) ([]*domain.Project, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	seen := make(map[int]bool, len(file.Projects))
	projects := make([]*domain.Project, 0, len(file.Projects))
	for i, sp := range file.Projects {
		if sp.ID <= 0 {
			return nil, fmt.Errorf("seed project %d: id must be positive, got %d", i, sp.ID)
		}
		if seen[sp.ID] {
			return nil, fmt.Errorf("seed project %d: duplicate id %d", i, sp.ID)
		}
		seen[sp.ID] = true
		projects = append(projects, sp.toDomain())
	}
	return projects, nil
}

func (sp Project) toDomain() *domain.Project {
	p := &domain.Project{
		ID:          sp.ID,
		Title:       sp.Title,
		Description: sp.Description,
		Objectives:  sp.Objectives,
		Owner:       sp.Owner,
		Area:        sp.Area,
		StartDate:   sp.StartDate,
		EndDate:     sp.EndDate,
		Status:      domain.ProjectStatus(sp.Status),
		Funding:     sp.Funding,
		Results:     sp.Results,
	}
	p.SyncProgress()
	return p
}
