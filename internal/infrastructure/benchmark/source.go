package benchmark

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

//go:embed benchmarks.toml
var defaultTable []byte

// document is the TOML layout: industries.<industry>.<category>.<metric> = value.
type document struct {
	DefaultIndustry string                                   `toml:"default_industry"`
	Industries      map[string]map[string]map[string]float64 `toml:"industries"`
}

// Parse decodes a TOML benchmark document into a validated table. Unknown
// top-level keys and unknown categories are rejected.
func Parse(data []byte) (model.BenchmarkTable, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return model.BenchmarkTable{}, fmt.Errorf("decode benchmark table: %w", err)
	}
	if len(doc.Industries) == 0 {
		return model.BenchmarkTable{}, errors.New("benchmark table has no industries")
	}
	if doc.DefaultIndustry == "" {
		doc.DefaultIndustry = model.DefaultIndustry
	}

	var entries []model.BenchmarkEntry
	for _, industry := range sortedKeys(doc.Industries) {
		categories := doc.Industries[industry]
		for _, name := range sortedKeys(categories) {
			category, err := valueobject.CategoryFromString(name)
			if err != nil {
				return model.BenchmarkTable{}, fmt.Errorf("industry %s: %w", industry, err)
			}
			metrics := categories[name]
			for _, metric := range sortedKeys(metrics) {
				entries = append(entries, model.BenchmarkEntry{
					Industry: industry,
					Category: category,
					Metric:   metric,
					Value:    metrics[metric],
				})
			}
		}
	}

	return model.NewBenchmarkTable(doc.DefaultIndustry, entries)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ---------------------------------------------------------------------------
// Sources
// ---------------------------------------------------------------------------

// EmbeddedSource serves the table compiled into the binary.
type EmbeddedSource struct{}

// Load implements port.BenchmarkSource.
func (EmbeddedSource) Load(_ context.Context) (model.BenchmarkTable, error) {
	return Parse(defaultTable)
}

// FileSource reads a TOML table from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements port.BenchmarkSource.
func (s *FileSource) Load(_ context.Context) (model.BenchmarkTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.BenchmarkTable{}, fmt.Errorf("read benchmark file %s: %w", s.path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return model.BenchmarkTable{}, fmt.Errorf("benchmark file %s: %w", s.path, err)
	}
	return table, nil
}
