package reference

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// geneFile is the YAML document layout for gene reference data.
type geneFile struct {
	Genes []geneEntry `yaml:"genes"`
}

type geneEntry struct {
	Name    string        `yaml:"name"`
	Caveat  string        `yaml:"caveat"`
	Markers []string      `yaml:"markers"`
	Alleles []alleleEntry `yaml:"alleles"`
}

type alleleEntry struct {
	Name     string            `yaml:"name"`
	Function string            `yaml:"function"`
	Markers  map[string]string `yaml:"markers"`
}

// LoadFile loads and validates a YAML gene reference file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference file: %w", err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("reference file %s: %w", path, err)
	}
	return set, nil
}

// Load reads a YAML gene reference document and returns a validated Set.
// Each allele carries its own function class; the per-gene function map is
// assembled here with the wild-type allele always mapped as normal.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}

	var doc geneFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse reference yaml: %w", err)
	}
	if len(doc.Genes) == 0 {
		return nil, fmt.Errorf("reference data defines no genes")
	}

	genes := make([]*Gene, 0, len(doc.Genes))
	for _, entry := range doc.Genes {
		g := &Gene{
			Name:      entry.Name,
			Caveat:    entry.Caveat,
			Markers:   entry.Markers,
			Functions: map[string]string{WildTypeAllele: FunctionNormal},
		}
		for _, ae := range entry.Alleles {
			g.Alleles = append(g.Alleles, Allele{Name: ae.Name, Markers: ae.Markers})
			g.Functions[ae.Name] = ae.Function
		}
		genes = append(genes, g)
	}

	return NewSet(genes)
}
