package reference

import (
	"fmt"
	"sort"
	"strings"
)

// WildTypeAllele is the name of the implicit reference haplotype. It has no
// defining markers and is assumed whenever no variant evidence is found.
const WildTypeAllele = "*1"

// Allele is a named haplotype defined by required nucleotide values at one
// or more markers. All defining markers must carry the listed variant symbol
// for the allele to be fully evidenced.
type Allele struct {
	Name    string
	Markers map[string]string // marker ID -> required variant symbol
}

// Gene is the immutable reference definition for one gene: its named
// alleles, the function class of every allele (wild-type included), and the
// full list of markers relevant to the gene. Markers is a superset of the
// markers appearing in allele definitions and drives coverage accounting.
type Gene struct {
	Name      string
	Alleles   []Allele          // named non-wild-type alleles, in definition order
	Functions map[string]string // allele name -> function class
	Markers   []string          // relevant marker IDs
	Caveat    string            // optional clinical caveat, e.g. a known blind spot
}

// Function returns the function class for an allele name, defaulting to
// normal if the name is absent from the function map.
func (g *Gene) Function(allele string) string {
	if fn, ok := g.Functions[allele]; ok {
		return fn
	}
	return FunctionNormal
}

// Validate checks the gene definition invariants: every allele has a
// function-map entry, the wild-type allele is mapped as normal, every
// defining marker appears in the relevant-marker list, and variant symbols
// are single nucleotides.
func (g *Gene) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("gene with empty name")
	}

	if fn, ok := g.Functions[WildTypeAllele]; !ok {
		return fmt.Errorf("gene %s: wild-type allele %s missing from function map", g.Name, WildTypeAllele)
	} else if fn != FunctionNormal {
		return fmt.Errorf("gene %s: wild-type allele %s must be %s, got %s", g.Name, WildTypeAllele, FunctionNormal, fn)
	}

	relevant := make(map[string]bool, len(g.Markers))
	for _, m := range g.Markers {
		relevant[m] = true
	}

	for _, a := range g.Alleles {
		if a.Name == "" {
			return fmt.Errorf("gene %s: allele with empty name", g.Name)
		}
		if len(a.Markers) == 0 {
			return fmt.Errorf("gene %s: allele %s has no defining markers", g.Name, a.Name)
		}
		fn, ok := g.Functions[a.Name]
		if !ok {
			return fmt.Errorf("gene %s: allele %s missing from function map", g.Name, a.Name)
		}
		if !IsFunctionClass(fn) {
			return fmt.Errorf("gene %s: allele %s has invalid function class %q", g.Name, a.Name, fn)
		}
		for marker, symbol := range a.Markers {
			if !relevant[marker] {
				return fmt.Errorf("gene %s: allele %s references marker %s not in the gene marker list", g.Name, a.Name, marker)
			}
			if len(symbol) != 1 || !strings.ContainsAny(symbol, "ACGT") {
				return fmt.Errorf("gene %s: allele %s marker %s has invalid variant symbol %q", g.Name, a.Name, marker, symbol)
			}
		}
	}

	for name, fn := range g.Functions {
		if !IsFunctionClass(fn) {
			return fmt.Errorf("gene %s: function map entry %s has invalid class %q", g.Name, name, fn)
		}
	}

	return nil
}

// Set is an immutable collection of gene references keyed by gene name.
type Set struct {
	genes map[string]*Gene
}

// NewSet builds a validated gene set. Every gene is validated and names must
// be unique.
func NewSet(genes []*Gene) (*Set, error) {
	s := &Set{genes: make(map[string]*Gene, len(genes))}
	for _, g := range genes {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.genes[g.Name]; exists {
			return nil, fmt.Errorf("duplicate gene %s", g.Name)
		}
		s.genes[g.Name] = g
	}
	return s, nil
}

// Gene returns a gene reference by name, or nil if not present.
func (s *Set) Gene(name string) *Gene {
	return s.genes[name]
}

// Names returns the sorted names of all genes in the set.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.genes))
	for name := range s.genes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Genes returns all gene references sorted by name.
func (s *Set) Genes() []*Gene {
	names := s.Names()
	genes := make([]*Gene, 0, len(names))
	for _, name := range names {
		genes = append(genes, s.genes[name])
	}
	return genes
}

// Len returns the number of genes in the set.
func (s *Set) Len() int {
	return len(s.genes)
}
