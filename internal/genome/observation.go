// Package genome provides raw genotype file parsing and the marker
// observation model consumed by the diplotype caller.
package genome

import "strings"

// Observation is a single genotyped marker from a raw genotype file.
type Observation struct {
	MarkerID string // stable marker identifier (e.g. rs4244285)
	Chrom    string // chromosome name
	Pos      int64  // 1-based genomic position
	Genotype string // 1-2 nucleotide symbols, uppercase
}

// Observations maps marker ID to the observed genotype string. An absent
// entry means the marker was not observed, not that it is wild-type.
type Observations map[string]string

// Genotype returns the observed genotype for a marker and whether it was
// observed with a non-empty genotype.
func (o Observations) Genotype(marker string) (string, bool) {
	g, ok := o[marker]
	if !ok || g == "" {
		return "", false
	}
	return g, true
}

// Add records an observation, normalizing the genotype to uppercase.
// Invalid genotypes (no-calls, indel codes) are ignored.
func (o Observations) Add(marker, genotype string) {
	g := strings.ToUpper(strings.TrimSpace(genotype))
	if !ValidGenotype(g) {
		return
	}
	o[marker] = g
}

// ValidGenotype returns true for a 1-2 symbol genotype drawn from {A,C,G,T}.
// Array no-calls ("--") and indel codes ("II", "DD", "DI") are not valid
// observations for diplotype calling.
func ValidGenotype(g string) bool {
	if len(g) < 1 || len(g) > 2 {
		return false
	}
	for i := 0; i < len(g); i++ {
		switch g[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// Collect drains a parser into an observation map. Markers appearing more
// than once keep the last valid genotype.
func Collect(p *Parser) (Observations, error) {
	obs := make(Observations)
	for {
		o, err := p.Next()
		if err != nil {
			return nil, err
		}
		if o == nil {
			return obs, nil
		}
		obs.Add(o.MarkerID, o.Genotype)
	}
}
