// Package diplotype reconstructs star-allele diplotypes and metabolizer
// phenotypes from observed marker genotypes.
package diplotype

import (
	"sort"
	"strings"

	"github.com/openpgx/pgxcall/internal/genome"
	"github.com/openpgx/pgxcall/internal/reference"
)

// Confidence tiers summarizing marker coverage.
const (
	ConfidenceHigh     = "high"
	ConfidenceModerate = "moderate"
	ConfidenceLow      = "low"
)

// DiplotypeUnknown labels a call with no observed defining markers.
const DiplotypeUnknown = "unknown"

// Result is the per-gene metabolizer-phenotype call. Every input produces a
// well-formed result; degraded data lowers confidence rather than failing.
type Result struct {
	Gene         string  // gene name
	Diplotype    string  // canonical diplotype label, e.g. "*1/*2"
	Phenotype    string  // metabolizer phenotype label
	MarkersFound int     // relevant markers observed
	MarkersTotal int     // relevant markers in the gene reference
	Coverage     float64 // MarkersFound / MarkersTotal
	Confidence   string  // high, moderate, or low
	Note         string  // clinical note: caveat, missing markers
}

// Caller reconstructs diplotypes for single genes. It holds only the
// immutable phenotype table and is safe for concurrent use.
type Caller struct {
	table *reference.PhenotypeTable
}

// NewCaller creates a caller backed by the given phenotype table.
func NewCaller(table *reference.PhenotypeTable) *Caller {
	return &Caller{table: table}
}

// candidate is a named allele with accumulated variant-copy evidence.
type candidate struct {
	name  string
	count int // variant copies summed across observed defining markers
}

// Call reconstructs the diplotype and phenotype for one gene from the
// individual's marker observations. The assignment is a deterministic greedy
// procedure: candidates are processed in descending copy-count order (ties
// keep allele definition order) and placed highest-evidence-first, not an
// exhaustive search over allele pairs.
func (c *Caller) Call(g *reference.Gene, obs genome.Observations) *Result {
	r := &Result{
		Gene:         g.Name,
		MarkersTotal: len(g.Markers),
	}

	// Coverage accounting: partition the relevant markers.
	var missing []string
	for _, marker := range g.Markers {
		if _, ok := obs.Genotype(marker); ok {
			r.MarkersFound++
		} else {
			missing = append(missing, marker)
		}
	}

	if r.MarkersFound == 0 {
		r.Diplotype = DiplotypeUnknown
		r.Phenotype = reference.PhenotypeUnknown
		r.Confidence = ConfidenceLow
		r.Note = "no defining markers were found"
		return r
	}

	// Per-allele copy counting. An allele stays a candidate if every
	// defining marker was observed, or if it accumulated any variant
	// copies from the markers that were.
	var candidates []candidate
	for _, a := range g.Alleles {
		count := 0
		fullyEvidenced := true
		for marker, symbol := range a.Markers {
			gt, ok := obs.Genotype(marker)
			if !ok {
				fullyEvidenced = false
				continue
			}
			for i := 0; i < len(gt); i++ {
				if gt[i] == symbol[0] {
					count++
				}
			}
		}
		if fullyEvidenced || count > 0 {
			candidates = append(candidates, candidate{name: a.Name, count: count})
		}
	}

	// Greedy slot assignment, highest evidence first.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].count > candidates[j].count
	})

	slots := [2]string{reference.WildTypeAllele, reference.WildTypeAllele}
	locked := false // slots claimed by a homozygous assignment stay claimed
	for _, cand := range candidates {
		switch {
		case cand.count >= 2:
			if !locked {
				slots[0], slots[1] = cand.name, cand.name
				locked = true
			}
		case cand.count == 1:
			if slots[0] == reference.WildTypeAllele {
				slots[0] = cand.name
			} else if slots[1] == reference.WildTypeAllele {
				slots[1] = cand.name
			}
			// both slots taken: candidate is dropped
		}
	}

	if slots[0] > slots[1] {
		slots[0], slots[1] = slots[1], slots[0]
	}
	r.Diplotype = slots[0] + "/" + slots[1]

	// Phenotype lookup over the unordered function-class pair.
	var noteParts []string
	phenotype, ok := c.table.Lookup(g.Function(slots[0]), g.Function(slots[1]))
	if !ok {
		// Should be unreachable under the startup totality check.
		phenotype = reference.PhenotypeIndeterminate
		noteParts = append(noteParts,
			"function pair {"+g.Function(slots[0])+", "+g.Function(slots[1])+"} has no phenotype mapping")
	}
	r.Phenotype = phenotype

	// Confidence and clinical note.
	r.Coverage = float64(r.MarkersFound) / float64(r.MarkersTotal)
	switch {
	case r.Coverage >= 0.8:
		r.Confidence = ConfidenceHigh
	case r.Coverage >= 0.5:
		r.Confidence = ConfidenceModerate
	default:
		r.Confidence = ConfidenceLow
	}

	if g.Caveat != "" {
		noteParts = append(noteParts, g.Caveat)
	}
	if len(missing) > 0 {
		noteParts = append(noteParts, "missing markers: "+strings.Join(missing, ", "))
	}
	if len(noteParts) == 0 {
		noteParts = append(noteParts, "all defining markers were found")
	}
	r.Note = strings.Join(noteParts, "; ")

	return r
}
