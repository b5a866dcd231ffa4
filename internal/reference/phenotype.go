package reference

import (
	"fmt"
	"sort"
	"strings"
)

// PhenotypeTable maps every unordered pair of function classes to a
// metabolizer phenotype. The table is fixed domain data; totality over all
// 10 unordered pairs is checked at construction and a gap is fatal.
type PhenotypeTable struct {
	pairs map[string]string
}

// pairKey canonicalizes an unordered function-class pair.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// NewPhenotypeTable builds the standard phenotype derivation table and
// verifies its totality. The {decreased, increased} pair maps to normal:
// one hyperactive and one hypoactive copy are treated as net-neutral, a
// modeling simplification rather than a verified pharmacological claim.
func NewPhenotypeTable() (*PhenotypeTable, error) {
	t := &PhenotypeTable{pairs: map[string]string{
		pairKey(FunctionIncreased, FunctionIncreased):   PhenotypeUltrarapid,
		pairKey(FunctionIncreased, FunctionNormal):      PhenotypeRapid,
		pairKey(FunctionNormal, FunctionNormal):         PhenotypeNormal,
		pairKey(FunctionDecreased, FunctionNormal):      PhenotypeIntermediate,
		pairKey(FunctionDecreased, FunctionDecreased):   PhenotypeIntermediate,
		pairKey(FunctionIncreased, FunctionNoFunction):  PhenotypeIntermediate,
		pairKey(FunctionNoFunction, FunctionNormal):     PhenotypeIntermediate,
		pairKey(FunctionDecreased, FunctionIncreased):   PhenotypeNormal,
		pairKey(FunctionDecreased, FunctionNoFunction):  PhenotypePoor,
		pairKey(FunctionNoFunction, FunctionNoFunction): PhenotypePoor,
	}}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate enumerates all unordered pairs over the function-class vocabulary
// and fails if any pair is unmapped or if the table carries extra pairs.
func (t *PhenotypeTable) validate() error {
	var missing []string
	expected := make(map[string]bool)

	for i, a := range FunctionClasses {
		for _, b := range FunctionClasses[i:] {
			key := pairKey(a, b)
			expected[key] = true
			if _, ok := t.pairs[key]; !ok {
				missing = append(missing, "{"+a+", "+b+"}")
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("phenotype table is not total: unmapped pairs %s", strings.Join(missing, ", "))
	}

	for key := range t.pairs {
		if !expected[key] {
			return fmt.Errorf("phenotype table has unexpected pair %q", key)
		}
	}
	return nil
}

// Lookup returns the phenotype for an unordered pair of function classes.
// The second return is false if the pair is unmapped; callers treat that as
// indeterminate rather than failing.
func (t *PhenotypeTable) Lookup(a, b string) (string, bool) {
	p, ok := t.pairs[pairKey(a, b)]
	return p, ok
}

// Len returns the number of mapped pairs.
func (t *PhenotypeTable) Len() int {
	return len(t.pairs)
}
