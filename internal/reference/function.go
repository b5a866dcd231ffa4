// Package reference provides the per-gene star-allele definitions and the
// phenotype derivation table used by the diplotype caller.
package reference

// Function classes describe the qualitative enzymatic activity of an allele.
const (
	FunctionNormal     = "normal"
	FunctionIncreased  = "increased"
	FunctionDecreased  = "decreased"
	FunctionNoFunction = "no_function"
)

// FunctionClasses lists every valid function class.
var FunctionClasses = []string{
	FunctionNormal,
	FunctionIncreased,
	FunctionDecreased,
	FunctionNoFunction,
}

// Metabolizer phenotypes. Downstream consumers (drug dosing, polypharmacy
// warnings) key off these labels with equality tests, so the vocabulary is
// part of the contract.
const (
	PhenotypeUltrarapid    = "ultrarapid"
	PhenotypeRapid         = "rapid"
	PhenotypeNormal        = "normal"
	PhenotypeIntermediate  = "intermediate"
	PhenotypePoor          = "poor"
	PhenotypeUnknown       = "unknown"
	PhenotypeIndeterminate = "indeterminate"
)

// IsFunctionClass returns true if s is one of the four function classes.
func IsFunctionClass(s string) bool {
	switch s {
	case FunctionNormal, FunctionIncreased, FunctionDecreased, FunctionNoFunction:
		return true
	}
	return false
}
