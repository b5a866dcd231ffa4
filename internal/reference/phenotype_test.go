package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhenotypeTable_Totality(t *testing.T) {
	table, err := NewPhenotypeTable()
	require.NoError(t, err)

	// Exactly the 10 unordered pairs over 4 classes, no fewer, no more.
	assert.Equal(t, 10, table.Len())

	for i, a := range FunctionClasses {
		for _, b := range FunctionClasses[i:] {
			_, ok := table.Lookup(a, b)
			assert.True(t, ok, "pair {%s, %s} must resolve", a, b)
		}
	}
}

func TestPhenotypeTable_Mappings(t *testing.T) {
	table, err := NewPhenotypeTable()
	require.NoError(t, err)

	tests := []struct {
		a, b     string
		expected string
	}{
		{FunctionIncreased, FunctionIncreased, PhenotypeUltrarapid},
		{FunctionIncreased, FunctionNormal, PhenotypeRapid},
		{FunctionNormal, FunctionNormal, PhenotypeNormal},
		{FunctionDecreased, FunctionNormal, PhenotypeIntermediate},
		{FunctionDecreased, FunctionDecreased, PhenotypeIntermediate},
		{FunctionIncreased, FunctionNoFunction, PhenotypeIntermediate},
		{FunctionNoFunction, FunctionNormal, PhenotypeIntermediate},
		{FunctionDecreased, FunctionIncreased, PhenotypeNormal},
		{FunctionDecreased, FunctionNoFunction, PhenotypePoor},
		{FunctionNoFunction, FunctionNoFunction, PhenotypePoor},
	}

	for _, tt := range tests {
		got, ok := table.Lookup(tt.a, tt.b)
		require.True(t, ok, "{%s, %s}", tt.a, tt.b)
		assert.Equal(t, tt.expected, got, "{%s, %s}", tt.a, tt.b)

		// Unordered: reversed lookup gives the same phenotype.
		rev, ok := table.Lookup(tt.b, tt.a)
		require.True(t, ok)
		assert.Equal(t, got, rev, "{%s, %s} reversed", tt.b, tt.a)
	}
}

func TestPhenotypeTable_ValidateRejectsGaps(t *testing.T) {
	table := &PhenotypeTable{pairs: map[string]string{
		pairKey(FunctionNormal, FunctionNormal): PhenotypeNormal,
	}}

	err := table.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not total")
}

func TestPhenotypeTable_ValidateRejectsExtraPairs(t *testing.T) {
	table, err := NewPhenotypeTable()
	require.NoError(t, err)

	table.pairs["bogus|pair"] = PhenotypeNormal
	err = table.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected pair")
}
