package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGene() *Gene {
	return &Gene{
		Name:    "CYP2C19",
		Markers: []string{"rs4244285", "rs12248560"},
		Alleles: []Allele{
			{Name: "*2", Markers: map[string]string{"rs4244285": "A"}},
			{Name: "*17", Markers: map[string]string{"rs12248560": "T"}},
		},
		Functions: map[string]string{
			WildTypeAllele: FunctionNormal,
			"*2":           FunctionNoFunction,
			"*17":          FunctionIncreased,
		},
	}
}

func TestGene_Validate(t *testing.T) {
	assert.NoError(t, validGene().Validate())
}

func TestGene_ValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Gene)
		wantErr string
	}{
		{
			name:    "missing wild-type function",
			mutate:  func(g *Gene) { delete(g.Functions, WildTypeAllele) },
			wantErr: "wild-type",
		},
		{
			name:    "wild-type not normal",
			mutate:  func(g *Gene) { g.Functions[WildTypeAllele] = FunctionIncreased },
			wantErr: "must be normal",
		},
		{
			name:    "allele missing from function map",
			mutate:  func(g *Gene) { delete(g.Functions, "*2") },
			wantErr: "missing from function map",
		},
		{
			name:    "invalid function class",
			mutate:  func(g *Gene) { g.Functions["*2"] = "hyperactive" },
			wantErr: "invalid function class",
		},
		{
			name:    "marker not in gene marker list",
			mutate:  func(g *Gene) { g.Alleles[0].Markers = map[string]string{"rs999": "A"} },
			wantErr: "not in the gene marker list",
		},
		{
			name:    "invalid variant symbol",
			mutate:  func(g *Gene) { g.Alleles[0].Markers["rs4244285"] = "AG" },
			wantErr: "invalid variant symbol",
		},
		{
			name:    "allele without defining markers",
			mutate:  func(g *Gene) { g.Alleles[0].Markers = nil },
			wantErr: "no defining markers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGene()
			tt.mutate(g)
			err := g.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGene_FunctionDefaultsToNormal(t *testing.T) {
	g := validGene()
	assert.Equal(t, FunctionNoFunction, g.Function("*2"))
	assert.Equal(t, FunctionNormal, g.Function("*99"))
}

func TestNewSet_RejectsDuplicates(t *testing.T) {
	_, err := NewSet([]*Gene{validGene(), validGene()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate gene")
}

func TestSet_NamesSorted(t *testing.T) {
	a := validGene()
	b := validGene()
	b.Name = "ABCB1"

	set, err := NewSet([]*Gene{a, b})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABCB1", "CYP2C19"}, set.Names())
	assert.Equal(t, 2, set.Len())
	assert.Nil(t, set.Gene("TPMT"))
	assert.NotNil(t, set.Gene("ABCB1"))
}

func TestDefault_ValidatesCleanly(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, set.Len(), 6)

	// Every default gene must carry the wild-type function entry.
	for _, g := range set.Genes() {
		assert.Equal(t, FunctionNormal, g.Function(WildTypeAllele), g.Name)
	}
}
