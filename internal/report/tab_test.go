package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpgx/pgxcall/internal/datasource/snptrait"
	"github.com/openpgx/pgxcall/internal/diplotype"
)

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(&diplotype.Result{
		Gene:         "CYP2C19",
		Diplotype:    "*1/*2",
		Phenotype:    "intermediate",
		MarkersFound: 3,
		MarkersTotal: 3,
		Coverage:     1.0,
		Confidence:   "high",
		Note:         "all defining markers were found",
	}))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#Gene\tDiplotype"))
	assert.Equal(t, "CYP2C19\t*1/*2\tintermediate\t3\t3\t1.00\thigh\tall defining markers were found", lines[1])
}

func TestTabWriter_EmptyNote(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.Write(&diplotype.Result{Gene: "TPMT", Diplotype: "unknown", Phenotype: "unknown"}))
	require.NoError(t, tw.Flush())

	assert.True(t, strings.HasSuffix(strings.TrimRight(buf.String(), "\n"), "\t-"))
}

func TestTraitWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraitWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(snptrait.Finding{
		Marker:   "rs1801133",
		Genotype: "TT",
		Status:   "risk",
		Summary:  "Reduced MTHFR activity",
	}))
	require.NoError(t, tw.Flush())

	assert.Equal(t, "#Marker\tGenotype\tStatus\tSummary\nrs1801133\tTT\trisk\tReduced MTHFR activity\n", buf.String())
}
