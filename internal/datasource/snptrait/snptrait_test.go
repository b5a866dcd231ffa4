package snptrait

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpgx/pgxcall/internal/genome"
)

const traitTSV = `marker	genotype	status	summary
rs1801133	TT	risk	Reduced MTHFR activity; elevated homocysteine possible
rs4988235	CC	informational	Likely lactose intolerant as an adult
rs1815739	CC	informational	Sprinter-type muscle composition
`

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "traits.tsv")
	require.NoError(t, os.WriteFile(path, []byte(traitTSV), 0644))

	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Load(path))
	return s
}

func TestStore_LoadAndCount(t *testing.T) {
	s := newTestStore(t)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestStore_Lookup(t *testing.T) {
	s := newTestStore(t)

	f, ok := s.Lookup("rs1801133", "TT")
	require.True(t, ok)
	assert.Equal(t, "risk", f.Status)
	assert.Contains(t, f.Summary, "MTHFR")

	_, ok = s.Lookup("rs1801133", "CT")
	assert.False(t, ok)

	_, ok = s.Lookup("rs999", "AA")
	assert.False(t, ok)
}

func TestStore_LookupCanonicalizesGenotype(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "traits.tsv")
	require.NoError(t, os.WriteFile(path, []byte("marker\tgenotype\tstatus\tsummary\nrs123\tAG\tcarrier\texample\n"), 0644))
	require.NoError(t, s.Load(path))

	// Observed "GA" matches the curated "AG" row.
	f, ok := s.Lookup("rs123", "GA")
	require.True(t, ok)
	assert.Equal(t, "AG", f.Genotype)
	assert.Equal(t, "carrier", f.Status)
}

func TestStore_FindAll(t *testing.T) {
	s := newTestStore(t)

	obs := genome.Observations{
		"rs4988235": "CC",
		"rs1801133": "TT",
		"rs1815739": "CT", // no matching row
	}

	findings := s.FindAll(obs)
	require.Len(t, findings, 2)

	// Sorted by marker ID.
	assert.Equal(t, "rs1801133", findings[0].Marker)
	assert.Equal(t, "rs4988235", findings[1].Marker)
}

func TestStore_LoadReplacesExistingData(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "traits.tsv")
	require.NoError(t, os.WriteFile(path, []byte("marker\tgenotype\tstatus\tsummary\nrs1\tAA\trisk\tx\n"), 0644))
	require.NoError(t, s.Load(path))

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
