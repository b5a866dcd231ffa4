// Package snptrait provides curated single-SNP trait findings backed by
// DuckDB. Each table row maps a marker/genotype pair to a status label and
// a one-line summary.
package snptrait

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/openpgx/pgxcall/internal/genome"
)

// Finding is a single matched trait table row.
type Finding struct {
	Marker   string // marker ID
	Genotype string // observed genotype, canonicalized
	Status   string // e.g. "risk", "protective", "carrier", "informational"
	Summary  string // one-line clinical summary
}

// Store provides trait lookups backed by DuckDB.
type Store struct {
	db       *sql.DB
	lookupPS *sql.Stmt // prepared statement for Lookup, lazily initialized
}

// Open opens or creates a DuckDB database at the given path. Use an empty
// string for an in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snp_trait (
		marker VARCHAR,
		genotype VARCHAR,
		status VARCHAR,
		summary VARCHAR
	)`); err != nil {
		return err
	}
	s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_trait_lookup ON snp_trait (marker, genotype)`)
	return nil
}

// Count returns the number of rows in the trait table.
func (s *Store) Count() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM snp_trait").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count trait rows: %w", err)
	}
	return count, nil
}

// Load bulk-loads trait data from a TSV file using DuckDB's read_csv.
// Expected header: marker, genotype, status, summary. Reloading replaces
// any existing data.
func (s *Store) Load(tsvPath string) error {
	s.db.Exec(`DELETE FROM snp_trait`)

	query := fmt.Sprintf(`INSERT INTO snp_trait
		SELECT marker, upper(genotype), status, summary
		FROM read_csv('%s', delim='\t', header=true,
			columns={
				'marker': 'VARCHAR',
				'genotype': 'VARCHAR',
				'status': 'VARCHAR',
				'summary': 'VARCHAR'
			})`, tsvPath)

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("loading trait data: %w", err)
	}
	return nil
}

// canonicalGenotype sorts the symbols of a diploid genotype so "AG" and
// "GA" match the same table row.
func canonicalGenotype(g string) string {
	if len(g) == 2 && g[0] > g[1] {
		return string([]byte{g[1], g[0]})
	}
	return g
}

// Lookup returns the trait finding for a marker/genotype pair.
func (s *Store) Lookup(marker, genotype string) (Finding, bool) {
	if s.lookupPS == nil {
		ps, err := s.db.Prepare(
			"SELECT status, summary FROM snp_trait WHERE marker=? AND genotype=? LIMIT 1",
		)
		if err != nil {
			return Finding{}, false
		}
		s.lookupPS = ps
	}

	gt := canonicalGenotype(strings.ToUpper(genotype))
	f := Finding{Marker: marker, Genotype: gt}
	err := s.lookupPS.QueryRow(marker, gt).Scan(&f.Status, &f.Summary)
	if err != nil {
		return Finding{}, false
	}
	return f, true
}

// FindAll matches every observed marker against the trait table and returns
// the findings sorted by marker ID.
func (s *Store) FindAll(obs genome.Observations) []Finding {
	markers := make([]string, 0, len(obs))
	for marker := range obs {
		markers = append(markers, marker)
	}
	sort.Strings(markers)

	var findings []Finding
	for _, marker := range markers {
		gt, ok := obs.Genotype(marker)
		if !ok {
			continue
		}
		if f, ok := s.Lookup(marker, gt); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.lookupPS != nil {
		s.lookupPS.Close()
	}
	return s.db.Close()
}
