package diplotype

import (
	"go.uber.org/zap"

	"github.com/openpgx/pgxcall/internal/genome"
	"github.com/openpgx/pgxcall/internal/reference"
)

// Engine runs the diplotype caller over every gene in a reference set.
// Genes are independent, so calls are fanned out over a worker pool.
type Engine struct {
	set     *reference.Set
	caller  *Caller
	workers int
	logger  *zap.Logger
}

// New creates an engine over the given gene set and phenotype table.
func New(set *reference.Set, table *reference.PhenotypeTable) *Engine {
	return &Engine{
		set:    set,
		caller: NewCaller(table),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for per-gene call events.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// SetWorkers sets the worker pool size. Zero or negative means one worker
// per CPU.
func (e *Engine) SetWorkers(n int) {
	e.workers = n
}

// CallAll calls every gene in the reference set against the individual's
// observations and returns a map from gene name to result. The map has
// exactly one entry per gene; results for different genes never influence
// each other.
func (e *Engine) CallAll(obs genome.Observations) map[string]*Result {
	genes := make(chan *reference.Gene, e.set.Len())
	for _, g := range e.set.Genes() {
		genes <- g
	}
	close(genes)

	results := make(map[string]*Result, e.set.Len())
	for r := range e.parallelCall(genes, obs, e.workers) {
		e.logger.Debug("called gene",
			zap.String("gene", r.Gene),
			zap.String("diplotype", r.Diplotype),
			zap.String("phenotype", r.Phenotype),
			zap.Float64("coverage", r.Coverage))
		results[r.Gene] = r
	}

	return results
}
