package transition

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"

	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"
)

// PolicyFactory returns the policy for the i-th sentence of a corpus. Each
// sentence gets its own policy so the random streams are independent of
// scheduling.
type PolicyFactory func(i int) Policy

// SeededPolicies derives one policy per sentence from a base seed. name is
// one of "never", "always", "explore" or "first", which always takes the
// first gold transition; rate is only used by "explore".
func SeededPolicies(name string, seed int64, rate float64) (PolicyFactory, error) {
	switch name {
	case "never":
		return func(i int) Policy { return NewNeverExplore(seed + int64(i)) }, nil
	case "always":
		return func(i int) Policy { return NewAlwaysExplore(seed + int64(i)) }, nil
	case "explore":
		return func(i int) Policy { return NewExplorationPolicy(seed+int64(i), rate) }, nil
	case "first":
		return func(int) Policy { return &NeverExplore{} }, nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

type SentenceResult struct {
	Index      int
	Sequence   *OracleSequence
	Unparsable *UnparsableTree
}

type CorpusResult struct {
	Sentences  []SentenceResult
	Parsed     int
	Unparsable int
}

// Generator derives oracle sequences for a corpus in parallel.
type Generator struct {
	Oracle *Oracle
	Policy PolicyFactory
	// Predictor is shared by all workers and must be safe for concurrent use
	Predictor Predictor
	Workers   int
	Log       *golog.Logger
	Metrics   *Metrics
}

// Generate returns one result per tree, in input order. Unparsable trees
// are counted and kept in the result; any other failure aborts the batch.
func (g *Generator) Generate(ctx context.Context, trees []*nlp.DependencyTree) (*CorpusResult, error) {
	if g.Oracle == nil {
		return nil, errors.New("generator has no oracle")
	}
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]SentenceResult, len(trees))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, tree := range trees {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			var policy Policy
			if g.Policy != nil {
				policy = g.Policy(i)
			}
			seq, err := g.Oracle.Sequence(tree, policy, g.Predictor)
			g.Metrics.Observe(g.Oracle.System.Name(), seq, err)
			results[i].Index = i
			if err != nil {
				var unparsable *UnparsableTree
				if !errors.As(err, &unparsable) {
					return fmt.Errorf("sentence %d: %w", i, err)
				}
				if g.Log != nil {
					g.Log.Warnf("Sentence %d unparsable: %v", i, err)
				}
				results[i].Unparsable = unparsable
				return nil
			}
			results[i].Sequence = seq
			if g.Log != nil {
				g.Log.Debugf("Sentence %d: %d transitions", i, seq.Len())
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	corpus := &CorpusResult{Sentences: results}
	for _, result := range results {
		if result.Unparsable != nil {
			corpus.Unparsable++
		} else {
			corpus.Parsed++
		}
	}
	if g.Log != nil {
		g.Log.Infof("Generated %d sequences (%d unparsable) with %s", corpus.Parsed, corpus.Unparsable, g.Oracle.System.Name())
	}
	return corpus, nil
}
