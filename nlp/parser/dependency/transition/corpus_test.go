package transition

import (
	"context"
	"errors"
	"testing"

	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(t *testing.T) []*nlp.DependencyTree {
	return []*nlp.DependencyTree{
		mustTree(t, johnTokens),
		mustTree(t, crossingTokens),
		mustTree(t, economicTokens),
	}
}

func TestGenerate(t *testing.T) {
	trees := testCorpus(t)
	reg := prometheus.NewPedanticRegistry()
	g := &Generator{
		Oracle:  staticOracle(t, "standard", Typed),
		Workers: 2,
		Metrics: NewMetrics(reg),
	}
	result, err := g.Generate(context.Background(), trees)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 1, result.Unparsable)
	require.Len(t, result.Sentences, len(trees))
	for i, sentence := range result.Sentences {
		assert.Equal(t, i, sentence.Index)
	}
	require.NotNil(t, result.Sentences[1].Unparsable)
	assert.Nil(t, result.Sentences[1].Sequence)
	assert.Same(t, trees[1], result.Sentences[1].Unparsable.Tree)
	assert.Equal(t, trees[2].Arcs(), result.Sentences[2].Sequence.Arcs())

	assert.Equal(t, 2.0, testutil.ToFloat64(g.Metrics.Sequences.WithLabelValues("Arc Standard", OUTCOME_DONE)))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.Metrics.Sequences.WithLabelValues("Arc Standard", OUTCOME_UNPARSABLE)))
	assert.Equal(t, 0.0, testutil.ToFloat64(g.Metrics.Explored.WithLabelValues("Arc Standard")))
	assert.Equal(t, 1, testutil.CollectAndCount(g.Metrics.Transitions))
	assert.Equal(t, 2, testutil.CollectAndCount(g.Metrics.Sequences))
}

func TestGenerateWithoutMetrics(t *testing.T) {
	g := &Generator{Oracle: staticOracle(t, "listbased", Typed)}
	result, err := g.Generate(context.Background(), testCorpus(t))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Parsed)
	assert.Zero(t, result.Unparsable)

	_, err = (&Generator{}).Generate(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{Oracle: staticOracle(t, "eager", Typed), Workers: 1}
	_, err := g.Generate(ctx, testCorpus(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateIllegalOracle(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := &Generator{
		Oracle: NewOracle(&ArcStandard{}, func(Configuration, *nlp.DependencyTree, LabelFunc) []Transition {
			return []Transition{Reduce()}
		}, Typed),
		Metrics: NewMetrics(reg),
	}
	_, err := g.Generate(context.Background(), testCorpus(t)[:1])
	var illegalErr *IllegalTransitionError
	assert.True(t, errors.As(err, &illegalErr))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.Metrics.Sequences.WithLabelValues("Arc Standard", OUTCOME_ERROR)))
}

func TestSeededPolicies(t *testing.T) {
	_, err := SeededPolicies("sometimes", 1, 0.5)
	assert.Error(t, err)

	for _, name := range []string{"never", "always", "explore", "first"} {
		factory, err := SeededPolicies(name, 1, 0.5)
		require.NoError(t, err, name)
		assert.NotNil(t, factory(0), name)
	}

	eager := &ArcEager{}
	run := func() [][]string {
		factory, err := SeededPolicies("explore", 42, 0.5)
		require.NoError(t, err)
		g := &Generator{
			Oracle:  NewOracle(eager, eager.DynamicOracle, Typed),
			Policy:  factory,
			Workers: 3,
		}
		result, err := g.Generate(context.Background(), []*nlp.DependencyTree{
			mustTree(t, economicTokens), chainTree(t, 8), mustTree(t, johnTokens),
		})
		require.NoError(t, err)
		names := make([][]string, len(result.Sentences))
		for i, sentence := range result.Sentences {
			require.NotNil(t, sentence.Sequence)
			names[i] = Names(sentence.Sequence.Transitions())
		}
		return names
	}
	assert.Equal(t, run(), run(), "per-sentence seeds do not depend on scheduling")
}
