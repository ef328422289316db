package transition

import (
	"testing"

	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reachabler interface {
	System
	Reachable(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) int
	DynamicOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition
}

func dynamicSystems() []reachabler {
	return []reachabler{&ArcEager{}, &ArcHybrid{}}
}

func TestDynamicOracleGoldRun(t *testing.T) {
	tree := mustTree(t, economicTokens)
	for _, system := range dynamicSystems() {
		oracle := NewOracle(system, system.DynamicOracle, Typed)
		assert.Equal(t, tree.Len(), system.Reachable(oracle.Initial(tree), tree, Typed), system.Name())
		seq, err := oracle.Sequence(tree, nil, nil)
		require.NoError(t, err, system.Name())
		assert.Equal(t, tree.Arcs(), seq.Arcs(), system.Name())
		assert.Equal(t, tree.Len(), system.Reachable(seq.Final(), tree, Typed), system.Name())
	}
}

// Every explored run ends in a terminal configuration, and a gold transition
// never loses a reachable arc.
func TestDynamicOracleExplored(t *testing.T) {
	trees := []*nlp.DependencyTree{mustTree(t, economicTokens), mustTree(t, johnTokens), chainTree(t, 6)}
	for _, system := range dynamicSystems() {
		oracle := NewOracle(system, system.DynamicOracle, Typed)
		for seed := int64(1); seed <= 20; seed++ {
			for _, tree := range trees {
				seq, err := oracle.Sequence(tree, NewAlwaysExplore(seed), nil)
				require.NoError(t, err, "%s seed %d", system.Name(), seed)
				assert.True(t, system.Terminal(seq.Final()))

				prev := system.Reachable(oracle.Initial(tree), tree, Typed)
				for i, step := range seq.Pairs() {
					gold := system.DynamicOracle(step.Configuration, tree, Typed)
					require.NotEmpty(t, gold)
					next, err := system.Transition(step.Configuration, step.Transition)
					require.NoError(t, err)
					cur := system.Reachable(step.Configuration, tree, Typed)
					after := system.Reachable(next, tree, Typed)
					assert.LessOrEqual(t, after, cur, "step %d", i)
					assert.LessOrEqual(t, cur, prev)
					if !step.Explored {
						assert.Equal(t, cur, after, "%s seed %d step %d: %v", system.Name(), seed, i, step.Transition)
					}
					for _, g := range gold {
						goldNext, err := system.Transition(step.Configuration, g)
						require.NoError(t, err)
						assert.Equal(t, cur, system.Reachable(goldNext, tree, Typed))
					}
					prev = cur
				}
			}
		}
	}
}

func TestDynamicOracleNonProjective(t *testing.T) {
	tree := mustTree(t, crossingTokens)
	for _, system := range dynamicSystems() {
		// the crossing arcs are each reachable on their own but not together
		assert.Equal(t, tree.Len(), system.Reachable(system.Initial(tree, tree.Labels()), tree, Typed))
		seq, err := NewOracle(system, system.DynamicOracle, Typed).Sequence(tree, nil, nil)
		require.NoError(t, err, system.Name())
		assert.Equal(t, tree.Len()-1, system.Reachable(seq.Final(), tree, Typed), system.Name())
	}
}

func TestDynamicOracleLabels(t *testing.T) {
	tree := mustTree(t, johnTokens)
	eager := &ArcEager{}
	c := eager.Initial(tree, []nlp.DepRel{"nsubj", "root", "obj", "dep"})
	next, err := eager.Transition(c, Shift())
	require.NoError(t, err)
	gold := eager.DynamicOracle(next, tree, Typed)
	assert.Equal(t, []string{"LA-nsubj"}, Names(gold))

	wrongLabel, err := eager.Transition(next, LeftArc("dep"))
	require.NoError(t, err)
	assert.Equal(t, tree.Len()-1, eager.Reachable(wrongLabel, tree, Typed))
	assert.Equal(t, tree.Len(), eager.Reachable(next, tree, Typed))
}

func TestExplorationPredictor(t *testing.T) {
	tree := mustTree(t, economicTokens)
	hybrid := &ArcHybrid{}
	oracle := NewOracle(hybrid, hybrid.DynamicOracle, Typed)
	// a model that always wants to shift when it can
	predictor := func(conf Configuration, legal, gold []Transition) Transition {
		if Contains(legal, Shift()) {
			return Shift()
		}
		return legal[len(legal)-1]
	}
	seq, err := oracle.Sequence(tree, &AlwaysExplore{}, predictor)
	require.NoError(t, err)
	assert.Positive(t, seq.Explored())
	assert.Less(t, hybrid.Reachable(seq.Final(), tree, Typed), tree.Len())

	gold, err := oracle.Sequence(tree, &NeverExplore{}, predictor)
	require.NoError(t, err)
	assert.Zero(t, gold.Explored())
	assert.Equal(t, tree.Arcs(), gold.Arcs())
}
