package transition

import (
	"testing"

	nlp "deporacle/nlp/types"

	"github.com/stretchr/testify/require"
)

var (
	johnTokens = []nlp.Token{
		{ID: 1, Form: "John", Head: 2, Relation: "nsubj"},
		{ID: 2, Form: "saw", Head: 0, Relation: "root"},
		{ID: 3, Form: "Mary", Head: 2, Relation: "obj"},
	}

	economicTokens = []nlp.Token{
		{ID: 1, Form: "Economic", Head: 2, Relation: "ATT"},
		{ID: 2, Form: "news", Head: 3, Relation: "SBJ"},
		{ID: 3, Form: "had", Head: 0, Relation: "PRED"},
		{ID: 4, Form: "little", Head: 5, Relation: "ATT"},
		{ID: 5, Form: "effect", Head: 3, Relation: "OBJ"},
		{ID: 6, Form: "on", Head: 5, Relation: "ATT"},
		{ID: 7, Form: "financial", Head: 8, Relation: "ATT"},
		{ID: 8, Form: "markets", Head: 6, Relation: "PC"},
		{ID: 9, Form: ".", Head: 3, Relation: "PU"},
	}

	// 2->4 crosses the arc 1->3
	crossingTokens = []nlp.Token{
		{ID: 1, Form: "a", Head: 0, Relation: "r"},
		{ID: 2, Form: "b", Head: 1, Relation: "r"},
		{ID: 3, Form: "c", Head: 1, Relation: "r"},
		{ID: 4, Form: "d", Head: 2, Relation: "r"},
	}
)

func mustTree(t *testing.T, tokens []nlp.Token) *nlp.DependencyTree {
	t.Helper()
	tree, err := nlp.NewDependencyTree(tokens)
	require.NoError(t, err)
	return tree
}

func chainTree(t *testing.T, n int) *nlp.DependencyTree {
	tokens := make([]nlp.Token, n)
	for i := range tokens {
		tokens[i] = nlp.Token{ID: i + 1, Form: "w", Head: i, Relation: "r"}
	}
	return mustTree(t, tokens)
}

func staticOracle(t *testing.T, name string, label LabelFunc) *Oracle {
	t.Helper()
	system, err := NewSystem(name)
	require.NoError(t, err)
	f, err := OracleFuncFor(system, STATIC_ORACLE)
	require.NoError(t, err)
	return NewOracle(system, f, label)
}
