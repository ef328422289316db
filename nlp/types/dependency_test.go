package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(heads ...int) []Token {
	retval := make([]Token, len(heads))
	for i, head := range heads {
		retval[i] = Token{ID: i + 1, Form: "w", Head: head}
	}
	return retval
}

func TestNewDependencyTree(t *testing.T) {
	tree, err := NewDependencyTree([]Token{
		{ID: 1, Form: "John", Head: 2, Relation: "nsubj"},
		{ID: 2, Form: "saw", Head: 0, Relation: "root"},
		{ID: 3, Form: "Mary", Head: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())
	assert.True(t, tree.Token(0).IsRoot())
	assert.Equal(t, DepRel(NO_LABEL), tree.Relation(3))
	assert.Equal(t, []int{1, 3}, tree.Dependents(2))
	assert.True(t, tree.HasArc(2, 1))
	assert.False(t, tree.HasArc(1, 2))
	assert.False(t, tree.HasArc(0, 0))
	assert.True(t, tree.Dominates(0, 3))
	assert.True(t, tree.Dominates(2, 2))
	assert.False(t, tree.Dominates(1, 3))
	assert.Equal(t, []DepRel{"nsubj", "root", NO_LABEL}, tree.Labels())
	assert.Equal(t, []string{"John", "saw", "Mary"}, tree.Forms())
	assert.Equal(t, BasicDepArc{2, "nsubj", 1}, tree.Arcs()[0])
}

func TestInvalidTrees(t *testing.T) {
	for name, toks := range map[string][]Token{
		"cycle":     tokens(2, 1),
		"self":      tokens(1),
		"range":     tokens(0, 5),
		"negative":  tokens(-1),
		"bad order": {{ID: 2, Form: "w", Head: 0}},
	} {
		_, err := NewDependencyTree(toks)
		var invalid *InvalidTreeError
		assert.True(t, errors.As(err, &invalid), name)
	}
}

func TestProjective(t *testing.T) {
	projective, err := NewProjectiveTree(tokens(2, 0, 2))
	require.NoError(t, err)
	assert.True(t, projective.Projective())

	// 4->2 spans 3, which 4 does not dominate
	crossing := tokens(0, 4, 1, 1)
	tree, err := NewDependencyTree(crossing)
	require.NoError(t, err)
	assert.False(t, tree.Projective())
	_, err = NewProjectiveTree(crossing)
	var nonProj *NonProjectiveGraphError
	assert.True(t, errors.As(err, &nonProj))
}

func TestSortArcs(t *testing.T) {
	arcs := []BasicDepArc{{2, "b", 3}, {0, "a", 1}, {1, "c", 3}}
	SortArcs(arcs)
	assert.Equal(t, []BasicDepArc{{0, "a", 1}, {1, "c", 3}, {2, "b", 3}}, arcs)
	assert.Equal(t, BasicDepArc{1, NO_LABEL, 3}, arcs[1].Unlabeled())
	assert.Equal(t, "(1,c,3)", arcs[1].String())
}
