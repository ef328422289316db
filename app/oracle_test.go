package app

import (
	"context"
	"path/filepath"
	"testing"

	nlp "deporacle/nlp/types"
	"deporacle/util/conf"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrees(t *testing.T) []*nlp.DependencyTree {
	john, err := nlp.NewDependencyTree([]nlp.Token{
		{ID: 1, Form: "John", Head: 2, Relation: "nsubj"},
		{ID: 2, Form: "saw", Head: 0, Relation: "root"},
		{ID: 3, Form: "Mary", Head: 2, Relation: "obj"},
	})
	require.NoError(t, err)
	crossing, err := nlp.NewDependencyTree([]nlp.Token{
		{ID: 1, Form: "a", Head: 0, Relation: "r"},
		{ID: 2, Form: "b", Head: 1, Relation: "r"},
		{ID: 3, Form: "c", Head: 1, Relation: "r"},
		{ID: 4, Form: "d", Head: 2, Relation: "r"},
	})
	require.NoError(t, err)
	return []*nlp.DependencyTree{john, crossing}
}

func TestGenerateOracle(t *testing.T) {
	config := conf.DefaultRunConfig()
	config.System = "eager"
	registry := prometheus.NewRegistry()
	records, result, err := GenerateOracle(context.Background(), config, sampleTrees(t), registry)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Parsed)
	require.Len(t, records, 2)

	assert.Equal(t, "Arc Eager", records[0].System)
	assert.Equal(t, []string{"SH", "LA-nsubj", "RA-root", "RA-obj"}, records[0].Transitions)
	assert.Len(t, records[0].Arcs, 3)
	assert.Empty(t, records[0].Unparsable)

	assert.Equal(t, 1, records[1].Sentence)
	assert.NotEmpty(t, records[1].Unparsable)
	assert.Empty(t, records[1].Transitions)

	counts, vocab := transitionCounts(records)
	assert.Equal(t, 1, counts["LA-nsubj"])
	assert.Equal(t, 4, len(counts))
	assert.Equal(t, []string{"SH", "LA-nsubj", "RA-root", "RA-obj"}, vocab.Values())

	name := filepath.Join(t.TempDir(), "transitions.txt")
	require.NoError(t, writeVocabulary(name, vocab))
	read, err := conf.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, vocab.Values(), read.Values)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestGenerateOracleConfigErrors(t *testing.T) {
	trees := sampleTrees(t)
	config := conf.DefaultRunConfig()
	config.System = "arc-zigzag"
	_, _, err := GenerateOracle(context.Background(), config, trees, nil)
	assert.Error(t, err)

	config = conf.DefaultRunConfig()
	config.Oracle = "dynamic"
	_, _, err = GenerateOracle(context.Background(), config, trees, nil)
	assert.Error(t, err, "standard has no dynamic oracle")
}

func TestNewOracle(t *testing.T) {
	config := conf.DefaultRunConfig()
	config.System = "listbased"
	config.Labels = "untyped"
	config.Relations = []string{"x"}
	config.MaxTransitions = 50
	oracle, err := NewOracle(config)
	require.NoError(t, err)
	assert.Equal(t, []nlp.DepRel{"x"}, oracle.Relations)
	assert.Equal(t, 50, oracle.MaxTransitions)

	records, _, err := GenerateOracle(context.Background(), config, sampleTrees(t), nil)
	require.NoError(t, err)
	assert.Contains(t, records[1].Transitions, "RA-_")
}

func TestDepEvalCorpus(t *testing.T) {
	gold := sampleTrees(t)
	wrong, err := nlp.NewDependencyTree([]nlp.Token{
		{ID: 1, Form: "John", Head: 2, Relation: "obj"},
		{ID: 2, Form: "saw", Head: 0, Relation: "root"},
		{ID: 3, Form: "Mary", Head: 1, Relation: "obj"},
	})
	require.NoError(t, err)

	total, err := DepEvalCorpus([]*nlp.DependencyTree{wrong, gold[1]}, gold)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Sentences)
	assert.Equal(t, 5, total.Labeled.TP)
	assert.Equal(t, 6, total.Unlabeled.TP)
	assert.Equal(t, 1, total.UnlabeledExact)
	assert.Len(t, total.Results, 2)

	_, err = DepEvalCorpus(gold[:1], gold)
	assert.Error(t, err)
	_, err = DepEvalCorpus([]*nlp.DependencyTree{gold[1], gold[0]}, gold)
	assert.Error(t, err)
}
