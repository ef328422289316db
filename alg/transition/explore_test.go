package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type move string

func (m move) Type() byte                  { return m[0] }
func (m move) Equal(other Transition) bool { return other != nil && m.String() == other.String() }
func (m move) String() string              { return string(m) }

var (
	legal = []Transition{move("SH"), move("LA"), move("RA")}
	gold  = []Transition{move("RA"), move("LA")}
)

func TestNeverExplore(t *testing.T) {
	first := &NeverExplore{}
	assert.Equal(t, move("RA"), first.Choose(nil, legal, gold, nil))
	assert.Equal(t, move("LA"), first.Choose(nil, legal, gold, move("LA")), "gold prediction is followed")
	assert.Equal(t, move("RA"), first.Choose(nil, legal, gold, move("SH")), "non-gold prediction is ignored")

	p := NewNeverExplore(3)
	for i := 0; i < 50; i++ {
		assert.True(t, Contains(gold, p.Choose(nil, legal, gold, nil)))
	}
}

func TestAlwaysExplore(t *testing.T) {
	p := NewAlwaysExplore(3)
	assert.Equal(t, move("SH"), p.Choose(nil, legal, gold, move("SH")))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		chosen := p.Choose(nil, legal, gold, move("XX"))
		assert.True(t, Contains(legal, chosen))
		seen[chosen.String()] = true
	}
	assert.Len(t, seen, 3)
}

func TestExplorationPolicy(t *testing.T) {
	never := NewExplorationPolicy(1, 0)
	always := NewExplorationPolicy(1, 1)
	for i := 0; i < 50; i++ {
		assert.True(t, Contains(gold, never.Choose(nil, legal, gold, nil)))
		assert.Equal(t, move("SH"), always.Choose(nil, legal, gold, move("SH")))
	}

	a, b := NewExplorationPolicy(42, 0.5), &ExplorationPolicy{K: 42, P: 0.5}
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Choose(nil, legal, gold, nil), b.Choose(nil, legal, gold, nil), "same seed, same choices")
	}
}

func TestContainsAndNames(t *testing.T) {
	assert.False(t, Contains(legal, nil))
	assert.True(t, Contains(legal, move("LA")))
	assert.Equal(t, []string{"RA", "LA"}, Names(gold))
	assert.Equal(t, "SH LA RA", FormatTransitions(legal))
}
