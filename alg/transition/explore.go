package transition

import (
	"math/rand"
)

// Predictor is an external model queried during sequence generation. It may
// return nil or a transition that is not legal.
type Predictor func(conf Configuration, legal, gold []Transition) Transition

// Policy picks the transition actually taken while generating a training
// sequence, from gold or legal.
type Policy interface {
	Choose(conf Configuration, legal, gold []Transition, predicted Transition) Transition
}

// choose samples uniformly from options; with no random source the first
// option is taken, which makes the systems' tie-break order the choice.
func choose(r *rand.Rand, options []Transition) Transition {
	if len(options) == 0 {
		return nil
	}
	if r == nil || len(options) == 1 {
		return options[0]
	}
	return options[r.Intn(len(options))]
}

// NeverExplore follows a gold prediction, or samples from gold.
type NeverExplore struct {
	Rand *rand.Rand
}

var _ Policy = &NeverExplore{}

func (p *NeverExplore) Choose(conf Configuration, legal, gold []Transition, predicted Transition) Transition {
	if Contains(gold, predicted) {
		return predicted
	}
	return choose(p.Rand, gold)
}

// AlwaysExplore follows any legal prediction, or samples from legal without
// regard to gold.
type AlwaysExplore struct {
	Rand *rand.Rand
}

var _ Policy = &AlwaysExplore{}

func (p *AlwaysExplore) Choose(conf Configuration, legal, gold []Transition, predicted Transition) Transition {
	if Contains(legal, predicted) {
		return predicted
	}
	return choose(p.Rand, legal)
}

// ExplorationPolicy explores at rate P (Goldberg & Nivre 2012). K seeds the
// random stream so runs are reproducible.
type ExplorationPolicy struct {
	K int64
	P float64

	rand   *rand.Rand
	never  NeverExplore
	always AlwaysExplore
}

var _ Policy = &ExplorationPolicy{}

func NewExplorationPolicy(k int64, p float64) *ExplorationPolicy {
	r := rand.New(rand.NewSource(k))
	return &ExplorationPolicy{
		K:      k,
		P:      p,
		rand:   r,
		never:  NeverExplore{r},
		always: AlwaysExplore{r},
	}
}

func (p *ExplorationPolicy) Choose(conf Configuration, legal, gold []Transition, predicted Transition) Transition {
	if p.rand == nil {
		*p = *NewExplorationPolicy(p.K, p.P)
	}
	if p.rand.Float64() < p.P {
		return p.always.Choose(conf, legal, gold, predicted)
	}
	return p.never.Choose(conf, legal, gold, predicted)
}

func NewNeverExplore(seed int64) *NeverExplore {
	return &NeverExplore{rand.New(rand.NewSource(seed))}
}

func NewAlwaysExplore(seed int64) *AlwaysExplore {
	return &AlwaysExplore{rand.New(rand.NewSource(seed))}
}
