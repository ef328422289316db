package search

import (
	"errors"
	"fmt"
	"testing"

	"deporacle/alg/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step int

func (s step) Type() byte                             { return 'S' }
func (s step) Equal(other transition.Transition) bool { o, ok := other.(step); return ok && o == s }
func (s step) String() string                         { return fmt.Sprintf("+%d", int(s)) }

// counter counts up to a goal; gold steps never overshoot it
type counter struct {
	value, goal int
	previous    *counter
	last        transition.Transition
}

func (c *counter) Terminal() bool { return c.value == c.goal }
func (c *counter) Copy() transition.Configuration {
	n := *c
	return &n
}
func (c *counter) Len() int { return c.goal }
func (c *counter) Previous() transition.Configuration {
	if c.previous == nil {
		return nil
	}
	return c.previous
}
func (c *counter) GetSequence() transition.ConfigurationSequence {
	var seq transition.ConfigurationSequence
	for cur := c; cur != nil; cur = cur.previous {
		seq = append(seq, cur)
	}
	return seq
}
func (c *counter) GetLastTransition() transition.Transition { return c.last }
func (c *counter) String() string                           { return fmt.Sprintf("%d/%d", c.value, c.goal) }

type counting struct{}

func (counting) Transition(from transition.Configuration, t transition.Transition) (transition.Configuration, error) {
	c := from.(*counter)
	s := t.(step)
	if c.value+int(s) > c.goal+1 {
		return nil, &transition.IllegalTransitionError{Transition: t, Configuration: from, Reason: "overflow"}
	}
	next := c.Copy().(*counter)
	next.value += int(s)
	next.previous, next.last = c, t
	return next, nil
}
func (counting) GetTransitions(conf transition.Configuration) []transition.Transition {
	return []transition.Transition{step(1), step(2)}
}
func (counting) Legal(conf transition.Configuration, t transition.Transition) bool { return true }
func (counting) Terminal(conf transition.Configuration) bool                     { return conf.Terminal() }
func (counting) TransitionTypes() []string                                       { return []string{"+"} }
func (counting) Projective() bool                                                { return true }
func (counting) Name() string                                                    { return "counting" }

func goldSteps(conf transition.Configuration) []transition.Transition {
	c := conf.(*counter)
	if c.goal-c.value >= 2 {
		return []transition.Transition{step(2)}
	}
	return []transition.Transition{step(1)}
}

func TestParseOracle(t *testing.T) {
	d := &Deterministic{TransFunc: counting{}, Gold: goldSteps, Policy: &transition.NeverExplore{}}
	traj, err := d.ParseOracle(&counter{goal: 5})
	require.NoError(t, err)
	assert.Equal(t, Done, traj.State)
	assert.Equal(t, "+2 +2 +1", transition.FormatTransitions(traj.Transitions()))
	assert.Equal(t, 5, traj.Final.(*counter).value)
	for _, s := range traj.Steps {
		assert.False(t, s.Explored)
	}
	assert.Equal(t, traj.Transitions(), traj.Final.GetSequence().Transitions())
}

func TestParseOraclePredictor(t *testing.T) {
	d := &Deterministic{
		TransFunc: counting{},
		Gold:      goldSteps,
		Policy:    &transition.AlwaysExplore{},
		Predictor: func(conf transition.Configuration, legal, gold []transition.Transition) transition.Transition {
			return step(1)
		},
	}
	traj, err := d.ParseOracle(&counter{goal: 3})
	require.NoError(t, err)
	assert.Len(t, traj.Steps, 3)
	assert.True(t, traj.Steps[0].Explored)
	assert.False(t, traj.Steps[2].Explored)
}

func TestParseOracleFailures(t *testing.T) {
	noGold := &Deterministic{
		TransFunc: counting{},
		Gold:      func(transition.Configuration) []transition.Transition { return nil },
		Policy:    &transition.NeverExplore{},
	}
	traj, err := noGold.ParseOracle(&counter{goal: 2})
	assert.True(t, errors.Is(err, ErrNoGold))
	assert.Equal(t, Failed, traj.State)
	assert.Empty(t, traj.Steps)

	limited := &Deterministic{TransFunc: counting{}, Gold: goldSteps, Policy: &transition.NeverExplore{}, MaxTransitions: 2}
	traj, err = limited.ParseOracle(&counter{goal: 9})
	assert.True(t, errors.Is(err, ErrTooManyTransitions))
	assert.Len(t, traj.Steps, 2)
	assert.Equal(t, 4, traj.Final.(*counter).value)

	overshoot := &Deterministic{
		TransFunc: counting{},
		Gold:      func(transition.Configuration) []transition.Transition { return []transition.Transition{step(2)} },
		Policy:    &transition.NeverExplore{},
	}
	_, err = overshoot.ParseOracle(&counter{goal: 3})
	var illegal *transition.IllegalTransitionError
	assert.True(t, errors.As(err, &illegal))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "State(9)", State(9).String())
}
