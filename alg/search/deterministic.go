package search

import (
	"errors"
	"fmt"

	"deporacle/alg/transition"

	"github.com/kataras/golog"
)

const (
	MAX_TRANSITIONS = 800
)

var (
	ErrNoTransitions      = errors.New("no legal transitions from a non-terminal configuration")
	ErrNoGold             = errors.New("oracle returned no gold transitions")
	ErrTooManyTransitions = errors.New("transition limit exceeded")
)

var SHOW_ORACLE = false

// GoldFunc maps a configuration to its gold transitions.
type GoldFunc func(conf transition.Configuration) []transition.Transition

type State byte

const (
	Running State = iota
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", byte(s))
}

// Step is a configuration and the transition chosen in it. Explored is set
// when the transition was not among the gold ones.
type Step struct {
	Configuration transition.Configuration
	Transition    transition.Transition
	Explored      bool
}

type Trajectory struct {
	Steps []Step
	// Final is the last configuration reached, terminal when State is Done
	Final transition.Configuration
	State State
}

func (t *Trajectory) Transitions() []transition.Transition {
	retval := make([]transition.Transition, len(t.Steps))
	for i, step := range t.Steps {
		retval[i] = step.Transition
	}
	return retval
}

// Deterministic drives a configuration to a terminal state, asking Gold for
// the correct transitions and Policy for the one to take.
type Deterministic struct {
	TransFunc      transition.TransitionSystem
	Gold           GoldFunc
	Policy         transition.Policy
	Predictor      transition.Predictor
	MaxTransitions int
	Log            *golog.Logger
}

// ParseOracle runs the oracle loop from c. A run that cannot continue returns
// the partial trajectory in state Failed together with ErrNoTransitions,
// ErrNoGold or ErrTooManyTransitions. An *transition.IllegalTransitionError
// is returned unchanged.
func (d *Deterministic) ParseOracle(c transition.Configuration) (*Trajectory, error) {
	if d.TransFunc == nil {
		panic("Can't parse without a transition system")
	}
	if d.Gold == nil || d.Policy == nil {
		panic("Can't generate an oracle sequence without gold function and policy")
	}
	maxTransitions := d.MaxTransitions
	if maxTransitions <= 0 {
		maxTransitions = MAX_TRANSITIONS
	}
	traj := &Trajectory{Steps: make([]Step, 0, 2*c.Len()), State: Running}
	if SHOW_ORACLE && d.Log != nil {
		d.Log.Debugf("%v", c)
	}
	for traj.State == Running {
		if d.TransFunc.Terminal(c) {
			traj.State = Done
			break
		}
		if len(traj.Steps) >= maxTransitions {
			traj.State = Failed
			traj.Final = c
			return traj, fmt.Errorf("%w: %d", ErrTooManyTransitions, maxTransitions)
		}
		legal := d.TransFunc.GetTransitions(c)
		if len(legal) == 0 {
			traj.State = Failed
			traj.Final = c
			return traj, fmt.Errorf("%w at step %d", ErrNoTransitions, len(traj.Steps))
		}
		gold := d.Gold(c)
		if len(gold) == 0 {
			traj.State = Failed
			traj.Final = c
			return traj, fmt.Errorf("%w at step %d", ErrNoGold, len(traj.Steps))
		}
		var predicted transition.Transition
		if d.Predictor != nil {
			predicted = d.Predictor(c, legal, gold)
		}
		// an oracle returning an illegal transition fails in TransFunc
		chosen := d.Policy.Choose(c, legal, gold, predicted)
		next, err := d.TransFunc.Transition(c, chosen)
		if err != nil {
			traj.State = Failed
			traj.Final = c
			return traj, err
		}
		traj.Steps = append(traj.Steps, Step{c, chosen, !transition.Contains(gold, chosen)})
		if SHOW_ORACLE && d.Log != nil {
			d.Log.Debugf("%v\t%v", chosen, next)
		}
		c = next
	}
	traj.Final = c
	return traj, nil
}
