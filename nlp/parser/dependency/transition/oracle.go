package transition

import (
	"errors"
	"fmt"
	"slices"

	"deporacle/alg/search"
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"

	"github.com/kataras/golog"
)

// LabelFunc gives the relation an oracle puts on the arc into a gold token.
type LabelFunc func(token nlp.Token) nlp.DepRel

// Untyped labels every arc with NO_LABEL
func Untyped(token nlp.Token) nlp.DepRel {
	return nlp.DepRel(nlp.NO_LABEL)
}

// Typed labels arcs with the gold relation
func Typed(token nlp.Token) nlp.DepRel {
	return token.Relation
}

// OracleFunc returns the gold transitions of conf with respect to the gold
// tree. Every returned transition is legal in conf.
type OracleFunc func(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition

// UnparsableTree is returned when no gold transition sequence leads to the
// gold tree, or the run could not reach a terminal configuration.
type UnparsableTree struct {
	Tree   *nlp.DependencyTree
	System string
	// Partial holds the transitions taken before the failure
	Partial *OracleSequence
	Err     error
}

func (e *UnparsableTree) Error() string {
	return fmt.Sprintf("%s can't derive tree (%d tokens): %v", e.System, e.Tree.Len(), e.Err)
}

func (e *UnparsableTree) Unwrap() error {
	return e.Err
}

// Oracle bundles a transition system, a gold function and a label function.
type Oracle struct {
	System System
	Func   OracleFunc
	Label  LabelFunc
	// Relations are enumerated by labeled legal transitions in addition to
	// the relations of the gold tree
	Relations      []nlp.DepRel
	MaxTransitions int
	Log            *golog.Logger
}

func NewOracle(system System, f OracleFunc, label LabelFunc) *Oracle {
	return &Oracle{System: system, Func: f, Label: label}
}

func (o *Oracle) label() LabelFunc {
	if o.Label == nil {
		return Untyped
	}
	return o.Label
}

// Labels is the relation inventory used for the legal transitions of a
// sentence: the labels the oracle puts on the gold arcs followed by
// Relations.
func (o *Oracle) Labels(tree *nlp.DependencyTree) []nlp.DepRel {
	labels := make([]nlp.DepRel, 0, len(o.Relations)+tree.Len())
	label := o.label()
	for _, token := range tree.Tokens[1:] {
		if rel := label(token); !slices.Contains(labels, rel) {
			labels = append(labels, rel)
		}
	}
	for _, rel := range o.Relations {
		if !slices.Contains(labels, rel) {
			labels = append(labels, rel)
		}
	}
	if len(labels) == 0 {
		labels = append(labels, nlp.NO_LABEL)
	}
	return labels
}

func (o *Oracle) Initial(tree *nlp.DependencyTree) DependencyConfiguration {
	return o.System.Initial(tree, o.Labels(tree))
}

func (o *Oracle) Gold(conf Configuration, tree *nlp.DependencyTree) []Transition {
	return o.Func(conf, tree, o.label())
}

// maxTransitions bounds the run; the list-based system needs a quadratic
// number of transitions in the sentence length
func (o *Oracle) maxTransitions(tree *nlp.DependencyTree) int {
	if o.MaxTransitions > 0 {
		return o.MaxTransitions
	}
	n := tree.Len() + 1
	if limit := 4*n*n + 8; limit > search.MAX_TRANSITIONS {
		return limit
	}
	return search.MAX_TRANSITIONS
}

// Sequence derives the transition sequence for tree. The policy decides
// between gold and explored transitions and may be nil, in which case the
// first gold transition is always taken; predictor may be nil.
//
// Failures to reach a terminal configuration return an *UnparsableTree. An
// *IllegalTransitionError means the oracle or the system is broken and is
// returned as is.
func (o *Oracle) Sequence(tree *nlp.DependencyTree, policy Policy, predictor Predictor) (*OracleSequence, error) {
	if policy == nil {
		policy = &NeverExplore{}
	}
	label := o.label()
	d := &search.Deterministic{
		TransFunc: o.System,
		Gold: func(conf Configuration) []Transition {
			return o.Func(conf, tree, label)
		},
		Policy:         policy,
		Predictor:      predictor,
		MaxTransitions: o.maxTransitions(tree),
		Log:            o.Log,
	}
	traj, err := d.ParseOracle(o.Initial(tree))
	if traj == nil {
		return nil, err
	}
	seq := &OracleSequence{Tree: tree, System: o.System.Name(), Steps: traj.Steps, final: traj.Final.(DependencyConfiguration)}
	if err != nil {
		var illegalErr *IllegalTransitionError
		if errors.As(err, &illegalErr) {
			return nil, err
		}
		return nil, &UnparsableTree{Tree: tree, System: o.System.Name(), Partial: seq, Err: err}
	}
	return seq, nil
}

// OracleSequence is the ordered list of configurations and the transitions
// taken in them, ending in a terminal configuration.
type OracleSequence struct {
	Tree   *nlp.DependencyTree
	System string
	Steps  []search.Step
	final  DependencyConfiguration
}

func (s *OracleSequence) Len() int {
	return len(s.Steps)
}

func (s *OracleSequence) Transitions() []Transition {
	retval := make([]Transition, len(s.Steps))
	for i, step := range s.Steps {
		retval[i] = step.Transition
	}
	return retval
}

// Configurations are the configurations in which a transition was taken,
// not including the final one.
func (s *OracleSequence) Configurations() []DependencyConfiguration {
	retval := make([]DependencyConfiguration, len(s.Steps))
	for i, step := range s.Steps {
		retval[i] = step.Configuration.(DependencyConfiguration)
	}
	return retval
}

// Explored counts the transitions taken outside the gold set
func (s *OracleSequence) Explored() int {
	explored := 0
	for _, step := range s.Steps {
		if step.Explored {
			explored++
		}
	}
	return explored
}

func (s *OracleSequence) Pairs() []search.Step {
	return s.Steps
}

func (s *OracleSequence) Final() DependencyConfiguration {
	return s.final
}

// Arcs of the final configuration, ordered by modifier
func (s *OracleSequence) Arcs() []nlp.BasicDepArc {
	arcs := s.final.Arcs().List()
	nlp.SortArcs(arcs)
	return arcs
}

func (s *OracleSequence) String() string {
	return fmt.Sprintf("%s: %s", s.System, FormatTransitions(s.Transitions()))
}

// complete reports whether all gold dependents of i are attached
func complete(arcs ArcSet, gold *nlp.DependencyTree, i int) bool {
	for _, d := range gold.Dependents(i) {
		if !arcs.HasHead(d) {
			return false
		}
	}
	return true
}

func hasDependentIn(gold *nlp.DependencyTree, head int, items []int) bool {
	for _, item := range items {
		if gold.HasArc(head, item) {
			return true
		}
	}
	return false
}

// shiftSafe reports whether b has no gold arc with any of the stack items,
// which would be lost once b is pushed above them
func shiftSafe(gold *nlp.DependencyTree, b int, stack []int) bool {
	for _, k := range stack {
		if gold.HasArc(k, b) || gold.HasArc(b, k) {
			return false
		}
	}
	return true
}
