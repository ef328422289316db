package transition

import (
	"slices"

	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// ArcHybrid takes left arcs from Arc-Eager and right arcs from
// Arc-Standard (Kuhlmann et al. 2011).
type ArcHybrid struct{}

// Verify that ArcHybrid is a TransitionSystem
var _ TransitionSystem = &ArcHybrid{}
var _ System = &ArcHybrid{}

func (a *ArcHybrid) Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration {
	conf := &SimpleConfiguration{TerminalStack: 1, TerminalQueue: 0}
	conf.Init(tree, relations)
	return conf
}

func (a *ArcHybrid) check(c *SimpleConfiguration, t Transition) (Move, error) {
	move, ok := t.(Move)
	if !ok {
		return move, illegal(c, t, "not a dependency move")
	}
	if move.Depth != 0 {
		return move, illegal(c, t, "arc hybrid has no depth arcs")
	}
	s0, sExists := c.Stack().Peek()
	_, bExists := c.Queue().Peek()
	switch move.Kind {
	case SHIFT:
		if !bExists {
			return move, illegal(c, t, "queue is empty")
		}
	case LEFT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if !(sExists && bExists) {
			return move, illegal(c, t, "stack and/or queue are/is empty")
		}
		if s0 == nlp.ROOT_INDEX {
			return move, illegal(c, t, "root can't be a modifier")
		}
		if c.Arcs().HasHead(s0) {
			return move, illegal(c, t, "s0 already has a head")
		}
	case RIGHT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if c.Stack().Size() < 2 {
			return move, illegal(c, t, "stack has fewer than two items")
		}
		if c.Arcs().HasHead(s0) {
			return move, illegal(c, t, "s0 already has a head")
		}
	default:
		return move, illegal(c, t, "unknown transition")
	}
	return move, nil
}

func (a *ArcHybrid) Transition(from Configuration, t Transition) (Configuration, error) {
	move, err := a.check(asSimple(from), t)
	if err != nil {
		return nil, err
	}
	conf := from.Copy().(*SimpleConfiguration)
	// Transition System:
	// LA-r	(S|wi,	wj|B,	A) => (S,	wj|B,	A+{(wj,r,wi)})	if: i != 0
	// RA-r	(S|wi|wj,	B,	A) => (S|wi,	B,	A+{(wi,r,wj)})
	// SH	(S,	wi|B,	A) => (S|wi,	B,	A)
	switch move.Kind {
	case LEFT:
		wi, _ := conf.Stack().Pop()
		wj, _ := conf.Queue().Peek()
		conf.AddArc(nlp.BasicDepArc{Head: wj, Relation: move.Label, Modifier: wi})
	case RIGHT:
		wj, _ := conf.Stack().Pop()
		wi, _ := conf.Stack().Peek()
		conf.AddArc(nlp.BasicDepArc{Head: wi, Relation: move.Label, Modifier: wj})
	case SHIFT:
		wi, _ := conf.Queue().Pop()
		conf.Stack().Push(wi)
	}
	conf.SetLastTransition(move)
	return conf, nil
}

func (a *ArcHybrid) Legal(conf Configuration, t Transition) bool {
	_, err := a.check(asSimple(conf), t)
	return err == nil
}

func (a *ArcHybrid) GetTransitions(from Configuration) []Transition {
	c := asSimple(from)
	candidates := []Move{Shift()}
	candidates = append(candidates, labeled(LEFT, 0, c.Relations)...)
	candidates = append(candidates, labeled(RIGHT, 0, c.Relations)...)
	return legalMoves(a, c, candidates)
}

func (a *ArcHybrid) Terminal(conf Configuration) bool {
	return conf.Terminal()
}

func (a *ArcHybrid) TransitionTypes() []string {
	return []string{"LA-*", "RA-*", "SH"}
}

func (a *ArcHybrid) Projective() bool {
	return true
}

func (a *ArcHybrid) Name() string {
	return "Arc Hybrid"
}

// StaticOracle
//
//	LA-r	if (b,r,s0) in Ad and s0 is complete
//	RA-r	if (s1,r,s0) in Ad and s0 is complete
//	SH	if b's gold head on the stack can only be s0, and b has no gold
//		dependents on the stack
func (a *ArcHybrid) StaticOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asSimple(conf)
	s0, s0Exists := c.Stack().Index(0)
	s1, s1Exists := c.Stack().Index(1)
	b, bExists := c.Queue().Peek()
	if s0Exists && s0 != nlp.ROOT_INDEX && complete(c.Arcs(), gold, s0) {
		if bExists && gold.HasArc(b, s0) {
			return legalMoves(a, c, []Move{LeftArc(label(gold.Token(s0)))})
		}
		if s1Exists && gold.HasArc(s1, s0) {
			return legalMoves(a, c, []Move{RightArc(label(gold.Token(s0)))})
		}
	}
	if !bExists {
		return nil
	}
	stack := c.Stack().Items()
	head := gold.Head(b)
	if head != s0 && slices.Contains(stack, head) {
		return nil
	}
	if hasDependentIn(gold, b, stack) {
		return nil
	}
	return []Transition{Shift()}
}
