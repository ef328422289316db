package transition

import (
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// ArcEager builds right arcs as soon as the modifier is seen, and pops
// attached items with an explicit reduce. A configuration is terminal once
// the queue is empty, whatever is left on the stack.
type ArcEager struct{}

// Verify that ArcEager is a TransitionSystem
var _ TransitionSystem = &ArcEager{}
var _ System = &ArcEager{}

func (a *ArcEager) Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration {
	conf := &SimpleConfiguration{TerminalStack: -1, TerminalQueue: 0}
	conf.Init(tree, relations)
	return conf
}

func (a *ArcEager) check(c *SimpleConfiguration, t Transition) (Move, error) {
	move, ok := t.(Move)
	if !ok {
		return move, illegal(c, t, "not a dependency move")
	}
	if move.Depth != 0 {
		return move, illegal(c, t, "arc eager has no depth arcs")
	}
	s, sExists := c.Stack().Peek()
	_, bExists := c.Queue().Peek()
	switch move.Kind {
	case SHIFT:
		if !bExists {
			return move, illegal(c, t, "queue is empty")
		}
	case LEFT, RIGHT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if !(sExists && bExists) {
			return move, illegal(c, t, "stack and/or queue are/is empty")
		}
		if move.Kind == LEFT {
			if s == nlp.ROOT_INDEX {
				return move, illegal(c, t, "root can't be a modifier")
			}
			if c.Arcs().HasHead(s) {
				return move, illegal(c, t, "stack top already has a head")
			}
		}
	case REDUCE:
		if !sExists {
			return move, illegal(c, t, "stack is empty")
		}
		if !c.Arcs().HasHead(s) {
			return move, illegal(c, t, "can't reduce an item without a head")
		}
	default:
		return move, illegal(c, t, "unknown transition")
	}
	return move, nil
}

func (a *ArcEager) Transition(from Configuration, t Transition) (Configuration, error) {
	move, err := a.check(asSimple(from), t)
	if err != nil {
		return nil, err
	}
	conf := from.Copy().(*SimpleConfiguration)
	// Transition System:
	// LA-r	(S|wi,	wj|B,	A) => (S,	wj|B,	A+{(wj,r,wi)})	if: (wk,r',wi) notin A; i != 0
	// RA-r	(S|wi,	wj|B,	A) => (S|wi|wj,	B,	A+{(wi,r,wj)})
	// RE	(S|wi,	B,	A) => (S,	B,	A)	if: (wk,r',wi) in A
	// SH	(S,	wi|B,	A) => (S|wi,	B,	A)
	switch move.Kind {
	case LEFT:
		wi, _ := conf.Stack().Pop()
		wj, _ := conf.Queue().Peek()
		conf.AddArc(nlp.BasicDepArc{Head: wj, Relation: move.Label, Modifier: wi})
	case RIGHT:
		wi, _ := conf.Stack().Peek()
		wj, _ := conf.Queue().Pop()
		conf.AddArc(nlp.BasicDepArc{Head: wi, Relation: move.Label, Modifier: wj})
		conf.Stack().Push(wj)
	case REDUCE:
		conf.Stack().Pop()
	case SHIFT:
		wi, _ := conf.Queue().Pop()
		conf.Stack().Push(wi)
	}
	conf.SetLastTransition(move)
	return conf, nil
}

func (a *ArcEager) Legal(conf Configuration, t Transition) bool {
	_, err := a.check(asSimple(conf), t)
	return err == nil
}

func (a *ArcEager) GetTransitions(from Configuration) []Transition {
	c := asSimple(from)
	candidates := []Move{Shift()}
	candidates = append(candidates, labeled(LEFT, 0, c.Relations)...)
	candidates = append(candidates, labeled(RIGHT, 0, c.Relations)...)
	candidates = append(candidates, Reduce())
	return legalMoves(a, c, candidates)
}

func (a *ArcEager) Terminal(conf Configuration) bool {
	return conf.Terminal()
}

func (a *ArcEager) TransitionTypes() []string {
	return []string{"LA-*", "RA-*", "RE", "SH"}
}

func (a *ArcEager) Projective() bool {
	return true
}

func (a *ArcEager) Name() string {
	return "Arc Eager"
}

// StaticOracle reduces as early as possible.
//
//	LA-r	if (b,r,s) in Ad
//	RA-r	if (s,r,b) in Ad
//	RE	if s has a head and no dependents left in the queue
//	SH	if b has no gold arc with any stack item
func (a *ArcEager) StaticOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asSimple(conf)
	b, bExists := c.Queue().Peek()
	if !bExists {
		return nil
	}
	if move, found := a.goldArc(c, gold, label, b); found {
		return legalMoves(a, c, []Move{move})
	}
	s, _ := c.Stack().Peek()
	if c.Stack().Size() > 0 && c.Arcs().HasHead(s) && !hasDependentIn(gold, s, c.Queue().Items()) {
		return []Transition{Reduce()}
	}
	if shiftSafe(gold, b, c.Stack().Items()) {
		return []Transition{Shift()}
	}
	return nil
}

// PreferShiftOracle delays reduce until the queue front needs to attach
// below the stack top.
//
//	LA-r	if (b,r,s) in Ad
//	RA-r	if (s,r,b) in Ad
//	SH	if b has no gold arc with any stack item
//	RE	otherwise, if s has a head and no dependents left in the queue
func (a *ArcEager) PreferShiftOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asSimple(conf)
	b, bExists := c.Queue().Peek()
	if !bExists {
		return nil
	}
	if move, found := a.goldArc(c, gold, label, b); found {
		return legalMoves(a, c, []Move{move})
	}
	if shiftSafe(gold, b, c.Stack().Items()) {
		return []Transition{Shift()}
	}
	s, _ := c.Stack().Peek()
	if c.Stack().Size() > 0 && c.Arcs().HasHead(s) && !hasDependentIn(gold, s, c.Queue().Items()) {
		return []Transition{Reduce()}
	}
	return nil
}

func (a *ArcEager) goldArc(c *SimpleConfiguration, gold *nlp.DependencyTree, label LabelFunc, b int) (Move, bool) {
	s, sExists := c.Stack().Peek()
	if !sExists {
		return Move{}, false
	}
	if s != nlp.ROOT_INDEX && gold.HasArc(b, s) && complete(c.Arcs(), gold, s) {
		return LeftArc(label(gold.Token(s))), true
	}
	if gold.HasArc(s, b) {
		return RightArc(label(gold.Token(b))), true
	}
	return Move{}, false
}
