package transition

import (
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// ArcStandard is the stack-only system of Nivre (2004): both arc
// transitions operate on the two topmost stack items.
type ArcStandard struct{}

// Verify that ArcStandard is a TransitionSystem
var _ TransitionSystem = &ArcStandard{}
var _ System = &ArcStandard{}

func (a *ArcStandard) Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration {
	conf := &SimpleConfiguration{TerminalStack: 1, TerminalQueue: 0}
	conf.Init(tree, relations)
	return conf
}

func (a *ArcStandard) check(c *SimpleConfiguration, t Transition) (Move, error) {
	move, ok := t.(Move)
	if !ok {
		return move, illegal(c, t, "not a dependency move")
	}
	if move.Depth != 0 {
		return move, illegal(c, t, "arc standard has no depth arcs")
	}
	switch move.Kind {
	case SHIFT:
		if c.Queue().Size() == 0 {
			return move, illegal(c, t, "queue is empty")
		}
	case LEFT, RIGHT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if c.Stack().Size() < 2 {
			return move, illegal(c, t, "stack has fewer than two items")
		}
		s0, _ := c.Stack().Index(0)
		s1, _ := c.Stack().Index(1)
		if move.Kind == LEFT {
			if s1 == nlp.ROOT_INDEX {
				return move, illegal(c, t, "root can't be a modifier")
			}
			if c.Arcs().HasHead(s1) {
				return move, illegal(c, t, "s1 already has a head")
			}
		} else if c.Arcs().HasHead(s0) {
			return move, illegal(c, t, "s0 already has a head")
		}
	default:
		return move, illegal(c, t, "unknown transition")
	}
	return move, nil
}

func (a *ArcStandard) Transition(from Configuration, t Transition) (Configuration, error) {
	move, err := a.check(asSimple(from), t)
	if err != nil {
		return nil, err
	}
	conf := from.Copy().(*SimpleConfiguration)
	// Transition System:
	// LA-r	(S|wi|wj,	B,	A) => (S|wj,	B,	A+{(wj,r,wi)})	if: i != 0
	// RA-r	(S|wi|wj,	B,	A) => (S|wi,	B,	A+{(wi,r,wj)})
	// SH	(S,	wi|B,	A) => (S|wi,	B,	A)
	switch move.Kind {
	case LEFT:
		wj, _ := conf.Stack().Pop()
		wi, _ := conf.Stack().Pop()
		conf.AddArc(nlp.BasicDepArc{Head: wj, Relation: move.Label, Modifier: wi})
		conf.Stack().Push(wj)
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

func (a *ArcStandard) Legal(conf Configuration, t Transition) bool {
	_, err := a.check(asSimple(conf), t)
	return err == nil
}

func (a *ArcStandard) GetTransitions(from Configuration) []Transition {
	c := asSimple(from)
	candidates := []Move{Shift()}
	candidates = append(candidates, labeled(LEFT, 0, c.Relations)...)
	candidates = append(candidates, labeled(RIGHT, 0, c.Relations)...)
	return legalMoves(a, c, candidates)
}

func (a *ArcStandard) Terminal(conf Configuration) bool {
	return conf.Terminal()
}

func (a *ArcStandard) TransitionTypes() []string {
	return []string{"LA-*", "RA-*", "SH"}
}

func (a *ArcStandard) Projective() bool {
	return true
}

func (a *ArcStandard) Name() string {
	return "Arc Standard"
}

// StaticOracle attaches as soon as the modifier has collected all of its
// own dependents.
//
//	LA-r	if (s0,r,s1) in Ad and s1 is complete
//	RA-r	if (s1,r,s0) in Ad and s0 is complete
//	SH	otherwise
func (a *ArcStandard) StaticOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asSimple(conf)
	s0, s0Exists := c.Stack().Index(0)
	s1, s1Exists := c.Stack().Index(1)
	if s0Exists && s1Exists {
		if s1 != nlp.ROOT_INDEX && gold.HasArc(s0, s1) && complete(c.Arcs(), gold, s1) {
			return legalMoves(a, c, []Move{LeftArc(label(gold.Token(s1)))})
		}
		if gold.HasArc(s1, s0) && complete(c.Arcs(), gold, s0) {
			return legalMoves(a, c, []Move{RightArc(label(gold.Token(s0)))})
		}
	}
	if c.Queue().Size() > 0 {
		return []Transition{Shift()}
	}
	return nil
}
