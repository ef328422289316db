package transition

import (
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// ArcSwift attaches the queue front directly to any stack item reachable
// over already attached items (Qi & Manning 2017). Arc depths are 1-based,
// s1 being the stack top.
type ArcSwift struct{}

// Verify that ArcSwift is a TransitionSystem
var _ TransitionSystem = &ArcSwift{}
var _ System = &ArcSwift{}

func (a *ArcSwift) Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration {
	conf := &SimpleConfiguration{TerminalStack: -1, TerminalQueue: 0}
	conf.Init(tree, relations)
	return conf
}

func (a *ArcSwift) check(c *SimpleConfiguration, t Transition) (Move, error) {
	move, ok := t.(Move)
	if !ok {
		return move, illegal(c, t, "not a dependency move")
	}
	_, bExists := c.Queue().Peek()
	switch move.Kind {
	case SHIFT:
		if move.Depth != 0 {
			return move, illegal(c, t, "shift has no depth")
		}
		if !bExists {
			return move, illegal(c, t, "queue is empty")
		}
	case LEFT, RIGHT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if !bExists {
			return move, illegal(c, t, "queue is empty")
		}
		k := move.Depth
		if k < 1 || k > c.Stack().Size() {
			return move, illegal(c, t, "depth %d out of stack range", k)
		}
		for i := 0; i < k-1; i++ {
			si, _ := c.Stack().Index(i)
			if !c.Arcs().HasHead(si) {
				return move, illegal(c, t, "s%d would be popped without a head", i+1)
			}
		}
		if move.Kind == LEFT {
			sk, _ := c.Stack().Index(k - 1)
			if sk == nlp.ROOT_INDEX {
				return move, illegal(c, t, "root can't be a modifier")
			}
			if c.Arcs().HasHead(sk) {
				return move, illegal(c, t, "s%d already has a head", k)
			}
		}
	default:
		return move, illegal(c, t, "unknown transition")
	}
	return move, nil
}

func (a *ArcSwift) Transition(from Configuration, t Transition) (Configuration, error) {
	move, err := a.check(asSimple(from), t)
	if err != nil {
		return nil, err
	}
	conf := from.Copy().(*SimpleConfiguration)
	// Transition System:
	// LAk-r	(S|wk|...|w1,	wj|B,	A) => (S,	wj|B,	A+{(wj,r,wk)})	if: w1..wk-1 have heads; wk has no head
	// RAk-r	(S|wk|...|w1,	wj|B,	A) => (S|wk|wj,	B,	A+{(wk,r,wj)})	if: w1..wk-1 have heads
	// SH	(S,	wi|B,	A) => (S|wi,	B,	A)
	switch move.Kind {
	case LEFT:
		for i := 0; i < move.Depth-1; i++ {
			conf.Stack().Pop()
		}
		wk, _ := conf.Stack().Pop()
		wj, _ := conf.Queue().Peek()
		conf.AddArc(nlp.BasicDepArc{Head: wj, Relation: move.Label, Modifier: wk})
	case RIGHT:
		for i := 0; i < move.Depth-1; i++ {
			conf.Stack().Pop()
		}
		wk, _ := conf.Stack().Peek()
		wj, _ := conf.Queue().Pop()
		conf.AddArc(nlp.BasicDepArc{Head: wk, Relation: move.Label, Modifier: wj})
		conf.Stack().Push(wj)
	case SHIFT:
		wi, _ := conf.Queue().Pop()
		conf.Stack().Push(wi)
	}
	conf.SetLastTransition(move)
	return conf, nil
}

func (a *ArcSwift) Legal(conf Configuration, t Transition) bool {
	_, err := a.check(asSimple(conf), t)
	return err == nil
}

// reach is the depth of the topmost headless stack item, the deepest item
// an arc can address
func (a *ArcSwift) reach(c *SimpleConfiguration) int {
	for i := 0; i < c.Stack().Size(); i++ {
		si, _ := c.Stack().Index(i)
		if !c.Arcs().HasHead(si) {
			return i + 1
		}
	}
	return c.Stack().Size()
}

func (a *ArcSwift) GetTransitions(from Configuration) []Transition {
	c := asSimple(from)
	candidates := []Move{Shift()}
	if c.Queue().Size() > 0 {
		reach := a.reach(c)
		candidates = append(candidates, labeled(LEFT, reach, c.Relations)...)
		for k := 1; k <= reach; k++ {
			candidates = append(candidates, labeled(RIGHT, k, c.Relations)...)
		}
	}
	return legalMoves(a, c, candidates)
}

func (a *ArcSwift) Terminal(conf Configuration) bool {
	return conf.Terminal()
}

func (a *ArcSwift) TransitionTypes() []string {
	return []string{"LAk-*", "RAk-*", "SH"}
}

func (a *ArcSwift) Projective() bool {
	return true
}

func (a *ArcSwift) Name() string {
	return "Arc Swift"
}

// StaticOracle scans the stack down to the first headless item.
//
//	LAk-r	if (b,r,sk) in Ad and s1..sk are complete
//	RAk-r	if (sk,r,b) in Ad and s1..sk-1 are complete
//	SH	if b has no gold arc with any stack item
func (a *ArcSwift) StaticOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asSimple(conf)
	b, bExists := c.Queue().Peek()
	if !bExists {
		return nil
	}
	reach := a.reach(c)
	for k := 1; k <= reach; k++ {
		sk, _ := c.Stack().Index(k - 1)
		if gold.HasArc(b, sk) && a.completeTo(c, gold, k) {
			return legalMoves(a, c, []Move{LeftArcK(k, label(gold.Token(sk)))})
		}
		if gold.HasArc(sk, b) && a.completeTo(c, gold, k-1) {
			return legalMoves(a, c, []Move{RightArcK(k, label(gold.Token(b)))})
		}
	}
	if shiftSafe(gold, b, c.Stack().Items()) {
		return []Transition{Shift()}
	}
	return nil
}

// completeTo reports whether s1..sk have collected all their dependents
func (a *ArcSwift) completeTo(c *SimpleConfiguration, gold *nlp.DependencyTree, k int) bool {
	for i := 0; i < k; i++ {
		si, _ := c.Stack().Index(i)
		if !complete(c.Arcs(), gold, si) {
			return false
		}
	}
	return true
}
