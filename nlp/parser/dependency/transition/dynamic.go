package transition

import (
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// Dynamic oracles (Goldberg & Nivre 2012, 2013) are defined for arc
// decomposable systems: a set of gold arcs is reachable together iff each
// arc is reachable on its own. A transition is gold iff it keeps the number
// of reachable gold arcs, counting arcs already built with the right head
// and label, at its maximum. Counting arcs one by one is exact only for
// projective gold trees; on non-projective gold it overstates what a
// configuration can still reach.

// arcReachable reports whether the gold arc head->modifier can still be
// built from c, given that modifier has no head yet
type arcReachable func(c *SimpleConfiguration, head, modifier int) bool

func eagerReachable(c *SimpleConfiguration, head, modifier int) bool {
	headInQueue, headInStack := c.Queue().Contains(head), c.Stack().Contains(head)
	switch {
	case c.Queue().Contains(modifier):
		return headInQueue || headInStack
	case c.Stack().Contains(modifier):
		return headInQueue
	}
	return false
}

func hybridReachable(c *SimpleConfiguration, head, modifier int) bool {
	headInQueue, headInStack := c.Queue().Contains(head), c.Stack().Contains(head)
	switch {
	case c.Queue().Contains(modifier):
		return headInQueue || headInStack
	case c.Stack().Contains(modifier):
		if headInQueue {
			return true
		}
		// a right arc only reaches the item directly below
		for i := 0; i < c.Stack().Size()-1; i++ {
			if si, _ := c.Stack().Index(i); si == modifier {
				below, _ := c.Stack().Index(i + 1)
				return below == head
			}
		}
	}
	return false
}

// reachableArcs counts the gold arcs that are built correctly in c or can
// still be built
func reachableArcs(c *SimpleConfiguration, gold *nlp.DependencyTree, label LabelFunc, reachable arcReachable) int {
	count := 0
	for _, token := range gold.Tokens[1:] {
		if arc, attached := c.Arcs().HeadOf(token.ID); attached {
			if arc.Head == token.Head && arc.Relation == label(token) {
				count++
			}
			continue
		}
		if reachable(c, token.Head, token.ID) {
			count++
		}
	}
	return count
}

// minCost returns the legal transitions that lose the fewest reachable gold
// arcs, in the order the system enumerates them
func minCost(system TransitionSystem, conf Configuration, gold *nlp.DependencyTree, label LabelFunc, reachable arcReachable) []Transition {
	var (
		best    = -1
		retval  []Transition
		current = asSimple(conf)
	)
	for _, t := range system.GetTransitions(current) {
		next, err := system.Transition(current, t)
		if err != nil {
			continue
		}
		switch r := reachableArcs(asSimple(next), gold, label, reachable); {
		case r > best:
			best = r
			retval = []Transition{t}
		case r == best:
			retval = append(retval, t)
		}
	}
	return retval
}

// Reachable counts the gold arcs that are correct in conf or can still be
// built by Arc-Eager, assuming gold is projective.
func (a *ArcEager) Reachable(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) int {
	return reachableArcs(asSimple(conf), gold, label, eagerReachable)
}

// DynamicOracle returns every zero-cost transition of conf, which need not
// be consistent with the gold tree. Costs are exact for projective gold
// trees only; on non-projective gold the result is the min-cost set under
// per-arc reachability.
func (a *ArcEager) DynamicOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	return minCost(a, conf, gold, label, eagerReachable)
}

// Reachable counts the gold arcs that are correct in conf or can still be
// built by Arc-Hybrid, assuming gold is projective.
func (a *ArcHybrid) Reachable(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) int {
	return reachableArcs(asSimple(conf), gold, label, hybridReachable)
}

// DynamicOracle returns every zero-cost transition of conf; as for
// Arc-Eager, costs are exact for projective gold trees only.
func (a *ArcHybrid) DynamicOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	return minCost(a, conf, gold, label, hybridReachable)
}
