package transition

import (
	"fmt"

	. "deporacle/alg"
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// ListConfiguration is the configuration of the list-based system:
// Lambda1 holds the candidates still to be compared with the buffer front,
// Lambda2 the ones already passed over.
type ListConfiguration struct {
	Lambda1          Stack
	Lambda2          Queue
	Buffer           Queue
	InternalArcs     ArcSet
	InternalPrevious *ListConfiguration
	Last             Transition

	Forms     []string
	Relations []nlp.DepRel
}

var _ DependencyConfiguration = &ListConfiguration{}

func (c *ListConfiguration) Init(tree *nlp.DependencyTree, relations []nlp.DepRel) {
	sentLength := tree.Len() + 1
	c.Forms = make([]string, sentLength)
	for i, token := range tree.Tokens {
		c.Forms[i] = token.Form
	}
	c.Relations = relations

	c.Lambda1 = NewStackArray(sentLength)
	c.Lambda2 = NewQueueSlice(sentLength)
	c.Buffer = NewQueueSlice(sentLength)
	c.InternalArcs = NewArcSetSimple(sentLength)

	c.Lambda1.Push(nlp.ROOT_INDEX)
	for i := 1; i < sentLength; i++ {
		c.Buffer.Enqueue(i)
	}
	c.Last = nil
	c.InternalPrevious = nil
}

func (c *ListConfiguration) Terminal() bool {
	return c.Buffer.Size() == 0
}

func (c *ListConfiguration) Arcs() ArcSet {
	return c.InternalArcs
}

func (c *ListConfiguration) Len() int {
	return len(c.Forms) - 1
}

func (c *ListConfiguration) Copy() Configuration {
	return &ListConfiguration{
		Lambda1:          c.Lambda1.Copy(),
		Lambda2:          c.Lambda2.Copy(),
		Buffer:           c.Buffer.Copy(),
		InternalArcs:     c.InternalArcs.Copy(),
		InternalPrevious: c,
		Last:             c.Last,
		Forms:            c.Forms,
		Relations:        c.Relations,
	}
}

func (c *ListConfiguration) AddArc(arc nlp.BasicDepArc) {
	c.Arcs().Add(arc)
}

func (c *ListConfiguration) Dominates(ancestor, node int) bool {
	return dominates(c.Arcs(), ancestor, node)
}

func (c *ListConfiguration) Previous() Configuration {
	if c.InternalPrevious == nil {
		return nil
	}
	return c.InternalPrevious
}

func (c *ListConfiguration) SetLastTransition(t Transition) {
	c.Last = t
}

func (c *ListConfiguration) GetLastTransition() Transition {
	return c.Last
}

func (c *ListConfiguration) GetSequence() ConfigurationSequence {
	retval := make(ConfigurationSequence, 0, c.Len()+1)
	for currentConf := c; currentConf != nil; currentConf = currentConf.InternalPrevious {
		retval = append(retval, currentConf)
	}
	return retval
}

func (c *ListConfiguration) form(i int) string {
	if i >= 0 && i < len(c.Forms) {
		return c.Forms[i]
	}
	return fmt.Sprintf("#%d", i)
}

func (c *ListConfiguration) String() string {
	transitionVal := ""
	if c.Last != nil {
		transitionVal = c.Last.String()
	}
	return fmt.Sprintf("%s\t=>([%s],\t[%s],\t[%s],\t%s)",
		transitionVal,
		formatIndices(c.Lambda1.Items(), c.form),
		formatIndices(c.Lambda2.Items(), c.form),
		formatIndices(c.Buffer.Items(), c.form),
		formatArcs(c.Arcs(), c.Last, c.form))
}

// ListBased is the non-projective list-based system of Nivre (2008),
// comparing the buffer front with every earlier word.
type ListBased struct{}

// Verify that ListBased is a TransitionSystem
var _ TransitionSystem = &ListBased{}
var _ System = &ListBased{}

func (a *ListBased) Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration {
	conf := new(ListConfiguration)
	conf.Init(tree, relations)
	return conf
}

func asList(conf Configuration) *ListConfiguration {
	c, ok := conf.(*ListConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	return c
}

func (a *ListBased) check(c *ListConfiguration, t Transition) (Move, error) {
	move, ok := t.(Move)
	if !ok {
		return move, illegal(c, t, "not a dependency move")
	}
	if move.Depth != 0 {
		return move, illegal(c, t, "list based has no depth arcs")
	}
	i, iExists := c.Lambda1.Peek()
	j, jExists := c.Buffer.Peek()
	switch move.Kind {
	case SHIFT:
		if !jExists {
			return move, illegal(c, t, "buffer is empty")
		}
	case NOARC:
		if !iExists {
			return move, illegal(c, t, "lambda1 is empty")
		}
	case LEFT, RIGHT:
		if move.Label == "" {
			return move, illegal(c, t, "arc without a label")
		}
		if !(iExists && jExists) {
			return move, illegal(c, t, "lambda1 and/or buffer are/is empty")
		}
		head, modifier := j, i
		if move.Kind == RIGHT {
			head, modifier = i, j
		}
		if modifier == nlp.ROOT_INDEX {
			return move, illegal(c, t, "root can't be a modifier")
		}
		if c.Arcs().HasHead(modifier) {
			return move, illegal(c, t, "%d already has a head", modifier)
		}
		if c.Dominates(modifier, head) {
			return move, illegal(c, t, "arc %d->%d would close a cycle", head, modifier)
		}
	default:
		return move, illegal(c, t, "unknown transition")
	}
	return move, nil
}

func (a *ListBased) Transition(from Configuration, t Transition) (Configuration, error) {
	move, err := a.check(asList(from), t)
	if err != nil {
		return nil, err
	}
	conf := from.Copy().(*ListConfiguration)
	// Transition System:
	// LA-r	(L1|i,	L2,	j|B,	A) => (L1,	i|L2,	j|B,	A+{(j,r,i)})	if: i has no head; no i->*j
	// RA-r	(L1|i,	L2,	j|B,	A) => (L1,	i|L2,	j|B,	A+{(i,r,j)})	if: j has no head; no j->*i
	// NA	(L1|i,	L2,	B,	A) => (L1,	i|L2,	B,	A)
	// SH	(L1,	L2,	j|B,	A) => (L1.L2|j,	[],	B,	A)
	switch move.Kind {
	case LEFT, RIGHT:
		i, _ := conf.Lambda1.Pop()
		j, _ := conf.Buffer.Peek()
		if move.Kind == LEFT {
			conf.AddArc(nlp.BasicDepArc{Head: j, Relation: move.Label, Modifier: i})
		} else {
			conf.AddArc(nlp.BasicDepArc{Head: i, Relation: move.Label, Modifier: j})
		}
		conf.Lambda2.Push(i)
	case NOARC:
		i, _ := conf.Lambda1.Pop()
		conf.Lambda2.Push(i)
	case SHIFT:
		j, _ := conf.Buffer.Pop()
		for _, k := range conf.Lambda2.Items() {
			conf.Lambda1.Push(k)
		}
		conf.Lambda2.Clear()
		conf.Lambda1.Push(j)
	}
	conf.SetLastTransition(move)
	return conf, nil
}

func (a *ListBased) Legal(conf Configuration, t Transition) bool {
	_, err := a.check(asList(conf), t)
	return err == nil
}

func (a *ListBased) GetTransitions(from Configuration) []Transition {
	c := asList(from)
	candidates := []Move{Shift(), NoArc()}
	candidates = append(candidates, labeled(LEFT, 0, c.Relations)...)
	candidates = append(candidates, labeled(RIGHT, 0, c.Relations)...)
	return legalMoves(a, c, candidates)
}

func (a *ListBased) Terminal(conf Configuration) bool {
	return conf.Terminal()
}

func (a *ListBased) TransitionTypes() []string {
	return []string{"LA-*", "RA-*", "NA", "SH"}
}

func (a *ListBased) Projective() bool {
	return false
}

func (a *ListBased) Name() string {
	return "List Based Non-Projective"
}

// StaticOracle
//
//	LA-r	if (j,r,i) in Ad
//	RA-r	if (i,r,j) in Ad
//	NA	if j has a gold arc with some other item of Lambda1
//	SH	otherwise
func (a *ListBased) StaticOracle(conf Configuration, gold *nlp.DependencyTree, label LabelFunc) []Transition {
	c := asList(conf)
	j, jExists := c.Buffer.Peek()
	if !jExists {
		return nil
	}
	if i, iExists := c.Lambda1.Peek(); iExists {
		if gold.HasArc(j, i) {
			return legalMoves(a, c, []Move{LeftArc(label(gold.Token(i)))})
		}
		if gold.HasArc(i, j) {
			return legalMoves(a, c, []Move{RightArc(label(gold.Token(j)))})
		}
		for d := 1; d < c.Lambda1.Size(); d++ {
			k, _ := c.Lambda1.Index(d)
			if gold.HasArc(j, k) || gold.HasArc(k, j) {
				return []Transition{NoArc()}
			}
		}
	}
	return []Transition{Shift()}
}
