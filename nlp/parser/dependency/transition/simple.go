package transition

import (
	"fmt"
	"strings"

	. "deporacle/alg"
	. "deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

// SimpleConfiguration is the stack/buffer configuration shared by
// Arc-Standard, Arc-Eager, Arc-Hybrid and Arc-Swift.
type SimpleConfiguration struct {
	InternalStack    Stack
	InternalQueue    Queue
	InternalArcs     ArcSet
	InternalPrevious *SimpleConfiguration
	Last             Transition

	// Forms holds the surface forms with ROOT at index 0
	Forms []string
	// Relations is the label inventory enumerated for arc transitions
	Relations []nlp.DepRel

	// negative values mean the size is not checked
	TerminalQueue int
	TerminalStack int
}

var _ DependencyConfiguration = &SimpleConfiguration{}

func (c *SimpleConfiguration) Init(tree *nlp.DependencyTree, relations []nlp.DepRel) {
	sentLength := tree.Len() + 1
	c.Forms = make([]string, sentLength)
	for i, token := range tree.Tokens {
		c.Forms[i] = token.Form
	}
	c.Relations = relations

	c.InternalStack = NewStackArray(sentLength)
	c.InternalQueue = NewQueueSlice(sentLength)
	c.InternalArcs = NewArcSetSimple(sentLength)

	// ROOT starts on the stack, the words in order on the queue
	c.Stack().Push(nlp.ROOT_INDEX)
	for i := 1; i < sentLength; i++ {
		c.Queue().Enqueue(i)
	}
	c.Last = nil
	c.InternalPrevious = nil
}

func (c *SimpleConfiguration) Terminal() bool {
	return (c.TerminalQueue < 0 || c.Queue().Size() == c.TerminalQueue) &&
		(c.TerminalStack < 0 || c.Stack().Size() == c.TerminalStack)
}

func (c *SimpleConfiguration) Stack() Stack {
	return c.InternalStack
}

func (c *SimpleConfiguration) Queue() Queue {
	return c.InternalQueue
}

func (c *SimpleConfiguration) Arcs() ArcSet {
	return c.InternalArcs
}

// Len is the sentence length without ROOT
func (c *SimpleConfiguration) Len() int {
	return len(c.Forms) - 1
}

func (c *SimpleConfiguration) Copy() Configuration {
	newConf := new(SimpleConfiguration)
	c.CopyTo(newConf)
	return newConf
}

func (c *SimpleConfiguration) CopyTo(target Configuration) {
	newConf, ok := target.(*SimpleConfiguration)
	if !ok {
		panic("Can't copy into non *SimpleConfiguration")
	}
	if c.Stack() != nil {
		newConf.InternalStack = c.Stack().Copy()
	}
	if c.Queue() != nil {
		newConf.InternalQueue = c.Queue().Copy()
	}
	if c.Arcs() != nil {
		newConf.InternalArcs = c.Arcs().Copy()
	}
	// forms and relations are never mutated, so they are shared
	newConf.Forms = c.Forms
	newConf.Relations = c.Relations
	newConf.Last = c.Last
	newConf.TerminalQueue = c.TerminalQueue
	newConf.TerminalStack = c.TerminalStack
	newConf.InternalPrevious = c
}

func (c *SimpleConfiguration) AddArc(arc nlp.BasicDepArc) {
	c.Arcs().Add(arc)
}

func (c *SimpleConfiguration) Dominates(ancestor, node int) bool {
	return dominates(c.Arcs(), ancestor, node)
}

// Headless reports whether i has not been given a head yet
func (c *SimpleConfiguration) Headless(i int) bool {
	return !c.Arcs().HasHead(i)
}

func (c *SimpleConfiguration) Previous() Configuration {
	if c.InternalPrevious == nil {
		return nil
	}
	return c.InternalPrevious
}

func (c *SimpleConfiguration) SetLastTransition(t Transition) {
	c.Last = t
}

func (c *SimpleConfiguration) GetLastTransition() Transition {
	return c.Last
}

func (c *SimpleConfiguration) GetSequence() ConfigurationSequence {
	retval := make(ConfigurationSequence, 0, 2*c.Len()+1)
	for currentConf := c; currentConf != nil; currentConf = currentConf.InternalPrevious {
		retval = append(retval, currentConf)
	}
	return retval
}

// OUTPUT FUNCTIONS

func (c *SimpleConfiguration) String() string {
	transitionVal := ""
	if c.Last != nil {
		transitionVal = c.Last.String()
	}
	return fmt.Sprintf("%s\t=>([%s],\t[%s],\t%s)",
		transitionVal, c.StringStack(), c.StringQueue(), c.StringArcs())
}

func (c *SimpleConfiguration) form(i int) string {
	if i >= 0 && i < len(c.Forms) {
		return c.Forms[i]
	}
	return fmt.Sprintf("#%d", i)
}

func (c *SimpleConfiguration) StringStack() string {
	return formatIndices(c.Stack().Items(), c.form)
}

func (c *SimpleConfiguration) StringQueue() string {
	return formatIndices(c.Queue().Items(), c.form)
}

func (c *SimpleConfiguration) StringArcs() string {
	return formatArcs(c.Arcs(), c.Last, c.form)
}

// formatIndices abbreviates long stacks and queues to their two ends
func formatIndices(items []int, form func(int) string) string {
	size := len(items)
	switch {
	case size == 0:
		return ""
	case size <= 3:
		strs := make([]string, size)
		for i, item := range items {
			strs[i] = form(item)
		}
		return strings.Join(strs, ",")
	default:
		return strings.Join([]string{form(items[0]), "...", form(items[size-1])}, ",")
	}
}

func formatArcs(arcs ArcSet, last Transition, form func(int) string) string {
	move, isMove := last.(Move)
	if !isMove || (move.Kind != LEFT && move.Kind != RIGHT) || arcs.Size() == 0 {
		return fmt.Sprintf("A%d", arcs.Size())
	}
	lastArc := arcs.Last()
	arcStr := fmt.Sprintf("(%s,%s,%s)", form(lastArc.GetHead()), lastArc.GetRelation(), form(lastArc.GetModifier()))
	return fmt.Sprintf("A%d=A%d+{%s}", arcs.Size(), arcs.Size()-1, arcStr)
}
