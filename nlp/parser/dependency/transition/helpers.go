package transition

import (
	"fmt"
	"sort"
	"strings"

	nlp "deporacle/nlp/types"
)

// ArcSetSimple keeps arcs in insertion order with a modifier index, since
// every modifier has at most one head.
type ArcSetSimple struct {
	Arcs  []nlp.BasicDepArc
	heads map[int]int
}

var _ ArcSet = &ArcSetSimple{}
var _ sort.Interface = &ArcSetSimple{}

func (s *ArcSetSimple) Less(i, j int) bool {
	if s.Arcs[i].GetHead() < s.Arcs[j].GetHead() {
		return true
	}
	if s.Arcs[i].GetHead() == s.Arcs[j].GetHead() {
		return s.Arcs[i].GetModifier() < s.Arcs[j].GetModifier()
	}
	return false
}

func (s *ArcSetSimple) Swap(i, j int) {
	s.Arcs[i], s.Arcs[j] = s.Arcs[j], s.Arcs[i]
	s.heads[s.Arcs[i].Modifier] = i
	s.heads[s.Arcs[j].Modifier] = j
}

func (s *ArcSetSimple) Len() int {
	return s.Size()
}

// Equal compares arcs as sets
func (s *ArcSetSimple) Equal(other ArcSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, arc := range s.Arcs {
		theirs, exists := other.HeadOf(arc.Modifier)
		if !exists || theirs != arc {
			return false
		}
	}
	return true
}

func (s *ArcSetSimple) Sorted() *ArcSetSimple {
	copyThis := s.Copy().(*ArcSetSimple)
	sort.Sort(copyThis)
	return copyThis
}

// Diff returns the arcs only in s and the arcs only in other.
func (s *ArcSetSimple) Diff(other ArcSet) (ArcSet, ArcSet) {
	leftOnly := NewArcSetSimple(s.Size())
	rightOnly := NewArcSetSimple(other.Size())
	for _, arc := range s.Arcs {
		if theirs, exists := other.HeadOf(arc.Modifier); !exists || theirs != arc {
			leftOnly.Add(arc)
		}
	}
	for _, arc := range other.List() {
		if mine, exists := s.HeadOf(arc.Modifier); !exists || mine != arc {
			rightOnly.Add(arc)
		}
	}
	return leftOnly, rightOnly
}

func (s *ArcSetSimple) Copy() ArcSet {
	newArcs := make([]nlp.BasicDepArc, len(s.Arcs), cap(s.Arcs))
	copy(newArcs, s.Arcs)
	heads := make(map[int]int, len(s.heads))
	for k, v := range s.heads {
		heads[k] = v
	}
	return &ArcSetSimple{Arcs: newArcs, heads: heads}
}

func (s *ArcSetSimple) Clear() {
	s.Arcs = s.Arcs[0:0]
	s.heads = make(map[int]int)
}

func (s *ArcSetSimple) Index(i int) nlp.BasicDepArc {
	return s.Arcs[i]
}

func (s *ArcSetSimple) List() []nlp.BasicDepArc {
	retval := make([]nlp.BasicDepArc, len(s.Arcs))
	copy(retval, s.Arcs)
	return retval
}

// Add panics if the modifier already has a head; the systems check this
// before building an arc.
func (s *ArcSetSimple) Add(arc nlp.BasicDepArc) {
	if s.heads == nil {
		s.heads = make(map[int]int)
	}
	if _, exists := s.heads[arc.Modifier]; exists {
		panic(fmt.Sprintf("Modifier %d already has a head, can't add %v", arc.Modifier, arc))
	}
	s.heads[arc.Modifier] = len(s.Arcs)
	s.Arcs = append(s.Arcs, arc)
}

func (s *ArcSetSimple) Size() int {
	return len(s.Arcs)
}

func (s *ArcSetSimple) Last() nlp.BasicDepArc {
	return s.Arcs[len(s.Arcs)-1]
}

func (s *ArcSetSimple) String() string {
	arcs := make([]string, s.Size())
	for i, arc := range s.Arcs {
		arcs[i] = arc.String()
	}
	return "{" + strings.Join(arcs, ",") + "}"
}

func (s *ArcSetSimple) HasHead(modifier int) bool {
	_, exists := s.heads[modifier]
	return exists
}

func (s *ArcSetSimple) HeadOf(modifier int) (nlp.BasicDepArc, bool) {
	i, exists := s.heads[modifier]
	if !exists {
		return nlp.BasicDepArc{}, false
	}
	return s.Arcs[i], true
}

func (s *ArcSetSimple) HasModifiers(head int) bool {
	for _, arc := range s.Arcs {
		if arc.Head == head {
			return true
		}
	}
	return false
}

func (s *ArcSetSimple) HasArc(head, modifier int) bool {
	arc, exists := s.HeadOf(modifier)
	return exists && arc.Head == head
}

// dominates follows head links up from node
func dominates(arcs ArcSet, ancestor, node int) bool {
	for steps := 0; steps <= arcs.Size(); steps++ {
		if node == ancestor {
			return true
		}
		arc, exists := arcs.HeadOf(node)
		if !exists {
			return false
		}
		node = arc.Head
	}
	return false
}

func NewArcSetSimple(size int) *ArcSetSimple {
	return &ArcSetSimple{
		Arcs:  make([]nlp.BasicDepArc, 0, size),
		heads: make(map[int]int, size),
	}
}

func NewArcSetSimpleFromTree(tree *nlp.DependencyTree) *ArcSetSimple {
	arcSet := NewArcSetSimple(tree.Len())
	for _, arc := range tree.Arcs() {
		arcSet.Add(arc)
	}
	return arcSet
}
