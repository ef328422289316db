package transition

import (
	"fmt"
	"strconv"
	"strings"

	"deporacle/alg/transition"
	nlp "deporacle/nlp/types"
)

type Kind byte

const (
	SHIFT  Kind = 'S'
	LEFT   Kind = 'L'
	RIGHT  Kind = 'R'
	REDUCE Kind = 'E'
	NOARC  Kind = 'N'
)

// Move is the transition value shared by all dependency systems. Depth is
// the 1-based stack depth addressed by Arc-Swift arcs and zero elsewhere.
type Move struct {
	Kind  Kind
	Label nlp.DepRel
	Depth int
}

var _ transition.Transition = Move{}

func Shift() Move {
	return Move{Kind: SHIFT}
}

func Reduce() Move {
	return Move{Kind: REDUCE}
}

func NoArc() Move {
	return Move{Kind: NOARC}
}

func LeftArc(label nlp.DepRel) Move {
	return Move{Kind: LEFT, Label: label}
}

func RightArc(label nlp.DepRel) Move {
	return Move{Kind: RIGHT, Label: label}
}

func LeftArcK(k int, label nlp.DepRel) Move {
	return Move{Kind: LEFT, Label: label, Depth: k}
}

func RightArcK(k int, label nlp.DepRel) Move {
	return Move{Kind: RIGHT, Label: label, Depth: k}
}

func (m Move) Type() byte {
	return byte(m.Kind)
}

func (m Move) Equal(other transition.Transition) bool {
	o, ok := other.(Move)
	return ok && o == m
}

func (m Move) String() string {
	switch m.Kind {
	case SHIFT:
		return "SH"
	case REDUCE:
		return "RE"
	case NOARC:
		return "NA"
	case LEFT, RIGHT:
		prefix := "LA"
		if m.Kind == RIGHT {
			prefix = "RA"
		}
		if m.Depth > 0 {
			prefix += strconv.Itoa(m.Depth)
		}
		return prefix + "-" + string(m.Label)
	}
	return fmt.Sprintf("?%c", m.Kind)
}

// ParseMove reads the String form of a move.
func ParseMove(s string) (Move, error) {
	switch s {
	case "SH":
		return Shift(), nil
	case "RE":
		return Reduce(), nil
	case "NA":
		return NoArc(), nil
	}
	name, label, found := strings.Cut(s, "-")
	if !found || len(name) < 2 {
		return Move{}, fmt.Errorf("unknown transition %q", s)
	}
	var kind Kind
	switch name[:2] {
	case "LA":
		kind = LEFT
	case "RA":
		kind = RIGHT
	default:
		return Move{}, fmt.Errorf("unknown transition %q", s)
	}
	depth := 0
	if len(name) > 2 {
		d, err := strconv.Atoi(name[2:])
		if err != nil || d < 1 {
			return Move{}, fmt.Errorf("bad depth in transition %q", s)
		}
		depth = d
	}
	return Move{Kind: kind, Label: nlp.DepRel(label), Depth: depth}, nil
}

type ArcSet interface {
	Clear()
	Add(nlp.BasicDepArc)
	Size() int
	Last() nlp.BasicDepArc
	Index(int) nlp.BasicDepArc
	List() []nlp.BasicDepArc

	HasHead(int) bool
	HeadOf(int) (nlp.BasicDepArc, bool)
	HasModifiers(int) bool
	HasArc(int, int) bool

	Copy() ArcSet
	Equal(ArcSet) bool
}

// DependencyConfiguration is a parser state of any of the dependency systems.
type DependencyConfiguration interface {
	transition.Configuration
	Arcs() ArcSet
	// Dominates reports whether ancestor is on the head path of node in the
	// arcs built so far
	Dominates(ancestor, node int) bool
}

// System is a dependency transition system.
type System interface {
	transition.TransitionSystem
	Initial(tree *nlp.DependencyTree, relations []nlp.DepRel) DependencyConfiguration
}

func illegal(from transition.Configuration, t transition.Transition, format string, args ...any) error {
	return &transition.IllegalTransitionError{Transition: t, Configuration: from, Reason: fmt.Sprintf(format, args...)}
}

// labeled returns one move of the given kind per relation
func labeled(kind Kind, depth int, relations []nlp.DepRel) []Move {
	moves := make([]Move, len(relations))
	for i, rel := range relations {
		moves[i] = Move{Kind: kind, Label: rel, Depth: depth}
	}
	return moves
}

func asSimple(conf transition.Configuration) *SimpleConfiguration {
	c, ok := conf.(*SimpleConfiguration)
	if !ok {
		panic("Got wrong configuration type")
	}
	return c
}

// legalMoves keeps the candidates whose preconditions hold, in order
func legalMoves(system transition.TransitionSystem, conf transition.Configuration, candidates []Move) []transition.Transition {
	retval := make([]transition.Transition, 0, len(candidates))
	for _, move := range candidates {
		if system.Legal(conf, move) {
			retval = append(retval, move)
		}
	}
	return retval
}
