package types

import (
	"fmt"
	"sort"
	"strings"
)

// BasicDepArc is a (head, relation, modifier) triple. Untyped arcs carry
// NO_LABEL.
type BasicDepArc struct {
	Head     int
	Relation DepRel
	Modifier int
}

func (arc BasicDepArc) GetHead() int {
	return arc.Head
}

func (arc BasicDepArc) GetModifier() int {
	return arc.Modifier
}

func (arc BasicDepArc) GetRelation() DepRel {
	return arc.Relation
}

// Unlabeled returns the arc with its relation replaced by NO_LABEL.
func (arc BasicDepArc) Unlabeled() BasicDepArc {
	return BasicDepArc{arc.Head, DepRel(NO_LABEL), arc.Modifier}
}

func (arc BasicDepArc) String() string {
	return fmt.Sprintf("(%d,%s,%d)", arc.Head, arc.Relation, arc.Modifier)
}

// SortArcs orders arcs by modifier, then head.
func SortArcs(arcs []BasicDepArc) {
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Modifier == arcs[j].Modifier {
			return arcs[i].Head < arcs[j].Head
		}
		return arcs[i].Modifier < arcs[j].Modifier
	})
}

// DependencyTree is a read-only gold tree. Tokens[0] is always ROOT.
type DependencyTree struct {
	Tokens     []Token
	dependents [][]int
}

// NewDependencyTree builds a tree from the sentence tokens (without ROOT).
func NewDependencyTree(tokens []Token) (*DependencyTree, error) {
	n := len(tokens)
	t := &DependencyTree{
		Tokens:     make([]Token, 0, n+1),
		dependents: make([][]int, n+1),
	}
	t.Tokens = append(t.Tokens, RootToken())
	for i, token := range tokens {
		if token.ID != i+1 {
			return nil, &InvalidTreeError{token.ID, fmt.Sprintf("expected id %d", i+1)}
		}
		if token.Head < 0 || token.Head > n {
			return nil, &InvalidTreeError{token.ID, fmt.Sprintf("head %d out of range", token.Head)}
		}
		if token.Head == token.ID {
			return nil, &InvalidTreeError{token.ID, "token is its own head"}
		}
		if token.Relation == "" {
			token.Relation = DepRel(NO_LABEL)
		}
		t.Tokens = append(t.Tokens, token)
		t.dependents[token.Head] = append(t.dependents[token.Head], token.ID)
	}
	for i := 1; i <= n; i++ {
		steps := 0
		for cur := i; cur != ROOT_INDEX; cur = t.Tokens[cur].Head {
			if steps > n {
				return nil, &InvalidTreeError{i, "cycle"}
			}
			steps++
		}
	}
	return t, nil
}

// NewProjectiveTree is NewDependencyTree for callers that can only handle
// projective input.
func NewProjectiveTree(tokens []Token) (*DependencyTree, error) {
	t, err := NewDependencyTree(tokens)
	if err != nil {
		return nil, err
	}
	if arc, ok := t.crossing(); ok {
		return nil, &NonProjectiveGraphError{arc.Head, arc.Modifier}
	}
	return t, nil
}

// Len is the number of tokens, not counting ROOT.
func (t *DependencyTree) Len() int {
	return len(t.Tokens) - 1
}

func (t *DependencyTree) Token(i int) Token {
	return t.Tokens[i]
}

func (t *DependencyTree) Head(i int) int {
	return t.Tokens[i].Head
}

func (t *DependencyTree) Relation(i int) DepRel {
	return t.Tokens[i].Relation
}

func (t *DependencyTree) HasArc(head, modifier int) bool {
	if modifier <= ROOT_INDEX || modifier >= len(t.Tokens) {
		return false
	}
	return t.Tokens[modifier].Head == head
}

// Dependents of head, in sentence order.
func (t *DependencyTree) Dependents(head int) []int {
	return t.dependents[head]
}

// Dominates reports whether ancestor is on the head path of node.
func (t *DependencyTree) Dominates(ancestor, node int) bool {
	for cur := node; cur != NO_HEAD; cur = t.Tokens[cur].Head {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Arcs returns the labeled gold arcs ordered by modifier.
func (t *DependencyTree) Arcs() []BasicDepArc {
	arcs := make([]BasicDepArc, 0, t.Len())
	for _, token := range t.Tokens[1:] {
		arcs = append(arcs, BasicDepArc{token.Head, token.Relation, token.ID})
	}
	return arcs
}

// Labels returns the distinct relations of the tree in first-seen order.
func (t *DependencyTree) Labels() []DepRel {
	seen := make(map[DepRel]bool)
	labels := make([]DepRel, 0, t.Len())
	for _, token := range t.Tokens[1:] {
		if !seen[token.Relation] {
			seen[token.Relation] = true
			labels = append(labels, token.Relation)
		}
	}
	return labels
}

func (t *DependencyTree) Projective() bool {
	_, crossing := t.crossing()
	return !crossing
}

// crossing finds an arc whose span contains a token the head does not
// dominate.
func (t *DependencyTree) crossing() (BasicDepArc, bool) {
	for _, arc := range t.Arcs() {
		from, to := arc.Head, arc.Modifier
		if from > to {
			from, to = to, from
		}
		for k := from + 1; k < to; k++ {
			if !t.Dominates(arc.Head, k) {
				return arc, true
			}
		}
	}
	return BasicDepArc{}, false
}

func (t *DependencyTree) Forms() []string {
	forms := make([]string, t.Len())
	for i, token := range t.Tokens[1:] {
		forms[i] = token.Form
	}
	return forms
}

func (t *DependencyTree) String() string {
	rows := make([]string, 0, t.Len())
	for _, token := range t.Tokens[1:] {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%d\t%s", token.ID, token.Form, token.Head, token.Relation))
	}
	return strings.Join(rows, "\n")
}
