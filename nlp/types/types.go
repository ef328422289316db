package types

import (
	"fmt"
)

const (
	ROOT_TOKEN = "ROOT"
	ROOT_LABEL = "ROOT"
	// NO_LABEL is carried by untyped arcs
	NO_LABEL = "_"

	ROOT_INDEX = 0
	NO_HEAD    = -1
)

type DepRel string

func (d DepRel) String() string {
	return string(d)
}

// Token is one word of a gold sentence. ID is 1-based; ID 0 is reserved
// for the implicit ROOT.
type Token struct {
	ID       int
	Form     string
	Head     int
	Relation DepRel
}

func (t Token) IsRoot() bool {
	return t.ID == ROOT_INDEX
}

func (t Token) HasHead() bool {
	return t.Head != NO_HEAD
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%s<-%d:%s", t.ID, t.Form, t.Head, t.Relation)
}

func RootToken() Token {
	return Token{ID: ROOT_INDEX, Form: ROOT_TOKEN, Head: NO_HEAD, Relation: DepRel(ROOT_LABEL)}
}
