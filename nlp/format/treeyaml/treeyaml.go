// Package treeyaml reads and writes gold trees and oracle sequences as YAML.
package treeyaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "deporacle/nlp/types"

	"gopkg.in/yaml.v3"
)

// TokenID keeps ConLL-U style ids such as "3-4" and "3.1" readable; plain
// ids are written as integers.
type TokenID string

func (id TokenID) MarshalYAML() (any, error) {
	if n, err := strconv.Atoi(string(id)); err == nil {
		return n, nil
	}
	return string(id), nil
}

func (id *TokenID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: token id must be a scalar", value.Line)
	}
	*id = TokenID(value.Value)
	return nil
}

type Token struct {
	ID   TokenID `yaml:"id"`
	Form string  `yaml:"form"`
	Head int     `yaml:"head"`
	Rel  string  `yaml:"rel,omitempty"`
}

type Sentence struct {
	Tokens []Token `yaml:"tokens"`
}

func parseID(value TokenID) (int, error) {
	s := string(value)
	switch {
	case strings.Contains(s, "-"):
		return 0, &nlp.MultiWordTokenError{ID: s}
	case strings.Contains(s, "."):
		return 0, &nlp.EmptyTokenError{ID: s}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad token id %q: %w", s, err)
	}
	return id, nil
}

// Sentence2Tree builds the tree of a sentence, skipping multi-word and
// empty token rows; the skipped rows are returned as errors alongside it.
func Sentence2Tree(sent Sentence) (*nlp.DependencyTree, []error, error) {
	var skipped []error
	tokens := make([]nlp.Token, 0, len(sent.Tokens))
	for _, token := range sent.Tokens {
		id, err := parseID(token.ID)
		if err != nil {
			var multiWord *nlp.MultiWordTokenError
			var empty *nlp.EmptyTokenError
			if errors.As(err, &multiWord) || errors.As(err, &empty) {
				skipped = append(skipped, err)
				continue
			}
			return nil, skipped, err
		}
		tokens = append(tokens, nlp.Token{ID: id, Form: token.Form, Head: token.Head, Relation: nlp.DepRel(token.Rel)})
	}
	tree, err := nlp.NewDependencyTree(tokens)
	return tree, skipped, err
}

func Tree2Sentence(tree *nlp.DependencyTree) Sentence {
	sent := Sentence{Tokens: make([]Token, 0, tree.Len())}
	for _, token := range tree.Tokens[1:] {
		rel := string(token.Relation)
		if rel == nlp.NO_LABEL {
			rel = ""
		}
		sent.Tokens = append(sent.Tokens, Token{
			ID:   TokenID(strconv.Itoa(token.ID)),
			Form: token.Form,
			Head: token.Head,
			Rel:  rel,
		})
	}
	return sent
}

// Read decodes a list of sentences. Skipped rows are reported in the second
// return value and do not fail the read.
func Read(reader io.Reader) ([]*nlp.DependencyTree, []error, error) {
	var sents []Sentence
	if err := yaml.NewDecoder(reader).Decode(&sents); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("yaml decode: %w", err)
	}
	var allSkipped []error
	trees := make([]*nlp.DependencyTree, len(sents))
	for i, sent := range sents {
		tree, skipped, err := Sentence2Tree(sent)
		allSkipped = append(allSkipped, skipped...)
		if err != nil {
			return nil, allSkipped, fmt.Errorf("sentence %d: %w", i, err)
		}
		trees[i] = tree
	}
	return trees, allSkipped, nil
}

func ReadFile(filename string) ([]*nlp.DependencyTree, []error, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return Read(file)
}

func encode(writer io.Writer, value any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return encoder.Close()
}

func Write(writer io.Writer, trees []*nlp.DependencyTree) error {
	sents := make([]Sentence, len(trees))
	for i, tree := range trees {
		sents[i] = Tree2Sentence(tree)
	}
	return encode(writer, sents)
}

func WriteFile(filename string, trees []*nlp.DependencyTree) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, trees)
}

type Arc struct {
	Head     int    `yaml:"head"`
	Rel      string `yaml:"rel"`
	Modifier int    `yaml:"modifier"`
}

// SequenceRecord is the output of the oracle for one sentence: either the
// transitions and the arcs they build, or the reason no sequence exists.
type SequenceRecord struct {
	Sentence    int      `yaml:"sentence"`
	System      string   `yaml:"system"`
	Transitions []string `yaml:"transitions,omitempty"`
	Explored    int      `yaml:"explored,omitempty"`
	Arcs        []Arc    `yaml:"arcs,omitempty"`
	Unparsable  string   `yaml:"unparsable,omitempty"`
}

func Arcs2Yaml(arcs []nlp.BasicDepArc) []Arc {
	retval := make([]Arc, len(arcs))
	for i, arc := range arcs {
		retval[i] = Arc{Head: arc.Head, Rel: string(arc.Relation), Modifier: arc.Modifier}
	}
	return retval
}

func WriteSequences(writer io.Writer, records []SequenceRecord) error {
	return encode(writer, records)
}

func ReadSequences(reader io.Reader) ([]SequenceRecord, error) {
	var records []SequenceRecord
	if err := yaml.NewDecoder(reader).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return records, nil
}
