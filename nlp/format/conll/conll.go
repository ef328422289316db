package conll

// Package Conll reads ConLL format files
// For a description see http://ilk.uvt.nl/conll/#dataformat
// ConLL-U multi-word (3-4) and empty (3.1) token rows are skipped

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	nlp "deporacle/nlp/types"
)

const (
	FIELD_SEPARATOR      = '\t'
	NUM_FIELDS           = 10
	FEATURES_SEPARATOR   = "|"
	FEATURE_SEPARATOR    = "="
	FEATURE_CONCAT_DELIM = ","
)

type Features map[string]string

func (f Features) String() string {
	return FormatFeatures(f)
}

func FormatFeatures(feat map[string]string) string {
	if len(feat) == 0 {
		return "_"
	}
	strs := make([]string, 0, len(feat))
	for k, v := range feat {
		strs = append(strs, fmt.Sprintf("%v%v%v", k, FEATURE_SEPARATOR, v))
	}
	sort.Strings(strs)
	return strings.Join(strs, FEATURES_SEPARATOR)
}

// A Row is a single parsed row of a conll data set
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   Features
	Head    int
	DepRel  string
}

func formatString(value string) string {
	if value == "" {
		return "_"
	}
	return value
}

func (r Row) String() string {
	fields := []string{
		fmt.Sprintf("%d", r.ID),
		formatString(r.Form),
		formatString(r.Lemma),
		formatString(r.CPosTag),
		formatString(r.PosTag),
		FormatFeatures(r.Feats),
		fmt.Sprintf("%d", r.Head),
		formatString(r.DepRel),
		"_",
		"_"}
	return strings.Join(fields, "\t")
}

// A Sentence is the rows of one sentence in order
type Sentence []Row

type Sentences []Sentence

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

func ParseFeatures(featuresStr string) (Features, error) {
	var featureMap Features
	if featuresStr == "_" {
		return featureMap, nil
	}
	featureList := strings.Split(featuresStr, FEATURES_SEPARATOR)
	featureMap = make(Features, len(featureList))
	for _, featureStr := range featureList {
		featName, featValue, found := strings.Cut(featureStr, FEATURE_SEPARATOR)
		if !found {
			return nil, fmt.Errorf("Wrong number of fields for split of feature %s", featureStr)
		}
		if existingFeatValue, featExist := featureMap[featName]; featExist {
			featureMap[featName] = existingFeatValue + FEATURE_CONCAT_DELIM + featValue
		} else {
			featureMap[featName] = featValue
		}
	}
	return featureMap, nil
}

// ParseID returns a *nlp.MultiWordTokenError or *nlp.EmptyTokenError for
// rows that are not tree nodes.
func ParseID(value string) (int, error) {
	switch {
	case strings.Contains(value, "-"):
		return 0, &nlp.MultiWordTokenError{ID: value}
	case strings.Contains(value, "."):
		return 0, &nlp.EmptyTokenError{ID: value}
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Error parsing ID field (%s): %w", value, err)
	}
	return id, nil
}

func ParseRow(record []string) (Row, error) {
	var row Row
	id, err := ParseID(record[0])
	if err != nil {
		return row, err
	}
	row.ID = id

	form := ParseString(record[1])
	if form == "" {
		return row, errors.New("Empty FORM field")
	}
	row.Form = form
	row.Lemma = ParseString(record[2])
	row.CPosTag = ParseString(record[3])
	row.PosTag = ParseString(record[4])

	head, err := ParseInt(record[6])
	if err != nil {
		return row, fmt.Errorf("Error parsing HEAD field (%s): %w", record[6], err)
	}
	row.Head = head

	// untyped treebanks leave DEPREL empty
	row.DepRel = ParseString(record[7])

	features, err := ParseFeatures(record[5])
	if err != nil {
		return row, fmt.Errorf("Error parsing FEATS field (%s): %w", record[5], err)
	}
	row.Feats = features
	return row, nil
}

func isSkippable(err error) bool {
	var multiWord *nlp.MultiWordTokenError
	var empty *nlp.EmptyTokenError
	return errors.As(err, &multiWord) || errors.As(err, &empty)
}

// Read parses sentences, each starting at the row with id 1 since the csv
// reader drops the empty lines between sentences.
func Read(reader io.Reader) (Sentences, error) {
	var sentences Sentences
	csvReader := csv.NewReader(reader)
	csvReader.Comma = FIELD_SEPARATOR
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = NUM_FIELDS
	csvReader.LazyQuotes = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Failure reading delimited file: %w", err)
	}

	var currentSent Sentence
	for i, record := range records {
		row, err := ParseRow(record)
		if err != nil {
			if isSkippable(err) {
				continue
			}
			return nil, fmt.Errorf("Error processing record %d at statement %d: %w", i, len(sentences), err)
		}
		if row.ID == 1 && currentSent != nil {
			sentences = append(sentences, currentSent)
			currentSent = nil
		}
		currentSent = append(currentSent, row)
	}
	if currentSent != nil {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string) (Sentences, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

func Write(writer io.Writer, sents []Sentence) error {
	for _, sent := range sents {
		for _, row := range sent {
			if _, err := io.WriteString(writer, row.String()+"\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, sents []Sentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}

func Tree2Conll(tree *nlp.DependencyTree) Sentence {
	sent := make(Sentence, 0, tree.Len())
	for _, token := range tree.Tokens[1:] {
		rel := string(token.Relation)
		if rel == nlp.NO_LABEL {
			rel = ""
		}
		sent = append(sent, Row{
			ID:     token.ID,
			Form:   token.Form,
			Head:   token.Head,
			DepRel: rel,
		})
	}
	return sent
}

func Tree2ConllCorpus(corpus []*nlp.DependencyTree) []Sentence {
	sentCorpus := make([]Sentence, len(corpus))
	for i, tree := range corpus {
		sentCorpus[i] = Tree2Conll(tree)
	}
	return sentCorpus
}

func Conll2Tree(sent Sentence) (*nlp.DependencyTree, error) {
	tokens := make([]nlp.Token, len(sent))
	for i, row := range sent {
		tokens[i] = nlp.Token{ID: row.ID, Form: row.Form, Head: row.Head, Relation: nlp.DepRel(row.DepRel)}
	}
	return nlp.NewDependencyTree(tokens)
}

func Conll2TreeCorpus(corpus []Sentence) ([]*nlp.DependencyTree, error) {
	trees := make([]*nlp.DependencyTree, len(corpus))
	for i, sent := range corpus {
		tree, err := Conll2Tree(sent)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		trees[i] = tree
	}
	return trees, nil
}
