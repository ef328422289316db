package app

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"

	"deporacle/nlp/format/conll"
	"deporacle/nlp/format/treeyaml"
	nlp "deporacle/nlp/types"
)

// ReadTrees reads a dependency corpus in the given format and returns it
// with the md5 sum of the file, for the run log. Multi-word and empty token
// rows are dropped; the yaml reader reports each of them.
func ReadTrees(filename, format string) ([]*nlp.DependencyTree, string, error) {
	if format != FORMAT_YAML && format != FORMAT_CONLL {
		return nil, "", fmt.Errorf("unknown input format %q, expected %s or %s", format, FORMAT_YAML, FORMAT_CONLL)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	sum := md5.New()
	reader := io.TeeReader(file, sum)

	var trees []*nlp.DependencyTree
	switch format {
	case FORMAT_YAML:
		var skipped []error
		trees, skipped, err = treeyaml.Read(reader)
		for _, skip := range skipped {
			Log.Debugf("Skipped token in %s: %v", filename, skip)
		}
	case FORMAT_CONLL:
		var sents conll.Sentences
		sents, err = conll.Read(reader)
		if err == nil {
			trees, err = conll.Conll2TreeCorpus(sents)
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", filename, err)
	}
	// readers may stop at the last sentence
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return nil, "", err
	}
	return trees, fmt.Sprintf("%x", sum.Sum(nil)), nil
}
