package treeyaml

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	nlp "deporacle/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `
- tokens:
    - {id: 1, form: John, head: 2, rel: nsubj}
    - {id: 2, form: saw, head: 0, rel: root}
    - {id: 3, form: Mary, head: 2, rel: obj}
- tokens:
    - {id: 1, form: Il, head: 2}
    - {id: "2-3", form: du, head: 0}
    - {id: 2, form: de, head: 0}
    - {id: 2.1, form: gone, head: 0}
    - {id: 3, form: le, head: 2}
`

func TestRead(t *testing.T) {
	trees, skipped, err := Read(strings.NewReader(corpus))
	require.NoError(t, err)
	require.Len(t, trees, 2)
	require.Len(t, skipped, 2)

	var multiWord *nlp.MultiWordTokenError
	assert.True(t, errors.As(skipped[0], &multiWord))
	assert.Equal(t, "2-3", multiWord.ID)
	var empty *nlp.EmptyTokenError
	assert.True(t, errors.As(skipped[1], &empty))
	assert.Equal(t, "2.1", empty.ID)

	assert.Equal(t, 3, trees[0].Len())
	assert.Equal(t, nlp.DepRel("obj"), trees[0].Relation(3))
	assert.Equal(t, nlp.DepRel(nlp.NO_LABEL), trees[1].Relation(1))
	assert.Equal(t, []string{"Il", "de", "le"}, trees[1].Forms())
}

func TestReadInvalidTree(t *testing.T) {
	_, _, err := Read(strings.NewReader(`
- tokens:
    - {id: 1, form: a, head: 2}
    - {id: 2, form: b, head: 1}
`))
	var invalid *nlp.InvalidTreeError
	assert.True(t, errors.As(err, &invalid))
}

func TestWriteRead(t *testing.T) {
	trees, _, err := Read(strings.NewReader(corpus))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, trees))
	assert.Contains(t, buf.String(), "id: 1")

	reread, skipped, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, reread, 2)
	assert.Equal(t, trees[0].Arcs(), reread[0].Arcs())
	assert.Equal(t, trees[1].Arcs(), reread[1].Arcs())
}

func TestSequences(t *testing.T) {
	records := []SequenceRecord{
		{
			Sentence:    0,
			System:      "Arc Standard",
			Transitions: []string{"SH", "SH", "LA-nsubj", "SH", "RA-obj", "RA-root"},
			Arcs:        Arcs2Yaml([]nlp.BasicDepArc{{Head: 2, Relation: "nsubj", Modifier: 1}}),
		},
		{Sentence: 1, System: "Arc Standard", Unparsable: "no gold transitions"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSequences(&buf, records))

	reread, err := ReadSequences(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, reread)
}
