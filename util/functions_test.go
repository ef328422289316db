package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopNStrInt(t *testing.T) {
	counts := map[string]int{"SH": 7, "LA-nsubj": 2, "RA-obj": 2, "RE": 5}
	top := GetTopNStrInt(counts, 3)
	assert.Equal(t, []TopNStrIntDatum{{"SH", 7}, {"RE", 5}, {"LA-nsubj", 2}}, top)
	assert.Len(t, GetTopNStrInt(counts, 10), 4)
}

func TestEnumSet(t *testing.T) {
	e := NewEnumSet[string](2)
	i, added := e.Add("SH")
	assert.Equal(t, 0, i)
	assert.True(t, added)
	i, _ = e.Add("LA-nsubj")
	assert.Equal(t, 1, i)
	i, added = e.Add("SH")
	assert.Equal(t, 0, i)
	assert.False(t, added)

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "LA-nsubj", e.ValueOf(1))
	_, exists := e.IndexOf("RE")
	assert.False(t, exists)
	assert.Panics(t, func() { e.ValueOf(2) })

	e.Frozen = true
	assert.NotPanics(t, func() { e.Add("SH") })
	assert.Panics(t, func() { e.Add("RE") })

	var out strings.Builder
	require.NoError(t, e.Write(&out))
	assert.Equal(t, "SH\nLA-nsubj\n", out.String())
}
