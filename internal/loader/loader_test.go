package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `word c5 lemma pos
The AT0 the DET
cat NN1 cat SUBST
sat VVD sit VERB
. PUN . PUN

A AT0 a DET
dog NN1 dog SUBST
ran VVD run VERB
. PUN . PUN
`

func TestLoadBasic(t *testing.T) {
	c, report, err := Load(strings.NewReader(sampleCorpus))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, 8, c.Len())
	assert.Equal(t, 8, report.Tokens)
	assert.Equal(t, 1, report.Sentences)
	assert.Empty(t, report.SkippedLines)
	assert.Equal(t, []int{0, 4, 8}, c.Sentences)

	wordID, ok := c.Interner.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, wordID, c.Tokens[1].Word)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	input := "word c5 lemma pos\n" +
		"The AT0 the DET\n" +
		"oops only two fields extra field\n" +
		"cat NN1 cat SUBST\n"
	c, report, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, report.Tokens)
	require.Len(t, report.SkippedLines, 1)
	assert.Equal(t, 3, report.SkippedLines[0].Line)
}

func TestLoadCommentLines(t *testing.T) {
	input := "word c5 lemma pos\n" +
		"# a comment\n" +
		"The AT0 the DET\n"
	c, report, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, report.Tokens)
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := LoadFile("/nonexistent/path/to/corpus.txt")
	require.Error(t, err)
	var loadErr LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "OpenFailed", loadErr.Kind)
}

func TestLoadFreezesFinalSentence(t *testing.T) {
	c, _, err := Load(strings.NewReader(sampleCorpus))
	require.NoError(t, err)
	require.True(t, c.Sentences[len(c.Sentences)-1] == c.Len())
	for s := 0; s < len(c.Sentences)-1; s++ {
		assert.GreaterOrEqual(t, c.SentenceEnd(s), c.Sentences[s])
	}
}
