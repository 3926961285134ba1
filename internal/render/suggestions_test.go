package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinylittleshell/pathintel/internal/completion"
)

var sample = []completion.Suggestion{
	{Caption: "lib", Value: "lib/", Meta: completion.KindFolder},
	{Caption: "main.go", Value: "main.go", Meta: completion.KindFile, Size: 1500},
}

func TestSuggestionsPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Suggestions(&buf, sample, false))

	assert.Equal(t, "lib/\tFolder\t\nmain.go\tFile\t1.5 kB\n", buf.String())
}

func TestSuggestionsStyled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Suggestions(&buf, sample, true))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], SymbolFolder)
	assert.Contains(t, lines[0], "lib/")
	assert.Contains(t, lines[0], "Folder")
	assert.Contains(t, lines[1], SymbolFile)
	assert.Contains(t, lines[1], "main.go")
	assert.Contains(t, lines[1], "1.5 kB")
}

func TestSuggestionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Suggestions(&buf, nil, true))
	assert.Empty(t, buf.String())
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), SymbolError)
}
