package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-lee/fob/internal/parser"
)

func writeLines(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_PlainLines(t *testing.T) {
	path := writeLines(t, "alpha\nbeta\n")

	records := collect(t, NewFileSource(path, nil))
	require.Len(t, records, 2)

	name, ok := records[0].NameValue()
	require.True(t, ok)
	assert.Equal(t, "alpha", name)

	name, ok = records[1].NameValue()
	require.True(t, ok)
	assert.Equal(t, "beta", name)
}

func TestFileSource_JSONLines(t *testing.T) {
	path := writeLines(t, `{"Name":"api","Port":8080}`+"\n"+`{"Name":"web"}`+"\n")

	records := collect(t, NewFileSource(path, nil))
	require.Len(t, records, 2)

	name, ok := records[0].NameValue()
	require.True(t, ok)
	assert.Equal(t, "api", name)

	port, ok := records[0].Attr("Port")
	require.True(t, ok)
	assert.EqualValues(t, 8080, port)
}

func TestFileSource_MixedLines(t *testing.T) {
	path := writeLines(t, "plain-line\n"+`{"Name":"json-line"}`+"\n")

	records := collect(t, NewFileSource(path, nil))
	require.Len(t, records, 2)

	name, _ := records[0].NameValue()
	assert.Equal(t, "plain-line", name)
	name, _ = records[1].NameValue()
	assert.Equal(t, "json-line", name)
}

func TestFileSource_WithExtractor(t *testing.T) {
	extract, err := parser.New(`%{INT:Pid} %{GREEDYDATA:Name}`)
	require.NoError(t, err)

	path := writeLines(t, "101 systemd\n102 sshd\n")

	records := collect(t, NewFileSource(path, extract))
	require.Len(t, records, 2)

	name, ok := records[1].NameValue()
	require.True(t, ok)
	assert.Equal(t, "sshd", name)

	pid, ok := records[1].Attr("Pid")
	require.True(t, ok)
	assert.Equal(t, "102", pid)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("/does/not/exist", nil).Start(context.Background())
	assert.Error(t, err)
}
