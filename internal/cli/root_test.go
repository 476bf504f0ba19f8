package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-lee/fob/internal/config"
)

func TestSelectSource_Default(t *testing.T) {
	src, err := selectSource(&rootOptions{}, config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "stdin", src.Name())
}

func TestSelectSource_Dir(t *testing.T) {
	src, err := selectSource(&rootOptions{dir: "/etc"}, config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "dir:/etc", src.Name())
}

func TestSelectSource_Exec(t *testing.T) {
	src, err := selectSource(&rootOptions{execCmd: "ps -e"}, config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "exec:ps", src.Name())
}

func TestSelectSource_MutuallyExclusive(t *testing.T) {
	_, err := selectSource(&rootOptions{dir: "/etc", file: "x"}, config.Default(), nil)
	assert.ErrorContains(t, err, "only one of")
}

func TestRootCommand_RequiresTerms(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestRootCommand_RejectsOperatorOnlyTerms(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"or"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "no search keywords")
}
